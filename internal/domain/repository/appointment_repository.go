// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the interface for booking persistence.
type AppointmentRepository interface {
	// List returns every appointment in insertion order.
	List(ctx context.Context) ([]*entity.Appointment, error)

	// FindByID retrieves a single appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByCustomer retrieves all appointments booked by a customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Appointment, error)

	// FindByAgent retrieves all appointments handled by an agent.
	FindByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Appointment, error)

	// FindByProperty retrieves all appointments referencing a property.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Appointment, error)

	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// Update replaces the stored record matching appointment.ID and
	// refreshes its UpdatedAt timestamp.
	Update(ctx context.Context, appointment *entity.Appointment) error
}
