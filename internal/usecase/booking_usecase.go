package usecase

import (
	"context"
	"time"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// BookInput defines the data a customer supplies to request a viewing.
// The appointment's agent is resolved from the property, never from the
// client.
type BookInput struct {
	PropertyID      uuid.UUID `json:"property_id" validate:"required"`
	CustomerID      uuid.UUID `json:"customer_id" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	TimeSlot        string    `json:"time_slot" validate:"required"`
	SpecialRequests string    `json:"special_requests"`
}

// BookingUsecase defines the interface for the viewing-appointment
// lifecycle.
type BookingUsecase interface {
	// Book creates a pending appointment for an active listing. The date
	// must be at least one day out. The owning agent is notified.
	Book(ctx context.Context, input *BookInput) (*entity.Appointment, error)

	// Confirm moves a pending appointment to confirmed and notifies the
	// customer.
	Confirm(ctx context.Context, agentID, appointmentID uuid.UUID) (*entity.Appointment, error)

	// Complete moves a confirmed appointment to completed and invites the
	// customer to leave a review.
	Complete(ctx context.Context, agentID, appointmentID uuid.UUID) (*entity.Appointment, error)

	// Cancel moves a pending appointment to cancelled with a reason and
	// notifies the owning agent.
	Cancel(ctx context.Context, customerID, appointmentID uuid.UUID, reason string) (*entity.Appointment, error)

	// Get retrieves one appointment by ID.
	Get(ctx context.Context, appointmentID uuid.UUID) (*entity.Appointment, error)

	// ListByCustomer returns the customer's appointments.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Appointment, error)

	// ListByAgent returns the appointments handled by the agent.
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Appointment, error)

	// ListByProperty returns the appointments booked against a listing.
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Appointment, error)

	// ListAll returns every appointment, for admin oversight.
	ListAll(ctx context.Context) ([]*entity.Appointment, error)
}
