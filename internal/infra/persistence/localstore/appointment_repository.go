package localstore

import (
	"context"
	"time"

	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
)

// appointmentRepository implements repository.AppointmentRepository on a
// mirrored collection.
type appointmentRepository struct {
	appointments *collection[entity.Appointment]
}

// NewAppointmentRepository loads the appointment collection. Appointments
// are never seeded; the demo dataset starts without bookings.
func NewAppointmentRepository(ctx context.Context, mirror Mirror) (repository.AppointmentRepository, error) {
	appointments, err := newCollection(ctx, mirror, KeyAppointments, func(a *entity.Appointment) uuid.UUID { return a.ID }, nil)
	if err != nil {
		return nil, err
	}

	return &appointmentRepository{appointments: appointments}, nil
}

func cloneAppointment(a *entity.Appointment) *entity.Appointment {
	copied := *a

	return &copied
}

func cloneAppointments(items []*entity.Appointment) []*entity.Appointment {
	out := make([]*entity.Appointment, 0, len(items))
	for _, a := range items {
		out = append(out, cloneAppointment(a))
	}

	return out
}

// List returns every appointment in insertion order.
func (repo *appointmentRepository) List(_ context.Context) ([]*entity.Appointment, error) {
	return cloneAppointments(repo.appointments.snapshot()), nil
}

// FindByID retrieves a single appointment by its unique ID.
func (repo *appointmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := repo.appointments.findByID(id)
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}

	return cloneAppointment(a), nil
}

// FindByCustomer retrieves all appointments booked by a customer.
func (repo *appointmentRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Appointment, error) {
	return cloneAppointments(repo.appointments.filter(func(a *entity.Appointment) bool {
		return a.CustomerID == customerID
	})), nil
}

// FindByAgent retrieves all appointments handled by an agent.
func (repo *appointmentRepository) FindByAgent(_ context.Context, agentID uuid.UUID) ([]*entity.Appointment, error) {
	return cloneAppointments(repo.appointments.filter(func(a *entity.Appointment) bool {
		return a.AgentID == agentID
	})), nil
}

// FindByProperty retrieves all appointments referencing a property.
func (repo *appointmentRepository) FindByProperty(_ context.Context, propertyID uuid.UUID) ([]*entity.Appointment, error) {
	return cloneAppointments(repo.appointments.filter(func(a *entity.Appointment) bool {
		return a.PropertyID == propertyID
	})), nil
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return repo.appointments.append(ctx, cloneAppointment(appointment))
}

// Update replaces the stored record matching appointment.ID and refreshes
// its UpdatedAt timestamp.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	copied := cloneAppointment(appointment)
	copied.UpdatedAt = time.Now()

	found, err := repo.appointments.replace(ctx, copied)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrAppointmentNotFound
	}
	appointment.UpdatedAt = copied.UpdatedAt

	return nil
}
