package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "brokerage/internal/delivery/context"
	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/domain/repository"
	"brokerage/internal/domain/service"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	appointmentRepo repository.AppointmentRepository
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
	notifier        service.Notifier
	logger          *slog.Logger

	// now is swapped out in tests to pin the booking lead-time check.
	now func() time.Time
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	PropertyRepo    repository.PropertyRepository
	UserRepo        repository.UserRepository
	Notifier        service.Notifier
	Logger          *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		appointmentRepo: params.AppointmentRepo,
		propertyRepo:    params.PropertyRepo,
		userRepo:        params.UserRepo,
		notifier:        params.Notifier,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Book creates a pending appointment for an active listing. The viewing date
// must be tomorrow or later relative to the local calendar day, and the
// appointment's agent is copied from the property so agent-side queries never
// need a join.
func (srv *bookingService) Book(ctx context.Context, input *usecase.BookInput) (*entity.Appointment, error) {
	customer, err := srv.userRepo.FindByID(ctx, input.CustomerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrReferentialGap.WithDetails("customer does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booking customer")
	}

	property, err := srv.propertyRepo.FindByID(ctx, input.PropertyID)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listing for booking")
	}

	if !property.IsVisibleToCustomers() {
		return nil, domainerrors.ErrPropertyNotActive
	}

	if !srv.meetsLeadTime(input.Date) {
		return nil, domainerrors.ErrBookingLeadTime
	}

	if strings.TrimSpace(input.TimeSlot) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("time slot is required")
	}

	now := srv.now()
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PropertyID:      property.ID,
		CustomerID:      customer.ID,
		AgentID:         property.AgentID,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		Status:          entity.AppointmentStatusPending,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	srv.log(ctx).Info("Viewing requested",
		slog.Any("appointmentID", appointment.ID),
		slog.Any("propertyID", property.ID),
		slog.Any("customerID", customer.ID))

	srv.notifier.AgentNewBooking(ctx, property.AgentID, customer.Name, property.Title, appointment.ID)

	return appointment, nil
}

// meetsLeadTime reports whether date falls on tomorrow's calendar day or
// later. Same-day viewings are never bookable, regardless of time of day.
func (srv *bookingService) meetsLeadTime(date time.Time) bool {
	now := srv.now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	return !date.Before(tomorrow)
}

// Confirm moves a pending appointment to confirmed and notifies the customer.
func (srv *bookingService) Confirm(ctx context.Context, agentID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.loadForTransition(ctx, appointmentID, entity.AppointmentStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if appointment.AgentID != agentID {
		return nil, domainerrors.ErrForbidden.WithDetails("appointment belongs to another agent")
	}

	appointment.Status = entity.AppointmentStatusConfirmed
	if err := srv.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to confirm appointment")
	}

	srv.log(ctx).Info("Viewing confirmed", slog.Any("appointmentID", appointment.ID))
	srv.notifier.CustomerBookingConfirmed(ctx, appointment.CustomerID, srv.propertyTitle(ctx, appointment.PropertyID), appointment.ID)

	return appointment, nil
}

// Complete moves a confirmed appointment to completed, which unlocks the
// customer's ability to review the property.
func (srv *bookingService) Complete(ctx context.Context, agentID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.loadForTransition(ctx, appointmentID, entity.AppointmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	if appointment.AgentID != agentID {
		return nil, domainerrors.ErrForbidden.WithDetails("appointment belongs to another agent")
	}

	appointment.Status = entity.AppointmentStatusCompleted
	if err := srv.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to complete appointment")
	}

	srv.log(ctx).Info("Viewing completed", slog.Any("appointmentID", appointment.ID))
	srv.notifier.CustomerBookingCompleted(ctx, appointment.CustomerID, srv.propertyTitle(ctx, appointment.PropertyID), appointment.ID)

	return appointment, nil
}

// Cancel moves a pending appointment to cancelled with a reason and notifies
// the owning agent. Confirmed viewings cannot be cancelled by the customer;
// only removing the listing cancels those.
func (srv *bookingService) Cancel(ctx context.Context, customerID, appointmentID uuid.UUID, reason string) (*entity.Appointment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrReasonRequired
	}

	appointment, err := srv.load(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden.WithDetails("appointment belongs to another customer")
	}
	if appointment.Status != entity.AppointmentStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"only pending viewings can be cancelled by the customer")
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancellationReason = reason
	if err := srv.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to cancel appointment")
	}

	srv.log(ctx).Info("Viewing cancelled", slog.Any("appointmentID", appointment.ID))
	srv.notifier.BookingCancelled(ctx, appointment.AgentID, srv.propertyTitle(ctx, appointment.PropertyID), reason, appointment.ID)

	return appointment, nil
}

// Get retrieves one appointment by ID.
func (srv *bookingService) Get(ctx context.Context, appointmentID uuid.UUID) (*entity.Appointment, error) {
	return srv.load(ctx, appointmentID)
}

// ListByCustomer returns the customer's appointments.
func (srv *bookingService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer appointments")
	}

	return appointments, nil
}

// ListByAgent returns the appointments handled by the agent.
func (srv *bookingService) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent appointments")
	}

	return appointments, nil
}

// ListByProperty returns the appointments booked against a listing.
func (srv *bookingService) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list property appointments")
	}

	return appointments, nil
}

// ListAll returns every appointment.
func (srv *bookingService) ListAll(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

func (srv *bookingService) load(ctx context.Context, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if errors.Is(err, repository.ErrAppointmentNotFound) {
		return nil, domainerrors.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load appointment")
	}

	return appointment, nil
}

func (srv *bookingService) loadForTransition(ctx context.Context, appointmentID uuid.UUID, next entity.AppointmentStatus) (*entity.Appointment, error) {
	appointment, err := srv.load(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot move viewing from " + appointment.Status.String() + " to " + next.String())
	}

	return appointment, nil
}

// propertyTitle resolves a listing title for notification copy, falling back
// to a neutral label when the listing was already removed.
func (srv *bookingService) propertyTitle(ctx context.Context, propertyID uuid.UUID) string {
	property, err := srv.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return "the property"
	}

	return property.Title
}
