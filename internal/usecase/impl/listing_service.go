package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brokerage/config"
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

// CascadeCancelReason is the reason written on appointments cancelled
// because their listing was removed.
const CascadeCancelReason = "Property no longer available"

// listingService implements the ListingUsecase interface.
type listingService struct {
	propertyRepo    repository.PropertyRepository
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	notifier        service.Notifier
	lifecycle       config.LifecycleConfig
	logger          *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	PropertyRepo    repository.PropertyRepository
	AppointmentRepo repository.AppointmentRepository
	UserRepo        repository.UserRepository
	Notifier        service.Notifier
	Config          *config.Config
	Logger          *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		propertyRepo:    params.PropertyRepo,
		appointmentRepo: params.AppointmentRepo,
		userRepo:        params.UserRepo,
		notifier:        params.Notifier,
		lifecycle:       params.Config.Lifecycle,
		logger:          params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit creates a listing in pending state on behalf of an approved agent.
// Whatever status a client might send is ignored; every submission awaits
// admin review.
func (srv *listingService) Submit(ctx context.Context, input *usecase.SubmitListingInput) (*entity.Property, error) {
	agent, err := srv.userRepo.FindByID(ctx, input.AgentID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrReferentialGap.WithDetails("agent does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load submitting agent")
	}
	if !agent.IsApprovedAgent() {
		return nil, domainerrors.ErrAgentNotApproved
	}

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown property type: " + input.Type.String())
	}

	now := time.Now()
	property := &entity.Property{
		ID:          uuid.New(),
		AgentID:     agent.ID,
		Title:       input.Title,
		Type:        input.Type,
		Price:       input.Price,
		Location:    input.Location,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
		Description: input.Description,
		Photos:      input.Photos,
		Status:      entity.PropertyStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing submitted for review",
		slog.Any("propertyID", property.ID), slog.Any("agentID", agent.ID))

	if srv.lifecycle.NotifyAdminSubmission {
		srv.notifyAdmins(ctx, agent.Name, property.Title)
	}

	return property, nil
}

// notifyAdmins fans the new-submission notice out to every admin account.
func (srv *listingService) notifyAdmins(ctx context.Context, agentName, propertyTitle string) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to list admins for submission notice", slog.Any("error", err))

		return
	}

	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			srv.notifier.AdminNewSubmission(ctx, u.ID, agentName, propertyTitle)
		}
	}
}

// Approve moves a pending listing to active and notifies the agent.
func (srv *listingService) Approve(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.transition(ctx, propertyID, entity.PropertyStatusActive)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing approved", slog.Any("propertyID", property.ID))
	srv.notifier.AgentPropertyApproved(ctx, property.AgentID, property.Title)

	return property, nil
}

// Reject moves a pending listing to rejected, recording the mandatory reason.
func (srv *listingService) Reject(ctx context.Context, propertyID uuid.UUID, reason string) (*entity.Property, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrReasonRequired
	}

	property, err := srv.load(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	// Moderation only acts on the review queue. The state machine also
	// permits rejecting an active listing, but that edge is reserved for
	// re-review and never driven by the admin surface.
	if property.Status != entity.PropertyStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"only pending listings can be rejected")
	}

	property.Status = entity.PropertyStatusRejected
	property.RejectionReason = reason
	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to reject listing")
	}

	srv.log(ctx).Info("Listing rejected", slog.Any("propertyID", property.ID))
	srv.notifier.AgentPropertyRejected(ctx, property.AgentID, property.Title, reason)

	return property, nil
}

// MarkSold moves an active listing owned by agentID to sold.
func (srv *listingService) MarkSold(ctx context.Context, agentID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.loadForTransition(ctx, propertyID, entity.PropertyStatusSold)
	if err != nil {
		return nil, err
	}
	if property.AgentID != agentID {
		return nil, domainerrors.ErrForbidden.WithDetails("listing belongs to another agent")
	}

	property.Status = entity.PropertyStatusSold
	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to mark listing sold")
	}

	srv.log(ctx).Info("Listing marked sold", slog.Any("propertyID", property.ID))

	return property, nil
}

// Update merges the supplied fields into a listing owned by agentID.
// Status, ownership and the view counter are never editable here.
func (srv *listingService) Update(ctx context.Context, agentID, propertyID uuid.UUID, input *usecase.UpdateListingInput) (*entity.Property, error) {
	property, err := srv.load(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.AgentID != agentID {
		return nil, domainerrors.ErrForbidden.WithDetails("listing belongs to another agent")
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown property type: " + input.Type.String())
		}
		property.Type = *input.Type
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Area != nil {
		property.Area = *input.Area
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Photos != nil {
		property.Photos = input.Photos
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return property, nil
}

// Delete removes a listing and cancels its open appointments. Completed and
// already-cancelled appointments keep their history untouched.
func (srv *listingService) Delete(ctx context.Context, propertyID uuid.UUID) error {
	property, err := srv.load(ctx, propertyID)
	if err != nil {
		return err
	}

	appointments, err := srv.appointmentRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return errors.Wrap(err, "failed to load appointments for cascade cancel")
	}

	for _, appt := range appointments {
		if appt.Status.IsTerminal() {
			continue
		}

		appt.Status = entity.AppointmentStatusCancelled
		appt.CancellationReason = CascadeCancelReason
		if err := srv.appointmentRepo.Update(ctx, appt); err != nil {
			return errors.Wrap(err, "failed to cascade-cancel appointment")
		}

		if srv.lifecycle.NotifyCascadeCancel {
			srv.notifier.BookingCancelled(ctx, appt.CustomerID, property.Title, CascadeCancelReason, appt.ID)
		}
	}

	if err := srv.propertyRepo.Delete(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Info("Listing deleted",
		slog.Any("propertyID", propertyID), slog.Int("appointments", len(appointments)))

	return nil
}

// Get retrieves one listing by ID.
func (srv *listingService) Get(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	return srv.load(ctx, propertyID)
}

// RecordView increments the listing's view counter.
func (srv *listingService) RecordView(ctx context.Context, propertyID uuid.UUID) error {
	property, err := srv.load(ctx, propertyID)
	if err != nil {
		return err
	}

	property.Views++
	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return errors.Wrap(err, "failed to record view")
	}

	return nil
}

// ActiveListings returns the customer-facing catalog.
func (srv *listingService) ActiveListings(ctx context.Context) ([]*entity.Property, error) {
	listings, err := srv.propertyRepo.FindByStatus(ctx, entity.PropertyStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active listings")
	}

	return listings, nil
}

// ListByAgent returns every listing owned by the agent, any status.
func (srv *listingService) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Property, error) {
	listings, err := srv.propertyRepo.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent listings")
	}

	return listings, nil
}

// PendingListings returns submissions awaiting admin review.
func (srv *listingService) PendingListings(ctx context.Context) ([]*entity.Property, error) {
	listings, err := srv.propertyRepo.FindByStatus(ctx, entity.PropertyStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending listings")
	}

	return listings, nil
}

// ListAll returns the whole catalog.
func (srv *listingService) ListAll(ctx context.Context) ([]*entity.Property, error) {
	listings, err := srv.propertyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

// load fetches a listing, mapping the repository sentinel to the domain error.
func (srv *listingService) load(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, propertyID)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listing")
	}

	return property, nil
}

// loadForTransition fetches a listing and verifies the state machine permits
// moving it to next.
func (srv *listingService) loadForTransition(ctx context.Context, propertyID uuid.UUID, next entity.PropertyStatus) (*entity.Property, error) {
	property, err := srv.load(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !property.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot move listing from " + property.Status.String() + " to " + next.String())
	}

	return property, nil
}

// transition applies a plain status change with no extra bookkeeping.
func (srv *listingService) transition(ctx context.Context, propertyID uuid.UUID, next entity.PropertyStatus) (*entity.Property, error) {
	property, err := srv.loadForTransition(ctx, propertyID, next)
	if err != nil {
		return nil, err
	}

	property.Status = next
	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to update listing status")
	}

	return property, nil
}
