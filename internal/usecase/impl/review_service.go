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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo      repository.ReviewRepository
	appointmentRepo repository.AppointmentRepository
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
	notifier        service.Notifier
	logger          *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo      repository.ReviewRepository
	AppointmentRepo repository.AppointmentRepository
	PropertyRepo    repository.PropertyRepository
	UserRepo        repository.UserRepository
	Notifier        service.Notifier
	Logger          *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:      params.ReviewRepo,
		appointmentRepo: params.AppointmentRepo,
		propertyRepo:    params.PropertyRepo,
		userRepo:        params.UserRepo,
		notifier:        params.Notifier,
		logger:          params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a review against a completed appointment. The appointment
// must belong to the reviewing customer and must not have been reviewed
// before; the review's property and agent come from the appointment, never
// from the client.
func (srv *reviewService) Create(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	appointment, err := srv.appointmentRepo.FindByID(ctx, input.AppointmentID)
	if errors.Is(err, repository.ErrAppointmentNotFound) {
		return nil, domainerrors.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load appointment for review")
	}

	if appointment.CustomerID != input.CustomerID {
		return nil, domainerrors.ErrForbidden.WithDetails("appointment belongs to another customer")
	}
	if appointment.Status != entity.AppointmentStatusCompleted {
		return nil, domainerrors.ErrAppointmentNotReviewable
	}

	if _, err := srv.reviewRepo.FindByAppointment(ctx, appointment.ID); err == nil {
		return nil, domainerrors.ErrAlreadyReviewed
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing review")
	}

	now := time.Now()
	review := &entity.Review{
		ID:            uuid.New(),
		PropertyID:    appointment.PropertyID,
		CustomerID:    appointment.CustomerID,
		AppointmentID: appointment.ID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Any("reviewID", review.ID),
		slog.Any("propertyID", review.PropertyID),
		slog.Int("rating", review.Rating))

	srv.notifyAgent(ctx, appointment, review.Rating)

	return review, nil
}

// notifyAgent tells the property's agent about the new review. Name lookups
// failing only degrade the notification copy, never the review itself.
func (srv *reviewService) notifyAgent(ctx context.Context, appointment *entity.Appointment, rating int) {
	customerName := "A customer"
	if customer, err := srv.userRepo.FindByID(ctx, appointment.CustomerID); err == nil {
		customerName = customer.Name
	}

	propertyTitle := "your property"
	if property, err := srv.propertyRepo.FindByID(ctx, appointment.PropertyID); err == nil {
		propertyTitle = property.Title
	}

	srv.notifier.AgentNewReview(ctx, appointment.AgentID, customerName, propertyTitle, rating)
}

// Flag marks a review for admin attention with a reason.
func (srv *reviewService) Flag(ctx context.Context, reviewID uuid.UUID, reason string) (*entity.Review, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrReasonRequired
	}

	review, err := srv.load(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Flagged = true
	review.FlagReason = reason
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to flag review")
	}

	return review, nil
}

// Unflag clears a review's flag.
func (srv *reviewService) Unflag(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.load(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Flagged = false
	review.FlagReason = ""
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to unflag review")
	}

	return review, nil
}

// AdminEdit rewrites a review's comment, marking it as moderated. The
// original rating stands; moderation never rewrites scores.
func (srv *reviewService) AdminEdit(ctx context.Context, reviewID uuid.UUID, comment, note string) (*entity.Review, error) {
	review, err := srv.load(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Comment = comment
	review.AdminEdited = true
	review.AdminNote = note
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to edit review")
	}

	srv.log(ctx).Info("Review edited by admin", slog.Any("reviewID", review.ID))

	return review, nil
}

// Delete removes a review outright.
func (srv *reviewService) Delete(ctx context.Context, reviewID uuid.UUID) error {
	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// Get retrieves one review by ID.
func (srv *reviewService) Get(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	return srv.load(ctx, reviewID)
}

// ListByProperty returns the reviews left against a listing.
func (srv *reviewService) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list property reviews")
	}

	return reviews, nil
}

// ListByCustomer returns the reviews written by a customer.
func (srv *reviewService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer reviews")
	}

	return reviews, nil
}

// ListAll returns every review.
func (srv *reviewService) ListAll(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// AverageRating returns the mean rating for a listing. A listing with no
// reviews averages exactly 0, never NaN.
func (srv *reviewService) AverageRating(ctx context.Context, propertyID uuid.UUID) (float64, error) {
	reviews, err := srv.reviewRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load reviews for average")
	}

	if len(reviews) == 0 {
		return 0, nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews)), nil
}

func (srv *reviewService) load(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review")
	}

	return review, nil
}
