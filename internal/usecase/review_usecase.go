package usecase

import (
	"context"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data a customer supplies when reviewing a
// completed viewing. The property and agent are resolved from the
// appointment.
type CreateReviewInput struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	CustomerID    uuid.UUID `json:"customer_id" validate:"required"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Comment       string    `json:"comment"`
}

// ReviewUsecase defines the interface for review creation, moderation and
// rating aggregation.
type ReviewUsecase interface {
	// Create records a review against a completed appointment owned by the
	// customer. Each appointment may only be reviewed once. The agent is
	// notified.
	Create(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// Flag marks a review for admin attention with a reason.
	Flag(ctx context.Context, reviewID uuid.UUID, reason string) (*entity.Review, error)

	// Unflag clears a review's flag.
	Unflag(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// AdminEdit rewrites a review's comment, marking it as admin-edited
	// with a moderation note.
	AdminEdit(ctx context.Context, reviewID uuid.UUID, comment, note string) (*entity.Review, error)

	// Delete removes a review outright.
	Delete(ctx context.Context, reviewID uuid.UUID) error

	// Get retrieves one review by ID.
	Get(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// ListByProperty returns the reviews left against a listing.
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error)

	// ListByCustomer returns the reviews written by a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Review, error)

	// ListAll returns every review, for admin moderation.
	ListAll(ctx context.Context) ([]*entity.Review, error)

	// AverageRating returns the mean rating for a listing, or exactly 0
	// when it has no reviews.
	AverageRating(ctx context.Context, propertyID uuid.UUID) (float64, error)
}
