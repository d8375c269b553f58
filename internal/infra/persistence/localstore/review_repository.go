package localstore

import (
	"context"
	"time"

	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
)

// reviewRepository implements repository.ReviewRepository on a mirrored
// collection.
type reviewRepository struct {
	reviews *collection[entity.Review]
}

// NewReviewRepository loads the review collection.
func NewReviewRepository(ctx context.Context, mirror Mirror) (repository.ReviewRepository, error) {
	reviews, err := newCollection(ctx, mirror, KeyReviews, func(r *entity.Review) uuid.UUID { return r.ID }, nil)
	if err != nil {
		return nil, err
	}

	return &reviewRepository{reviews: reviews}, nil
}

func cloneReview(r *entity.Review) *entity.Review {
	copied := *r

	return &copied
}

func cloneReviews(items []*entity.Review) []*entity.Review {
	out := make([]*entity.Review, 0, len(items))
	for _, r := range items {
		out = append(out, cloneReview(r))
	}

	return out
}

// List returns every review in insertion order.
func (repo *reviewRepository) List(_ context.Context) ([]*entity.Review, error) {
	return cloneReviews(repo.reviews.snapshot()), nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r, ok := repo.reviews.findByID(id)
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return cloneReview(r), nil
}

// FindByProperty retrieves all reviews for a property.
func (repo *reviewRepository) FindByProperty(_ context.Context, propertyID uuid.UUID) ([]*entity.Review, error) {
	return cloneReviews(repo.reviews.filter(func(r *entity.Review) bool {
		return r.PropertyID == propertyID
	})), nil
}

// FindByCustomer retrieves all reviews written by a customer.
func (repo *reviewRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Review, error) {
	return cloneReviews(repo.reviews.filter(func(r *entity.Review) bool {
		return r.CustomerID == customerID
	})), nil
}

// FindByAppointment retrieves the review tied to an appointment, if any.
func (repo *reviewRepository) FindByAppointment(_ context.Context, appointmentID uuid.UUID) (*entity.Review, error) {
	matches := repo.reviews.filter(func(r *entity.Review) bool {
		return r.AppointmentID == appointmentID
	})
	if len(matches) == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return cloneReview(matches[0]), nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return repo.reviews.append(ctx, cloneReview(review))
}

// Update replaces the stored record matching review.ID and refreshes its
// UpdatedAt timestamp.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	copied := cloneReview(review)
	copied.UpdatedAt = time.Now()

	found, err := repo.reviews.replace(ctx, copied)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrReviewNotFound
	}
	review.UpdatedAt = copied.UpdatedAt

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := repo.reviews.remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrReviewNotFound
	}

	return nil
}
