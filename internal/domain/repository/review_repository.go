// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// List returns every review in insertion order.
	List(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProperty retrieves all reviews for a property.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error)

	// FindByCustomer retrieves all reviews written by a customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Review, error)

	// FindByAppointment retrieves the review tied to an appointment, if any.
	FindByAppointment(ctx context.Context, appointmentID uuid.UUID) (*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update replaces the stored record matching review.ID and refreshes its
	// UpdatedAt timestamp.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error
}
