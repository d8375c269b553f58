// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete
// implementation.
type UserRepository interface {
	// List returns every user in insertion order.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the stored record matching user.ID and refreshes its
	// UpdatedAt timestamp.
	Update(ctx context.Context, user *entity.User) error

	// Users are never hard-deleted in this system; accounts are gated
	// through their status instead.
}

// SessionRepository persists the single current-user pointer. Login sets it,
// logout clears it; there is exactly one session per store.
type SessionRepository interface {
	// CurrentUserID returns the logged-in user's ID, or uuid.Nil when no
	// session is active.
	CurrentUserID(ctx context.Context) (uuid.UUID, error)

	// SetCurrentUser records id as the active session.
	SetCurrentUser(ctx context.Context, id uuid.UUID) error

	// ClearCurrentUser ends the active session.
	ClearCurrentUser(ctx context.Context) error
}
