// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines the interface for listing persistence.
type PropertyRepository interface {
	// List returns every property in insertion order.
	List(ctx context.Context) ([]*entity.Property, error)

	// FindByID retrieves a single property by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByAgent retrieves all properties owned by an agent.
	FindByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Property, error)

	// FindByStatus retrieves all properties in a given lifecycle state.
	FindByStatus(ctx context.Context, status entity.PropertyStatus) ([]*entity.Property, error)

	// Create persists a new property.
	Create(ctx context.Context, property *entity.Property) error

	// Update replaces the stored record matching property.ID and refreshes
	// its UpdatedAt timestamp.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property. Cascading to dependent appointments is the
	// responsibility of the lifecycle layer, not the store.
	Delete(ctx context.Context, id uuid.UUID) error
}
