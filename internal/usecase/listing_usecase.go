package usecase

import (
	"context"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitListingInput defines the data an agent supplies when submitting a
// property for review. The listing always enters the catalog as pending
// regardless of any status the client might send.
type SubmitListingInput struct {
	AgentID     uuid.UUID           `json:"agent_id" validate:"required"`
	Title       string              `json:"title" validate:"required"`
	Type        entity.PropertyType `json:"type" validate:"required"`
	Price       int64               `json:"price" validate:"required,gt=0"`
	Location    string              `json:"location" validate:"required"`
	Bedrooms    int                 `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int                 `json:"bathrooms" validate:"gte=0"`
	Area        float64             `json:"area" validate:"gt=0"`
	Description string              `json:"description"`
	Photos      []string            `json:"photos"`
}

// UpdateListingInput defines the editable listing fields. Nil fields are
// left unchanged. Status and ownership are never editable through this path.
type UpdateListingInput struct {
	Title       *string              `json:"title"`
	Type        *entity.PropertyType `json:"type"`
	Price       *int64               `json:"price"`
	Location    *string              `json:"location"`
	Bedrooms    *int                 `json:"bedrooms"`
	Bathrooms   *int                 `json:"bathrooms"`
	Area        *float64             `json:"area"`
	Description *string              `json:"description"`
	Photos      []string             `json:"photos"`
}

// ListingUsecase defines the interface for the property catalog and its
// moderation lifecycle.
type ListingUsecase interface {
	// Submit creates a pending listing on behalf of an approved agent.
	Submit(ctx context.Context, input *SubmitListingInput) (*entity.Property, error)

	// Approve moves a pending listing to active and notifies the agent.
	Approve(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error)

	// Reject moves a pending listing to rejected, records the reason and
	// notifies the agent. The reason is mandatory.
	Reject(ctx context.Context, propertyID uuid.UUID, reason string) (*entity.Property, error)

	// MarkSold moves an active listing owned by agentID to sold.
	MarkSold(ctx context.Context, agentID, propertyID uuid.UUID) (*entity.Property, error)

	// Update merges the supplied fields into a listing owned by agentID.
	Update(ctx context.Context, agentID, propertyID uuid.UUID, input *UpdateListingInput) (*entity.Property, error)

	// Delete removes a listing and cancels its open appointments, notifying
	// each affected customer.
	Delete(ctx context.Context, propertyID uuid.UUID) error

	// Get retrieves one listing by ID.
	Get(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error)

	// RecordView increments the listing's view counter.
	RecordView(ctx context.Context, propertyID uuid.UUID) error

	// ActiveListings returns the customer-facing catalog.
	ActiveListings(ctx context.Context) ([]*entity.Property, error)

	// ListByAgent returns every listing owned by the agent, any status.
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Property, error)

	// PendingListings returns submissions awaiting admin review.
	PendingListings(ctx context.Context) ([]*entity.Property, error)

	// ListAll returns the whole catalog, for admin oversight.
	ListAll(ctx context.Context) ([]*entity.Property, error)
}
