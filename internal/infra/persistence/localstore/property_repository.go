package localstore

import (
	"context"
	"time"

	"brokerage/config"
	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
)

// propertyRepository implements repository.PropertyRepository on a mirrored
// collection.
type propertyRepository struct {
	properties *collection[entity.Property]
}

// NewPropertyRepository loads the property collection, installing the demo
// listings on first run when seeding is enabled.
func NewPropertyRepository(ctx context.Context, mirror Mirror, cfg *config.Config) (repository.PropertyRepository, error) {
	var seed []*entity.Property
	if cfg.Storage.Seed {
		seed = seedProperties()
	}

	properties, err := newCollection(ctx, mirror, KeyProperties, func(p *entity.Property) uuid.UUID { return p.ID }, seed)
	if err != nil {
		return nil, err
	}

	return &propertyRepository{properties: properties}, nil
}

func cloneProperty(p *entity.Property) *entity.Property {
	copied := *p
	copied.Photos = append([]string(nil), p.Photos...)

	return &copied
}

func cloneProperties(items []*entity.Property) []*entity.Property {
	out := make([]*entity.Property, 0, len(items))
	for _, p := range items {
		out = append(out, cloneProperty(p))
	}

	return out
}

// List returns every property in insertion order.
func (repo *propertyRepository) List(_ context.Context) ([]*entity.Property, error) {
	return cloneProperties(repo.properties.snapshot()), nil
}

// FindByID retrieves a single property by its unique ID.
func (repo *propertyRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	p, ok := repo.properties.findByID(id)
	if !ok {
		return nil, repository.ErrPropertyNotFound
	}

	return cloneProperty(p), nil
}

// FindByAgent retrieves all properties owned by an agent.
func (repo *propertyRepository) FindByAgent(_ context.Context, agentID uuid.UUID) ([]*entity.Property, error) {
	return cloneProperties(repo.properties.filter(func(p *entity.Property) bool {
		return p.AgentID == agentID
	})), nil
}

// FindByStatus retrieves all properties in a given lifecycle state.
func (repo *propertyRepository) FindByStatus(_ context.Context, status entity.PropertyStatus) ([]*entity.Property, error) {
	return cloneProperties(repo.properties.filter(func(p *entity.Property) bool {
		return p.Status == status
	})), nil
}

// Create persists a new property.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return repo.properties.append(ctx, cloneProperty(property))
}

// Update replaces the stored record matching property.ID and refreshes its
// UpdatedAt timestamp.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	copied := cloneProperty(property)
	copied.UpdatedAt = time.Now()

	found, err := repo.properties.replace(ctx, copied)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrPropertyNotFound
	}
	property.UpdatedAt = copied.UpdatedAt

	return nil
}

// Delete removes a property. Cascading to dependent appointments is the
// responsibility of the lifecycle layer.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := repo.properties.remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrPropertyNotFound
	}

	return nil
}
