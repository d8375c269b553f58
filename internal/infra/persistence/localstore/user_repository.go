package localstore

import (
	"context"
	"strings"
	"time"

	"brokerage/config"
	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository on a mirrored
// collection.
type userRepository struct {
	users *collection[entity.User]
}

// NewUserRepository loads the user collection, installing the demo accounts
// on first run when seeding is enabled.
func NewUserRepository(ctx context.Context, mirror Mirror, cfg *config.Config) (repository.UserRepository, error) {
	var seed []*entity.User
	if cfg.Storage.Seed {
		seed = seedUsers()
	}

	users, err := newCollection(ctx, mirror, KeyUsers, func(u *entity.User) uuid.UUID { return u.ID }, seed)
	if err != nil {
		return nil, err
	}

	return &userRepository{users: users}, nil
}

func cloneUser(u *entity.User) *entity.User {
	copied := *u

	return &copied
}

// List returns every user in insertion order.
func (repo *userRepository) List(_ context.Context) ([]*entity.User, error) {
	items := repo.users.snapshot()
	out := make([]*entity.User, 0, len(items))
	for _, u := range items {
		out = append(out, cloneUser(u))
	}

	return out, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := repo.users.findByID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(u), nil
}

// FindByEmail retrieves a single user by their email address,
// case-insensitively.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	matches := repo.users.filter(func(u *entity.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(matches[0]), nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.users.append(ctx, cloneUser(user))
}

// Update replaces the stored record matching user.ID and refreshes its
// UpdatedAt timestamp.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	copied := cloneUser(user)
	copied.UpdatedAt = time.Now()

	found, err := repo.users.replace(ctx, copied)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = copied.UpdatedAt

	return nil
}
