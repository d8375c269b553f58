package localstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"brokerage/config"
	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConfig(seed bool) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Seed = seed

	return cfg
}

func newTestUser(name string) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:        uuid.New(),
		Email:     uuid.New().String() + "@example.com",
		Password:  "secret123",
		Name:      name,
		Role:      entity.RoleCustomer,
		Status:    entity.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_SeedsOnFirstRunOnly(t *testing.T) {
	ctx := context.Background()
	mirror := NewMemoryMirror()

	repo, err := NewUserRepository(ctx, mirror, seedConfig(true))
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	admin, err := repo.FindByID(ctx, SeedAdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	// A fresh repository over the same mirror sees the stored data, not a
	// second seeding pass.
	extra := newTestUser("Extra")
	require.NoError(t, repo.Create(ctx, extra))

	reloaded, err := NewUserRepository(ctx, mirror, seedConfig(true))
	require.NoError(t, err)
	users, err = reloaded.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestUserRepository_NoSeedWhenDisabled(t *testing.T) {
	ctx := context.Background()

	repo, err := NewUserRepository(ctx, NewMemoryMirror(), seedConfig(false))
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_WritesThroughToMirror(t *testing.T) {
	ctx := context.Background()
	mirror := NewMemoryMirror()

	repo, err := NewUserRepository(ctx, mirror, seedConfig(false))
	require.NoError(t, err)

	user := newTestUser("Juan dela Cruz")
	require.NoError(t, repo.Create(ctx, user))

	raw, err := mirror.Load(ctx, KeyUsers)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var stored []*entity.User
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, user.ID, stored[0].ID)
	assert.Equal(t, user.Email, stored[0].Email)
}

func TestUserRepository_ReturnsClones(t *testing.T) {
	ctx := context.Background()

	repo, err := NewUserRepository(ctx, NewMemoryMirror(), seedConfig(false))
	require.NoError(t, err)

	user := newTestUser("Juan dela Cruz")
	require.NoError(t, repo.Create(ctx, user))

	// Mutating what a read returned must not leak into the store.
	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	got.Name = "Defaced"

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan dela Cruz", again.Name)

	// Nor must mutating the caller's entity after Create.
	user.Name = "Also Defaced"
	again, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan dela Cruz", again.Name)
}

func TestUserRepository_FindByEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()

	repo, err := NewUserRepository(ctx, NewMemoryMirror(), seedConfig(false))
	require.NoError(t, err)

	user := newTestUser("Juan dela Cruz")
	user.Email = "juan@example.com"
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.FindByEmail(ctx, "JUAN@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateMissingUserFails(t *testing.T) {
	ctx := context.Background()

	repo, err := NewUserRepository(ctx, NewMemoryMirror(), seedConfig(false))
	require.NoError(t, err)

	err = repo.Update(ctx, newTestUser("Ghost"))
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mirror := NewMemoryMirror()
	repo := NewSessionRepository(mirror)

	id, err := repo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	userID := uuid.New()
	require.NoError(t, repo.SetCurrentUser(ctx, userID))

	id, err = repo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	// The pointer survives a reload from the same mirror.
	id, err = NewSessionRepository(mirror).CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	require.NoError(t, repo.ClearCurrentUser(ctx))
	id, err = repo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestPropertyRepository_SeedListings(t *testing.T) {
	ctx := context.Background()

	repo, err := NewPropertyRepository(ctx, NewMemoryMirror(), seedConfig(true))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	active, err := repo.FindByStatus(ctx, entity.PropertyStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	pending, err := repo.FindByStatus(ctx, entity.PropertyStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	for _, p := range all {
		assert.Equal(t, SeedAgentID, p.AgentID)
	}
}

func TestPropertyRepository_DeleteMissingFails(t *testing.T) {
	ctx := context.Background()

	repo, err := NewPropertyRepository(ctx, NewMemoryMirror(), seedConfig(false))
	require.NoError(t, err)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func newTestNotification(userID uuid.UUID, title string, createdAt time.Time) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      entity.NotificationTypeInfo,
		Title:     title,
		Message:   "message",
		CreatedAt: createdAt,
	}
}

func TestNotificationRepository_FeedNewestFirst(t *testing.T) {
	ctx := context.Background()

	repo, err := NewNotificationRepository(ctx, NewMemoryMirror())
	require.NoError(t, err)

	userID := uuid.New()
	otherID := uuid.New()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newTestNotification(userID, "first", base)))
	require.NoError(t, repo.Create(ctx, newTestNotification(userID, "second", base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, newTestNotification(otherID, "elsewhere", base.Add(2*time.Minute))))

	feed, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Title)
	assert.Equal(t, "first", feed[1].Title)
}

func TestNotificationRepository_ReadTracking(t *testing.T) {
	ctx := context.Background()

	repo, err := NewNotificationRepository(ctx, NewMemoryMirror())
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now()
	first := newTestNotification(userID, "first", now)
	second := newTestNotification(userID, "second", now.Add(time.Second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	count, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	count, err = repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, repo.MarkRead(ctx, uuid.New()), repository.ErrNotificationNotFound)

	require.NoError(t, repo.MarkAllRead(ctx, userID))
	count, err = repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Delete(ctx, second.ID))
	feed, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, first.ID, feed[0].ID)
}
