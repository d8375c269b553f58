package localstore

import (
	"context"
	"encoding/json"

	"brokerage/internal/domain/repository"
	"brokerage/internal/errors"

	"github.com/google/uuid"
)

// sessionRepository persists the single current-user pointer next to the
// entity collections, under its own mirror key.
type sessionRepository struct {
	mirror Mirror
}

// NewSessionRepository wires the current-user pointer to the mirror.
func NewSessionRepository(mirror Mirror) repository.SessionRepository {
	return &sessionRepository{mirror: mirror}
}

// CurrentUserID returns the logged-in user's ID, or uuid.Nil when no session
// is active.
func (repo *sessionRepository) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	raw, err := repo.mirror.Load(ctx, KeyCurrentUser)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == nil {
		return uuid.Nil, nil
	}

	var id uuid.UUID
	if err := json.Unmarshal(raw, &id); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to decode current user pointer")
	}

	return id, nil
}

// SetCurrentUser records id as the active session.
func (repo *sessionRepository) SetCurrentUser(ctx context.Context, id uuid.UUID) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return errors.Wrap(err, "failed to encode current user pointer")
	}

	return repo.mirror.Save(ctx, KeyCurrentUser, raw)
}

// ClearCurrentUser ends the active session.
func (repo *sessionRepository) ClearCurrentUser(ctx context.Context) error {
	return repo.mirror.Delete(ctx, KeyCurrentUser)
}
