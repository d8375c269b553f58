package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"
	"brokerage/internal/infra/persistence/localstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (repository.NotificationRepository, *dispatcher) {
	t.Helper()

	repo, err := localstore.NewNotificationRepository(context.Background(), localstore.NewMemoryMirror())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return repo, NewDispatcher(repo, logger).(*dispatcher)
}

func TestDispatcher_AgentNewBooking(t *testing.T) {
	repo, d := newTestDispatcher(t)
	ctx := context.Background()
	agentID := uuid.New()
	appointmentID := uuid.New()

	d.AgentNewBooking(ctx, agentID, "Juan dela Cruz", "Garden Bungalow", appointmentID)

	feed, err := repo.FindByUser(ctx, agentID)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	got := feed[0]
	assert.Equal(t, entity.NotificationTypeInfo, got.Type)
	assert.Equal(t, "New Appointment Request", got.Title)
	assert.Equal(t, "Juan dela Cruz has requested to view Garden Bungalow", got.Message)
	assert.Equal(t, "/agent/appointments/"+appointmentID.String(), got.Link)
	assert.False(t, got.Read)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestDispatcher_AgentRejectedCarriesReason(t *testing.T) {
	repo, d := newTestDispatcher(t)
	ctx := context.Background()
	agentID := uuid.New()

	d.AgentRejected(ctx, agentID, "License could not be verified")

	feed, err := repo.FindByUser(ctx, agentID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, entity.NotificationTypeError, feed[0].Type)
	assert.Contains(t, feed[0].Message, "License could not be verified")
}
