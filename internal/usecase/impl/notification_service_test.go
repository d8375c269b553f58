package impl

import (
	"context"
	"testing"

	domainerrors "brokerage/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_FeedIsRecipientScoped(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	// Approval produces an agent-side notification.
	listing := env.submitListing(t, agent)
	_, err := env.listings.Approve(ctx, listing.ID)
	require.NoError(t, err)

	feed := env.notificationsFor(t, agent.ID)
	require.Len(t, feed, 1)

	// The customer cannot touch the agent's notification; it is reported
	// as missing, not forbidden.
	err = env.notifications.MarkRead(ctx, customer.ID, feed[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	err = env.notifications.Delete(ctx, customer.ID, feed[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	// The recipient can.
	require.NoError(t, env.notifications.MarkRead(ctx, agent.ID, feed[0].ID))
	unread, err := env.notifications.UnreadCount(ctx, agent.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, env.notifications.Delete(ctx, agent.ID, feed[0].ID))
	remaining, err := env.notifications.ListByUser(ctx, agent.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
