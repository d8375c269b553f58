package impl

import (
	"context"
	"testing"

	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_AgentStats(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	active := env.createActiveListing(t, agent)
	env.submitListing(t, agent)
	sold := env.createActiveListing(t, agent)
	_, err := env.listings.MarkSold(ctx, agent.ID, sold.ID)
	require.NoError(t, err)

	env.bookViewing(t, customer, active)
	completed := env.completedViewing(t, customer, agent, active)
	_, err = env.reviews.Create(ctx, &usecase.CreateReviewInput{
		AppointmentID: completed.ID,
		CustomerID:    customer.ID,
		Rating:        4,
	})
	require.NoError(t, err)

	stats, err := env.dashboards.AgentStats(ctx, agent.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalListings)
	assert.Equal(t, 1, stats.ActiveListings)
	assert.Equal(t, 1, stats.PendingListings)
	assert.Equal(t, 1, stats.SoldListings)
	assert.Equal(t, 0, stats.RejectedListings)
	assert.Equal(t, 1, stats.PendingAppointments)
	assert.Equal(t, 1, stats.CompletedAppointments)
	assert.Equal(t, 1, stats.ReviewCount)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)
}

func TestDashboardService_AgentStatsRejectsNonAgent(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	_, err := env.dashboards.AgentStats(context.Background(), customer.ID)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDashboardService_AdminStats(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t)
	agent := env.createAgent(t)
	env.createUser(t, entity.RoleAgent, entity.UserStatusPending, "Pending Agent")
	customer := env.createCustomer(t)
	ctx := context.Background()

	listing := env.createActiveListing(t, agent)
	env.submitListing(t, agent)
	completed := env.completedViewing(t, customer, agent, listing)
	review, err := env.reviews.Create(ctx, &usecase.CreateReviewInput{
		AppointmentID: completed.ID,
		CustomerID:    customer.ID,
		Rating:        1,
		Comment:       "Misleading photos",
	})
	require.NoError(t, err)
	_, err = env.reviews.Flag(ctx, review.ID, "Under investigation")
	require.NoError(t, err)

	stats, err := env.dashboards.AdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalAgents)
	assert.Equal(t, 1, stats.PendingAgents)
	assert.Equal(t, 2, stats.TotalListings)
	assert.Equal(t, 1, stats.PendingListings)
	assert.Equal(t, 1, stats.ActiveListings)
	assert.Equal(t, 1, stats.TotalAppointments)
	assert.Equal(t, 1, stats.TotalReviews)
	assert.Equal(t, 1, stats.FlaggedReviews)
}
