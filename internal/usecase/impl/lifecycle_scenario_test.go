package impl

import (
	"context"
	"testing"

	"brokerage/internal/domain/entity"
	"brokerage/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullBrokerageLifecycle walks the happy path end to end: an agent
// applies and is approved, lists a property, an admin activates it, a
// customer books and completes a viewing and leaves a review, and the
// dashboards reflect all of it.
func TestFullBrokerageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Agent applies and the admin approves the application.
	agentOut, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		Name:          "Maria Santos",
		Email:         "maria@santosrealty.ph",
		Password:      "agent123",
		Role:          entity.RoleAgent,
		LicenseNumber: "PRC-0012345",
		Agency:        "Santos Realty",
	})
	require.NoError(t, err)
	agent, err := env.accounts.ApproveAgent(ctx, agentOut.User.ID)
	require.NoError(t, err)

	// The approved agent submits a listing and the admin activates it.
	listing, err := env.listings.Submit(ctx, &usecase.SubmitListingInput{
		AgentID:   agent.ID,
		Title:     "Garden Bungalow in Tagaytay",
		Type:      entity.PropertyTypeHouse,
		Price:     7_200_000,
		Location:  "Tagaytay City",
		Bedrooms:  3,
		Bathrooms: 2,
		Area:      120,
	})
	require.NoError(t, err)
	require.Equal(t, entity.PropertyStatusPending, listing.Status)

	listing, err = env.listings.Approve(ctx, listing.ID)
	require.NoError(t, err)

	// A customer finds it in the catalog and books a viewing.
	customerOut, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		Name:     "Juan dela Cruz",
		Email:    "juan@example.com",
		Password: "customer123",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)
	customer := customerOut.User

	catalog, err := env.listings.ActiveListings(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	appointment, err := env.bookings.Book(ctx, &usecase.BookInput{
		PropertyID: listing.ID,
		CustomerID: customer.ID,
		Date:       env.tomorrow(),
		TimeSlot:   "10:00 AM",
	})
	require.NoError(t, err)
	require.Equal(t, agent.ID, appointment.AgentID)

	// The agent confirms and later completes the viewing.
	_, err = env.bookings.Confirm(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)
	_, err = env.bookings.Complete(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)

	// The customer reviews the property.
	review, err := env.reviews.Create(ctx, &usecase.CreateReviewInput{
		AppointmentID: appointment.ID,
		CustomerID:    customer.ID,
		Rating:        5,
		Comment:       "Lovely property and a very helpful agent.",
	})
	require.NoError(t, err)
	assert.Equal(t, listing.ID, review.PropertyID)

	avg, err := env.reviews.AverageRating(ctx, listing.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 1e-9)

	// Both dashboards line up with what just happened.
	agentStats, err := env.dashboards.AgentStats(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, agentStats.ActiveListings)
	assert.Equal(t, 1, agentStats.CompletedAppointments)
	assert.InDelta(t, 5.0, agentStats.AverageRating, 1e-9)

	adminStats, err := env.dashboards.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, adminStats.ActiveListings)
	assert.Equal(t, 1, adminStats.TotalAppointments)
	assert.Equal(t, 1, adminStats.TotalReviews)

	// Everyone got their notifications along the way.
	agentFeed := env.notificationsFor(t, agent.ID)
	customerFeed := env.notificationsFor(t, customer.ID)
	assert.NotEmpty(t, agentFeed)
	assert.NotEmpty(t, customerFeed)

	unread, err := env.notifications.UnreadCount(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, len(customerFeed), unread)

	require.NoError(t, env.notifications.MarkAllRead(ctx, customer.ID))
	unread, err = env.notifications.UnreadCount(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
