package impl

import (
	"context"
	"testing"
	"time"

	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_BookCopiesAgentFromProperty(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)

	appointment := env.bookViewing(t, customer, listing)

	assert.Equal(t, entity.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, agent.ID, appointment.AgentID)
	assert.Equal(t, customer.ID, appointment.CustomerID)
	assert.Equal(t, "10:00 AM", appointment.TimeSlot)

	feed := env.notificationsFor(t, agent.ID)
	// The approval notice from listing setup plus the booking request.
	require.Len(t, feed, 2)
	titles := []string{feed[0].Title, feed[1].Title}
	assert.Contains(t, titles, "New Appointment Request")
	assert.Contains(t, titles, "Property Approved")
}

func TestBookingService_BookRejectsSameDayAndPast(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		date time.Time
	}{
		{"same day", env.clock},
		{"later the same day", env.clock.Add(10 * time.Hour)},
		{"yesterday", env.clock.AddDate(0, 0, -1)},
	} {
		_, err := env.bookings.Book(ctx, &usecase.BookInput{
			PropertyID: listing.ID,
			CustomerID: customer.ID,
			Date:       tc.date,
			TimeSlot:   "10:00 AM",
		})
		assert.ErrorIs(t, err, domainerrors.ErrBookingLeadTime, tc.name)
	}
}

func TestBookingService_BookRequiresActiveListing(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	pending := env.submitListing(t, agent)
	_, err := env.bookings.Book(ctx, &usecase.BookInput{
		PropertyID: pending.ID,
		CustomerID: customer.ID,
		Date:       env.tomorrow(),
		TimeSlot:   "10:00 AM",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotActive)

	sold := env.createActiveListing(t, agent)
	_, err = env.listings.MarkSold(ctx, agent.ID, sold.ID)
	require.NoError(t, err)
	_, err = env.bookings.Book(ctx, &usecase.BookInput{
		PropertyID: sold.ID,
		CustomerID: customer.ID,
		Date:       env.tomorrow(),
		TimeSlot:   "10:00 AM",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotActive)
}

func TestBookingService_BookRejectsUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	listing := env.createActiveListing(t, agent)

	_, err := env.bookings.Book(context.Background(), &usecase.BookInput{
		PropertyID: listing.ID,
		CustomerID: uuid.New(), // never stored
		Date:       env.tomorrow(),
		TimeSlot:   "10:00 AM",
	})

	assert.ErrorIs(t, err, domainerrors.ErrReferentialGap)
}

func TestBookingService_ConfirmThenCompleteNotifiesCustomer(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)
	ctx := context.Background()

	appointment := env.bookViewing(t, customer, listing)

	confirmed, err := env.bookings.Confirm(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, confirmed.Status)

	completed, err := env.bookings.Complete(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, completed.Status)

	feed := env.notificationsFor(t, customer.ID)
	require.Len(t, feed, 2)
	titles := []string{feed[0].Title, feed[1].Title}
	assert.Contains(t, titles, "Appointment Confirmed")
	assert.Contains(t, titles, "Appointment Completed")
}

func TestBookingService_ConfirmRequiresOwningAgent(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	otherAgent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)

	appointment := env.bookViewing(t, customer, listing)

	_, err := env.bookings.Confirm(context.Background(), otherAgent.ID, appointment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_CompleteRequiresConfirmedFirst(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)

	appointment := env.bookViewing(t, customer, listing)

	_, err := env.bookings.Complete(context.Background(), agent.ID, appointment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestBookingService_CancelPendingOnlyWithReason(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)
	ctx := context.Background()

	appointment := env.bookViewing(t, customer, listing)

	_, err := env.bookings.Cancel(ctx, customer.ID, appointment.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)

	cancelled, err := env.bookings.Cancel(ctx, customer.ID, appointment.ID, "Schedule conflict")
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)
	assert.Equal(t, "Schedule conflict", cancelled.CancellationReason)

	// The owning agent hears about it.
	var titles []string
	for _, n := range env.notificationsFor(t, agent.ID) {
		titles = append(titles, n.Title)
	}
	assert.Contains(t, titles, "Appointment Cancelled")
}

func TestBookingService_CancelConfirmedIsRejected(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)
	ctx := context.Background()

	appointment := env.bookViewing(t, customer, listing)
	_, err := env.bookings.Confirm(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)

	_, err = env.bookings.Cancel(ctx, customer.ID, appointment.ID, "Changed my mind")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestBookingService_TerminalStatesStayTerminal(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t)
	customer := env.createCustomer(t)
	listing := env.createActiveListing(t, agent)
	ctx := context.Background()

	completed := env.completedViewing(t, customer, agent, listing)
	_, err := env.bookings.Confirm(ctx, agent.ID, completed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	_, err = env.bookings.Complete(ctx, agent.ID, completed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	_, err = env.bookings.Cancel(ctx, customer.ID, completed.ID, "Too late")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	toCancel := env.bookViewing(t, customer, listing)
	cancelled, err := env.bookings.Cancel(ctx, customer.ID, toCancel.ID, "Schedule conflict")
	require.NoError(t, err)
	_, err = env.bookings.Confirm(ctx, agent.ID, cancelled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}
