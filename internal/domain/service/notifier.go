// Package service defines domain-level service contracts whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Notifier maps lifecycle transitions to in-app notifications addressed to
// the affected counterparty.
//
// Every method is fire-and-forget: implementations must absorb and log their
// own failures, because a missed notification must never roll back or block
// the primary state transition that triggered it.
type Notifier interface {
	// AgentNewBooking tells an agent a customer requested a viewing.
	AgentNewBooking(ctx context.Context, agentID uuid.UUID, customerName, propertyTitle string, appointmentID uuid.UUID)

	// CustomerBookingConfirmed tells a customer their viewing was accepted.
	CustomerBookingConfirmed(ctx context.Context, customerID uuid.UUID, propertyTitle string, appointmentID uuid.UUID)

	// CustomerBookingCompleted tells a customer their viewing took place and
	// invites them to leave a review.
	CustomerBookingCompleted(ctx context.Context, customerID uuid.UUID, propertyTitle string, appointmentID uuid.UUID)

	// BookingCancelled tells the counterparty (agent or customer) that a
	// viewing was called off and why.
	BookingCancelled(ctx context.Context, userID uuid.UUID, propertyTitle, reason string, appointmentID uuid.UUID)

	// AdminNewSubmission tells an admin an agent submitted a listing for
	// approval.
	AdminNewSubmission(ctx context.Context, adminID uuid.UUID, agentName, propertyTitle string)

	// AgentPropertyApproved tells an agent their listing went live.
	AgentPropertyApproved(ctx context.Context, agentID uuid.UUID, propertyTitle string)

	// AgentPropertyRejected tells an agent their listing was turned down and why.
	AgentPropertyRejected(ctx context.Context, agentID uuid.UUID, propertyTitle, reason string)

	// AgentApproved tells an agent their application was accepted.
	AgentApproved(ctx context.Context, agentID uuid.UUID)

	// AgentRejected tells an agent their application was turned down and why.
	AgentRejected(ctx context.Context, agentID uuid.UUID, reason string)

	// AgentNewReview tells an agent a customer reviewed one of their listings.
	AgentNewReview(ctx context.Context, agentID uuid.UUID, customerName, propertyTitle string, rating int)
}
