// Package notification implements the domain Notifier as appends to the
// in-app notification store.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"
	"brokerage/internal/domain/service"

	"github.com/google/uuid"
)

// dispatcher maps lifecycle events to notification records. Every dispatch
// is best-effort: a failed append is logged and swallowed so the primary
// state transition is never rolled back or blocked.
type dispatcher struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewDispatcher is the constructor for the notification dispatcher.
func NewDispatcher(notificationRepo repository.NotificationRepository, logger *slog.Logger) service.Notifier {
	return &dispatcher{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// dispatch builds and appends one notification, absorbing any failure.
func (d *dispatcher) dispatch(ctx context.Context, userID uuid.UUID, kind entity.NotificationType, title, message, link string) {
	n := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: time.Now(),
	}

	if err := d.notificationRepo.Create(ctx, n); err != nil {
		d.logger.Warn("Failed to deliver notification",
			slog.String("title", title),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}

// AgentNewBooking tells an agent a customer requested a viewing.
func (d *dispatcher) AgentNewBooking(ctx context.Context, agentID uuid.UUID, customerName, propertyTitle string, appointmentID uuid.UUID) {
	d.dispatch(ctx, agentID, entity.NotificationTypeInfo,
		"New Appointment Request",
		fmt.Sprintf("%s has requested to view %s", customerName, propertyTitle),
		"/agent/appointments/"+appointmentID.String(),
	)
}

// CustomerBookingConfirmed tells a customer their viewing was accepted.
func (d *dispatcher) CustomerBookingConfirmed(ctx context.Context, customerID uuid.UUID, propertyTitle string, appointmentID uuid.UUID) {
	d.dispatch(ctx, customerID, entity.NotificationTypeSuccess,
		"Appointment Confirmed",
		fmt.Sprintf("Your appointment to view %s has been confirmed", propertyTitle),
		"/customer/bookings/"+appointmentID.String(),
	)
}

// CustomerBookingCompleted tells a customer their viewing took place.
func (d *dispatcher) CustomerBookingCompleted(ctx context.Context, customerID uuid.UUID, propertyTitle string, appointmentID uuid.UUID) {
	d.dispatch(ctx, customerID, entity.NotificationTypeSuccess,
		"Appointment Completed",
		fmt.Sprintf("Your viewing of %s is complete. Please leave a review!", propertyTitle),
		"/customer/bookings/"+appointmentID.String(),
	)
}

// BookingCancelled tells the counterparty a viewing was called off and why.
func (d *dispatcher) BookingCancelled(ctx context.Context, userID uuid.UUID, propertyTitle, reason string, appointmentID uuid.UUID) {
	d.dispatch(ctx, userID, entity.NotificationTypeWarning,
		"Appointment Cancelled",
		fmt.Sprintf("Appointment for %s has been cancelled. Reason: %s", propertyTitle, reason),
		"/customer/bookings/"+appointmentID.String(),
	)
}

// AdminNewSubmission tells an admin an agent submitted a listing for approval.
func (d *dispatcher) AdminNewSubmission(ctx context.Context, adminID uuid.UUID, agentName, propertyTitle string) {
	d.dispatch(ctx, adminID, entity.NotificationTypeInfo,
		"New Property Submission",
		fmt.Sprintf("%s has submitted %s for approval", agentName, propertyTitle),
		"/admin/properties",
	)
}

// AgentPropertyApproved tells an agent their listing went live.
func (d *dispatcher) AgentPropertyApproved(ctx context.Context, agentID uuid.UUID, propertyTitle string) {
	d.dispatch(ctx, agentID, entity.NotificationTypeSuccess,
		"Property Approved",
		fmt.Sprintf("Your property %s has been approved and is now visible to customers", propertyTitle),
		"/agent/properties",
	)
}

// AgentPropertyRejected tells an agent their listing was turned down and why.
func (d *dispatcher) AgentPropertyRejected(ctx context.Context, agentID uuid.UUID, propertyTitle, reason string) {
	d.dispatch(ctx, agentID, entity.NotificationTypeError,
		"Property Rejected",
		fmt.Sprintf("Your property %s has been rejected. Reason: %s", propertyTitle, reason),
		"/agent/properties",
	)
}

// AgentApproved tells an agent their application was accepted.
func (d *dispatcher) AgentApproved(ctx context.Context, agentID uuid.UUID) {
	d.dispatch(ctx, agentID, entity.NotificationTypeSuccess,
		"Agent Application Approved",
		"Congratulations! Your agent application has been approved. You can now start listing properties.",
		"/agent/dashboard",
	)
}

// AgentRejected tells an agent their application was turned down and why.
func (d *dispatcher) AgentRejected(ctx context.Context, agentID uuid.UUID, reason string) {
	d.dispatch(ctx, agentID, entity.NotificationTypeError,
		"Agent Application Rejected",
		fmt.Sprintf("Your agent application has been rejected. Reason: %s", reason),
		"",
	)
}

// AgentNewReview tells an agent a customer reviewed one of their listings.
func (d *dispatcher) AgentNewReview(ctx context.Context, agentID uuid.UUID, customerName, propertyTitle string, rating int) {
	d.dispatch(ctx, agentID, entity.NotificationTypeInfo,
		"New Review",
		fmt.Sprintf("%s left a %d-star review for %s", customerName, rating, propertyTitle),
		"/agent/performance",
	)
}
