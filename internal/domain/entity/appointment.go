package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of a viewing appointment.
//
// The state machine is:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//
// "completed" and "cancelled" are terminal.
type AppointmentStatus string

const (
	// AppointmentStatusPending is the initial state of every booking request.
	AppointmentStatusPending AppointmentStatus = "pending"
	// AppointmentStatusConfirmed means the agent accepted the viewing.
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	// AppointmentStatusCompleted means the viewing took place; it unlocks the
	// customer's ability to review the property.
	AppointmentStatusCompleted AppointmentStatus = "completed"
	// AppointmentStatusCancelled means the booking was called off, either by
	// the customer or by the property being removed. It always carries a
	// cancellation reason.
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// String returns the string representation of the AppointmentStatus.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the AppointmentStatus is a valid value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this state.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the booking state machine permits moving
// from s to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	default:
		return false
	}
}

// Appointment ties one customer to one property viewing, and transitively to
// that property's agent.
type Appointment struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	// AgentID is a denormalized copy of the property's owner, taken at
	// booking time for query convenience. Property ownership never changes
	// after creation, so the copy cannot drift from the source of truth.
	AgentID            uuid.UUID         `json:"agent_id"`
	Date               time.Time         `json:"date"` // Viewing day, at midnight local time.
	TimeSlot           string            `json:"time"`  // Display slot, e.g. "10:00 AM".
	Status             AppointmentStatus `json:"status"`
	SpecialRequests    string            `json:"special_requests,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"` // Set exactly when Status is cancelled.
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
