package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an in-app notification for presentation.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeSuccess,
		NotificationTypeWarning, NotificationTypeError:
		return true
	default:
		return false
	}
}

// Notification is a one-way in-app message to a user about a state change
// elsewhere in the system. It is created exclusively as a side effect of a
// lifecycle transition and mutated only by the recipient marking it read.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"` // Recipient.
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"` // In-app destination for the notification.
	CreatedAt time.Time        `json:"created_at"`
}
