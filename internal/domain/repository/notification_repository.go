// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification
// persistence.
type NotificationRepository interface {
	// FindByUser retrieves a user's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)

	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every notification addressed to a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification.
	Delete(ctx context.Context, id uuid.UUID) error
}
