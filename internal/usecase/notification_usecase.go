package usecase

import (
	"context"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for a user's notification feed.
// Feed mutations are recipient-scoped: a user can only touch their own
// notifications.
type NotificationUsecase interface {
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// UnreadCount returns how many of the user's notifications are unread.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkRead marks one of the user's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every notification of the user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes one of the user's notifications.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}
