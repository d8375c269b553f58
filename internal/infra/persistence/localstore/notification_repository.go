package localstore

import (
	"context"
	"sort"

	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"

	"github.com/google/uuid"
)

// notificationRepository implements repository.NotificationRepository on a
// mirrored collection.
type notificationRepository struct {
	notifications *collection[entity.Notification]
}

// NewNotificationRepository loads the notification collection.
func NewNotificationRepository(ctx context.Context, mirror Mirror) (repository.NotificationRepository, error) {
	notifications, err := newCollection(ctx, mirror, KeyNotifications, func(n *entity.Notification) uuid.UUID { return n.ID }, nil)
	if err != nil {
		return nil, err
	}

	return &notificationRepository{notifications: notifications}, nil
}

func cloneNotification(n *entity.Notification) *entity.Notification {
	copied := *n

	return &copied
}

// FindByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	matches := repo.notifications.filter(func(n *entity.Notification) bool {
		return n.UserID == userID
	})

	out := make([]*entity.Notification, 0, len(matches))
	for _, n := range matches {
		out = append(out, cloneNotification(n))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// CountUnread returns the number of unread notifications for a user.
func (repo *notificationRepository) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	matches := repo.notifications.filter(func(n *entity.Notification) bool {
		return n.UserID == userID && !n.Read
	})

	return len(matches), nil
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return repo.notifications.append(ctx, cloneNotification(notification))
}

// MarkRead marks a single notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	changed, err := repo.notifications.updateAll(ctx,
		func(n *entity.Notification) bool { return n.ID == id },
		func(n *entity.Notification) { n.Read = true },
	)
	if err != nil {
		return err
	}
	if changed == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every notification addressed to a user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := repo.notifications.updateAll(ctx,
		func(n *entity.Notification) bool { return n.UserID == userID && !n.Read },
		func(n *entity.Notification) { n.Read = true },
	)

	return err
}

// Delete removes a notification.
func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := repo.notifications.remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrNotificationNotFound
	}

	return nil
}
