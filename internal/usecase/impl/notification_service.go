package impl

import (
	"context"
	"log/slog"

	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/domain/repository"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService,
// injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// ListByUser returns the user's notifications, newest first.
func (srv *notificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount returns how many of the user's notifications are unread.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the user's notifications as read. Another user's
// notification is reported as not found rather than forbidden, so the feed
// leaks nothing about other recipients.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.owned(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every notification of the user as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// Delete removes one of the user's notifications.
func (srv *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.owned(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.Delete(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// owned verifies the notification exists and belongs to userID.
func (srv *notificationService) owned(ctx context.Context, userID, notificationID uuid.UUID) error {
	notifications, err := srv.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load notifications for ownership check")
	}

	for _, n := range notifications {
		if n.ID == notificationID {
			return nil
		}
	}

	return domainerrors.ErrNotificationNotFound
}
