package handler

import (
	"log/slog"
	"net/http"

	"brokerage/internal/delivery/http/middleware"
	"brokerage/internal/delivery/http/response"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-feed handlers.
// Every route here is scoped to the authenticated caller's own feed.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler,
// injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.uc.ListByUser(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// UnreadCount returns how many of the caller's notifications are unread.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "")
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), middleware.CallerID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead marks every notification of the caller as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context(), middleware.CallerID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked read")
}

// Delete removes one of the caller's notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.CallerID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}
