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

// BookingHandler holds dependencies for viewing-appointment handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

// Book requests a viewing for the authenticated customer.
func (h *BookingHandler) Book(c echo.Context) error {
	var input *usecase.BookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	input.CustomerID = middleware.CallerID(c)
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Book(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Viewing requested")
}

// MyBookings returns the authenticated customer's appointments.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	appointments, err := h.uc.ListByCustomer(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "")
}

// Cancel calls off one of the caller's pending viewings.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	var input *reasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	appointment, err := h.uc.Cancel(c.Request().Context(), middleware.CallerID(c), id, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Viewing cancelled")
}

// AgentBookings returns the appointments handled by the authenticated agent.
func (h *BookingHandler) AgentBookings(c echo.Context) error {
	appointments, err := h.uc.ListByAgent(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "")
}

// Confirm accepts a pending viewing handled by the caller.
func (h *BookingHandler) Confirm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	appointment, err := h.uc.Confirm(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Viewing confirmed")
}

// Complete marks a confirmed viewing handled by the caller as done.
func (h *BookingHandler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	appointment, err := h.uc.Complete(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Viewing completed")
}

// ListAll returns every appointment, for admin oversight.
func (h *BookingHandler) ListAll(c echo.Context) error {
	appointments, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "")
}
