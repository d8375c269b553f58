package handler

import (
	"log/slog"
	"net/http"

	"brokerage/internal/delivery/http/middleware"
	"brokerage/internal/delivery/http/response"
	"brokerage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the derived dashboard views.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

// AgentStats returns the authenticated agent's dashboard counters.
func (h *DashboardHandler) AgentStats(c echo.Context) error {
	stats, err := h.uc.AgentStats(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// AdminStats returns the platform-wide dashboard counters.
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	stats, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
