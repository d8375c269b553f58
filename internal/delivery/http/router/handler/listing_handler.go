package handler

import (
	"log/slog"
	"net/http"

	"brokerage/internal/delivery/http/middleware"
	"brokerage/internal/delivery/http/response"
	"brokerage/internal/domain/entity"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for property catalog handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{uc: uc, logger: logger}
}

// Browse returns the customer-facing catalog of active listings.
func (h *ListingHandler) Browse(c echo.Context) error {
	listings, err := h.uc.ActiveListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get returns one listing by ID.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	listing, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// RecordView increments a listing's view counter.
func (h *ListingHandler) RecordView(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	if err := h.uc.RecordView(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// Submit creates a pending listing for the authenticated agent. The owner
// always comes from the token, never the request body.
func (h *ListingHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	input.AgentID = middleware.CallerID(c)
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing submitted for review")
}

// MyListings returns every listing owned by the authenticated agent.
func (h *ListingHandler) MyListings(c echo.Context) error {
	listings, err := h.uc.ListByAgent(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Update merges the supplied fields into a listing owned by the caller.
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	var input *usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.uc.Update(c.Request().Context(), middleware.CallerID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated")
}

// MarkSold takes an active listing owned by the caller off the market.
func (h *ListingHandler) MarkSold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	listing, err := h.uc.MarkSold(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing marked sold")
}

// Delete removes a listing. Agents may only remove their own; admins may
// remove any.
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	ctx := c.Request().Context()
	if middleware.CallerRole(c) != entity.RoleAdmin.String() {
		listing, err := h.uc.Get(ctx, id)
		if err != nil {
			return errors.WithStack(err)
		}
		if listing.AgentID != middleware.CallerID(c) {
			return response.Forbidden(c, "FORBIDDEN", "Listing belongs to another agent")
		}
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted")
}

// PendingListings returns submissions awaiting admin review.
func (h *ListingHandler) PendingListings(c echo.Context) error {
	listings, err := h.uc.PendingListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ListAll returns the whole catalog, for admin oversight.
func (h *ListingHandler) ListAll(c echo.Context) error {
	listings, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Approve moves a pending listing to active.
func (h *ListingHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	listing, err := h.uc.Approve(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing approved")
}

// Reject moves a pending listing to rejected with a reason.
func (h *ListingHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	var input *reasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	listing, err := h.uc.Reject(c.Request().Context(), id, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing rejected")
}
