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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// Create records a review by the authenticated customer.
func (h *ReviewHandler) Create(c echo.Context) error {
	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	input.CustomerID = middleware.CallerID(c)
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// MyReviews returns the reviews written by the authenticated customer.
func (h *ReviewHandler) MyReviews(c echo.Context) error {
	reviews, err := h.uc.ListByCustomer(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// ByProperty returns the reviews left against a listing.
func (h *ReviewHandler) ByProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	reviews, err := h.uc.ListByProperty(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// PropertyRating returns the mean rating for a listing.
func (h *ReviewHandler) PropertyRating(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	rating, err := h.uc.AverageRating(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"average_rating": rating}, "")
}

// ListAll returns every review, for admin moderation.
func (h *ReviewHandler) ListAll(c echo.Context) error {
	reviews, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Flag marks a review for admin attention.
func (h *ReviewHandler) Flag(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var input *reasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flag input")
	}

	review, err := h.uc.Flag(c.Request().Context(), id, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review flagged")
}

// Unflag clears a review's flag.
func (h *ReviewHandler) Unflag(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	review, err := h.uc.Unflag(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review unflagged")
}

// adminEditInput carries the moderated comment and the admin's note.
type adminEditInput struct {
	Comment string `json:"comment" validate:"required"`
	Note    string `json:"note"`
}

// AdminEdit rewrites a review's comment under moderation.
func (h *ReviewHandler) AdminEdit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var input *adminEditInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid edit input")
	}

	review, err := h.uc.AdminEdit(c.Request().Context(), id, input.Comment, input.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review edited")
}

// Delete removes a review outright.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}
