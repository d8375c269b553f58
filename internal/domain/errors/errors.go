// Package errors defines the application error contract: every failure a
// handler can surface maps to an HTTP status, a stable business code and a
// user-facing message.
package errors

import (
	"net/http"

	"brokerage/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business error code, so detail-enriched copies still
// compare equal to their predefined sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if errors.As(target, &other) {
		return e.errorCode == other.errorCode
	}

	return false
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found",
		"",
	)

	ErrAppointmentNotFound = NewBaseError(
		http.StatusNotFound,
		"APPOINTMENT_NOT_FOUND",
		"Appointment not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// State-machine errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The requested state transition is not allowed",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REASON_REQUIRED",
		"A non-empty reason is required for this action",
		"",
	)

	ErrPropertyNotActive = NewBaseError(
		http.StatusConflict,
		"PROPERTY_NOT_ACTIVE",
		"The property is not open for viewings",
		"",
	)

	ErrBookingLeadTime = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_LEAD_TIME",
		"Viewings must be booked at least one day in advance",
		"",
	)

	ErrAppointmentNotReviewable = NewBaseError(
		http.StatusConflict,
		"APPOINTMENT_NOT_REVIEWABLE",
		"Only completed appointments can be reviewed",
		"",
	)

	ErrAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"ALREADY_REVIEWED",
		"This appointment has already been reviewed",
		"",
	)

	// Cross-collection consistency errors
	ErrReferentialGap = NewBaseError(
		http.StatusUnprocessableEntity,
		"REFERENTIAL_GAP",
		"A referenced record no longer exists",
		"",
	)

	// Authentication and authorization errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrAgentNotApproved = NewBaseError(
		http.StatusForbidden,
		"AGENT_NOT_APPROVED",
		"Your agent application has not been approved yet",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal system error",
		"",
	)
)
