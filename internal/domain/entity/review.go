package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is customer feedback tied to a completed viewing appointment.
type Review struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	AppointmentID uuid.UUID `json:"appointment_id"` // The completed viewing this review is based on.
	Rating        int       `json:"rating"`         // 1 to 5 inclusive.
	Comment       string    `json:"comment"`
	Flagged       bool      `json:"flagged"`
	FlagReason    string    `json:"flag_reason,omitempty"` // Set exactly when Flagged is true.
	AdminEdited   bool      `json:"admin_edited"`
	AdminNote     string    `json:"admin_note,omitempty"` // Set exactly when AdminEdited is true.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidRating reports whether a rating falls inside the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
