package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeCondo     PropertyType = "Condo"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeLot       PropertyType = "Lot"
)

// String returns the string representation of the PropertyType.
func (t PropertyType) String() string {
	return string(t)
}

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeCondo, PropertyTypeApartment, PropertyTypeLot:
		return true
	default:
		return false
	}
}

// PropertyStatus represents the lifecycle state of a listing.
//
// The state machine is:
//
//	pending -> active | rejected
//	active  -> sold | rejected
//
// "sold" and "rejected" receive no further automatic transitions.
type PropertyStatus string

const (
	// PropertyStatusPending is the mandatory initial state of every
	// agent-submitted listing, awaiting admin approval.
	PropertyStatusPending PropertyStatus = "pending"
	// PropertyStatusActive is the only state visible to customers.
	PropertyStatusActive PropertyStatus = "active"
	// PropertyStatusSold marks a listing taken off the market by its agent.
	PropertyStatusSold PropertyStatus = "sold"
	// PropertyStatusRejected marks a listing an admin turned down; it always
	// carries a rejection reason.
	PropertyStatusRejected PropertyStatus = "rejected"
)

// String returns the string representation of the PropertyStatus.
func (s PropertyStatus) String() string {
	return string(s)
}

// IsValid checks if the PropertyStatus is a valid value.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusPending, PropertyStatusActive, PropertyStatusSold, PropertyStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the listing state machine permits moving
// from s to next.
func (s PropertyStatus) CanTransitionTo(next PropertyStatus) bool {
	switch s {
	case PropertyStatusPending:
		return next == PropertyStatusActive || next == PropertyStatusRejected
	case PropertyStatusActive:
		return next == PropertyStatusSold || next == PropertyStatusRejected
	default:
		return false
	}
}

// Property is a listing owned by exactly one agent and moderated by admins.
type Property struct {
	ID              uuid.UUID      `json:"id"`
	AgentID         uuid.UUID      `json:"agent_id"` // Owning agent; immutable after creation.
	Title           string         `json:"title"`
	Type            PropertyType   `json:"type"`
	Price           int64          `json:"price"` // Whole currency units.
	Location        string         `json:"location"`
	Bedrooms        int            `json:"bedrooms"`
	Bathrooms       int            `json:"bathrooms"`
	Area            float64        `json:"area"` // Square meters.
	Description     string         `json:"description"`
	Photos          []string       `json:"photos"` // Ordered photo URLs.
	Status          PropertyStatus `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"` // Set exactly when Status is rejected.
	Views           int            `json:"views"`                      // Customer detail-page view counter.
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IsVisibleToCustomers reports whether the listing appears in customer-facing
// browsing and booking flows.
func (p *Property) IsVisibleToCustomers() bool {
	return p.Status == PropertyStatusActive
}
