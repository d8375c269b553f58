package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the moderation state of a user account.
// Only agent accounts meaningfully pass through "pending"/"rejected";
// customers and admins are always active.
type UserStatus string

const (
	// UserStatusActive indicates an account in good standing.
	UserStatusActive UserStatus = "active"
	// UserStatusPending indicates an agent application awaiting admin review.
	UserStatusPending UserStatus = "pending"
	// UserStatusRejected indicates an agent application turned down by an admin.
	UserStatusRejected UserStatus = "rejected"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusRejected:
		return true
	default:
		return false
	}
}

// User is the core identity entity shared across all roles.
//
// The password is stored in plaintext: this system simulates a multi-role
// product inside a single local store, and real credential security is an
// explicit non-goal. Never reuse this model behind a shared server.
type User struct {
	ID            uuid.UUID  `json:"id"`             // The unique identifier for the user.
	Email         string     `json:"email"`          // Login identifier; unique across the user collection.
	Password      string     `json:"password"`       // Plaintext demo credential, compared verbatim at login.
	Name          string     `json:"name"`           // Display name.
	Phone         string     `json:"phone"`          // Contact phone number.
	Role          UserRole   `json:"role"`           // customer, agent or admin.
	Status        UserStatus `json:"status"`         // Moderation state; gates agents only.
	Avatar        string     `json:"avatar,omitempty"`
	LicenseNumber string     `json:"license_number,omitempty"` // Agents only.
	Agency        string     `json:"agency,omitempty"`         // Agents only.
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Sanitized returns a copy of the user safe for API responses,
// with the credential blanked out.
func (u User) Sanitized() *User {
	u.Password = ""

	return &u
}

// IsApprovedAgent reports whether the user may list and manage properties.
func (u *User) IsApprovedAgent() bool {
	return u.Role == RoleAgent && u.Status == UserStatusActive
}
