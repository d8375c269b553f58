// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// UserRole represents the kind of account a user holds in the system.
type UserRole string

const (
	// RoleCustomer indicates a customer account that browses and books viewings.
	RoleCustomer UserRole = "customer"
	// RoleAgent indicates an agent account that lists and manages properties.
	RoleAgent UserRole = "agent"
	// RoleAdmin indicates an administrator account that moderates the platform.
	RoleAdmin UserRole = "admin"
)

// String returns the string representation of the UserRole.
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the UserRole is a valid value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of UserRole for convenience.
type Roles []UserRole

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role UserRole) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
