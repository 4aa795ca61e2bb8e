// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the single permanent role a principal holds.
type Role string

const (
	// RoleSupplier indicates a wholesale seller.
	RoleSupplier Role = "supplier"
	// RoleVendor indicates a grocery store owner buying from suppliers.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSupplier, RoleVendor:
		return true
	default:
		return false
	}
}

// RoleAssignment binds a principal to its role. Exactly one assignment exists
// per user and the role is never changed after creation.
type RoleAssignment struct {
	UserID    uuid.UUID // Foreign key to the owning User; unique.
	Role      Role
	CreatedAt time.Time
}
