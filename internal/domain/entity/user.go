// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal issued by the auth layer. It carries only
// credential-holder identity; everything else lives in the profile records
// created during signup.
type User struct {
	ID        uuid.UUID // The stable opaque identifier for the principal.
	Email     string    // The login email, unique across the platform.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the role-independent contact record, one-to-one with a User.
// It is created once during signup and edited through the profile surface.
type Profile struct {
	UserID    uuid.UUID // Foreign key to the owning User; unique.
	FullName  string
	Phone     string
	City      string
	ShowPhone bool // Whether the phone number is publicly visible.
	ShowEmail bool // Whether the email address is publicly visible.
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
