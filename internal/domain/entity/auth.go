// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents a principal's email/password login record.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record itself.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Email        string    // The login identifier, unique across credentials.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session. It is used to
// obtain a new access token after the old one expires, without credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time
}
