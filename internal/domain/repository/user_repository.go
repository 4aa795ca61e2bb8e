// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound is returned when a base profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// UserRepository defines the standard operations for principal persistence.
type UserRepository interface {
	// Create persists a new user (principal) record.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository defines the operations for base profile persistence.
type ProfileRepository interface {
	// Create persists a new base profile referencing an existing user.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the base profile for a principal.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUserIDs retrieves base profiles for a set of principals,
	// keyed by user id. Missing profiles are simply absent from the map.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)

	// Update modifies an existing base profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
