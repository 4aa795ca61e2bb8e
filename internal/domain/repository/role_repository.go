package repository

import (
	"context"
	"errors"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role and role-profile persistence.
var (
	// ErrRoleNotFound is returned when a principal has no role assignment.
	ErrRoleNotFound = errors.New("role assignment not found")
	// ErrRoleAlreadyAssigned is returned when a second assignment is attempted.
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
	// ErrSupplierNotFound is returned when a supplier profile is not found.
	ErrSupplierNotFound = errors.New("supplier profile not found")
	// ErrVendorNotFound is returned when a vendor profile is not found.
	ErrVendorNotFound = errors.New("vendor profile not found")
)

// RoleRepository defines the operations for role assignment persistence.
// Assignments are write-once: there is no update or delete.
type RoleRepository interface {
	// Create persists the single role assignment for a principal.
	Create(ctx context.Context, assignment *entity.RoleAssignment) error

	// FindByUserID retrieves the role assignment for a principal.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error)
}

// SupplierQuery carries the optional filters for the supplier directory.
type SupplierQuery struct {
	Category string // Category slug; empty means all categories.
	City     string // Base-profile city; empty means all cities.
}

// SupplierRepository defines the operations for supplier profile persistence.
type SupplierRepository interface {
	// Create persists a new supplier profile referencing an existing user.
	Create(ctx context.Context, profile *entity.SupplierProfile) error

	// FindByUserID retrieves the supplier profile for a principal.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error)

	// Update modifies an existing supplier profile.
	Update(ctx context.Context, profile *entity.SupplierProfile) error

	// List retrieves supplier profiles matching the query, ordered by
	// rating average descending.
	List(ctx context.Context, query SupplierQuery) ([]*entity.SupplierProfile, error)

	// UpdateRating overwrites the running rating aggregate for a supplier.
	UpdateRating(ctx context.Context, userID uuid.UUID, average float64, count int) error
}

// VendorRepository defines the operations for vendor profile persistence.
type VendorRepository interface {
	// Create persists a new vendor profile referencing an existing user.
	Create(ctx context.Context, profile *entity.VendorProfile) error

	// FindByUserID retrieves the vendor profile for a principal.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	// Update modifies an existing vendor profile.
	Update(ctx context.Context, profile *entity.VendorProfile) error
}
