package repository

import (
	"context"
	"errors"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when no favorite edge exists for a pair.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (vendor, supplier) edge
	// already exists. The toggle treats it as "already in the desired state".
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the operations for favorite edge persistence.
type FavoriteRepository interface {
	// Create inserts the favorite edge. Returns ErrDuplicateFavorite when the
	// unique (vendor_id, supplier_id) constraint is violated.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Find retrieves the favorite edge for a (vendor, supplier) pair.
	Find(ctx context.Context, vendorID, supplierID uuid.UUID) (*entity.Favorite, error)

	// Delete removes the favorite edge for a (vendor, supplier) pair.
	// Returns ErrFavoriteNotFound when no edge existed.
	Delete(ctx context.Context, vendorID, supplierID uuid.UUID) error

	// ListByVendor retrieves all favorite edges created by a vendor,
	// newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Favorite, error)
}
