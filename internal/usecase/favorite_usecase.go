package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleFavoriteOutput reports the state of the edge after the toggle.
type ToggleFavoriteOutput struct {
	Favorited bool
}

// FavoriteUsecase defines the interface for vendor bookmarks of suppliers.
type FavoriteUsecase interface {
	// ToggleFavorite flips the favorite edge for a (vendor, supplier)
	// pair. The operation is idempotent against races: losing a creation
	// race converges to "favorited", losing a deletion race converges to
	// "not favorited".
	ToggleFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (*ToggleFavoriteOutput, error)

	// IsFavorite reports whether a vendor has bookmarked a supplier.
	IsFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (bool, error)

	// ListFavorites retrieves the suppliers a vendor has bookmarked,
	// joined with their public listing data, newest bookmark first.
	ListFavorites(ctx context.Context, vendorID uuid.UUID) ([]*entity.SupplierListing, error)
}
