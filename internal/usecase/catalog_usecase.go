package usecase

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput defines the fields of a product create or update.
type ProductInput struct {
	CategoryID       *uuid.UUID
	NameFR           string
	NameAR           string
	DescriptionFR    string
	DescriptionAR    string
	Price            float64
	StockQuantity    int
	MinOrderQuantity int
	IsAvailable      bool
	ImageURL         string
}

// --- Output DTOs ---

// SupplierDetailOutput is a supplier's public storefront: listing, reviews
// and available products.
type SupplierDetailOutput struct {
	Listing  *entity.SupplierListing
	Products []*entity.Product
	Reviews  []*entity.Review
}

// CatalogUsecase defines the interface for the public marketplace surface:
// categories, the supplier directory and product management.
type CatalogUsecase interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListSuppliers retrieves the supplier directory, best rated first,
	// joined with the public parts of each base profile.
	ListSuppliers(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierListing, error)

	// GetSupplier retrieves a supplier's public storefront.
	GetSupplier(ctx context.Context, supplierID uuid.UUID) (*SupplierDetailOutput, error)

	// CreateProduct adds a product to the calling supplier's catalog.
	CreateProduct(ctx context.Context, supplierID uuid.UUID, input ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product owned by the calling supplier.
	UpdateProduct(ctx context.Context, supplierID, productID uuid.UUID, input ProductInput) (*entity.Product, error)

	// ListMyProducts retrieves the calling supplier's products, including
	// unavailable ones.
	ListMyProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error)

	// GenerateStorefrontQR renders a QR code linking to a supplier's
	// public storefront page.
	GenerateStorefrontQR(ctx context.Context, supplierID uuid.UUID) ([]byte, error)
}
