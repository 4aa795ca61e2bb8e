package repository

import (
	"context"
	"errors"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category slug does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// List retrieves all categories ordered by French name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindBySlug retrieves a category by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// Create persists a new product for a supplier.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListBySupplier retrieves a supplier's products, newest first.
	// When availableOnly is set, unavailable products are filtered out.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, availableOnly bool) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
