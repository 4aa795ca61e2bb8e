package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a bilingual product/supplier category.
type Category struct {
	ID        uuid.UUID
	Slug      string
	NameFR    string
	NameAR    string
	Icon      string
	CreatedAt time.Time
}

// Product is an item listed by a supplier. Names and descriptions are
// bilingual; the Arabic fields may be empty.
type Product struct {
	ID               uuid.UUID
	SupplierID       uuid.UUID // User id of the owning supplier.
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SupplierListing is a supplier profile joined with the public parts of its
// base profile, as shown in the supplier directory.
type SupplierListing struct {
	Supplier SupplierProfile
	FullName string
	City     string
	Avatar   string
}
