package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupplierProfile holds data specific to the supplier role. It exists if and
// only if the principal's RoleAssignment is RoleSupplier.
type SupplierProfile struct {
	UserID             uuid.UUID // Foreign key to the owning User; unique.
	CompanyName        string
	CompanyDescription string
	Category           string  // Slug of the supplier's primary category.
	RatingAverage      float64 // Running average maintained by the review flow.
	RatingCount        int
	IsVerified         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VendorProfile holds data specific to the vendor role. It exists if and only
// if the principal's RoleAssignment is RoleVendor.
type VendorProfile struct {
	UserID           uuid.UUID // Foreign key to the owning User; unique.
	StoreName        string
	StoreDescription string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
