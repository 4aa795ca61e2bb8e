package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a vendor's bookmark of a supplier. At most one edge exists per
// (vendor, supplier) pair, enforced by a unique constraint.
type Favorite struct {
	ID         uuid.UUID
	VendorID   uuid.UUID // User id of the bookmarking vendor.
	SupplierID uuid.UUID // User id of the bookmarked supplier.
	CreatedAt  time.Time
}
