package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The unique index enforces at
// most one edge per (vendor, supplier) pair.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_vendor_supplier"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_vendor_supplier"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
