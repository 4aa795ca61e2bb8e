package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel mirrors the 'user_roles' table. One row per user, write-once.
type UserRoleModel struct {
	UserID    uuid.UUID `gorm:"primaryKey;type:uuid"`
	Role      string    `gorm:"type:user_role;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// SupplierProfileModel mirrors the 'supplier_profiles' table. UserID references users.id (UUID).
type SupplierProfileModel struct {
	UserID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	CompanyName        string    `gorm:"type:varchar(150);not null"`
	CompanyDescription string    `gorm:"type:text"`
	Category           string    `gorm:"type:varchar(100);index"`
	RatingAverage      float64   `gorm:"not null;default:0"`
	RatingCount        int       `gorm:"not null;default:0"`
	IsVerified         bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierProfileModel) TableName() string {
	return "supplier_profiles"
}

// VendorProfileModel mirrors the 'vendor_profiles' table. UserID references users.id (UUID).
type VendorProfileModel struct {
	UserID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	StoreName        string    `gorm:"type:varchar(150);not null"`
	StoreDescription string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}
