package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table with bilingual names.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	NameFR    string    `gorm:"type:varchar(100);not null"`
	NameAR    string    `gorm:"type:varchar(100)"`
	Icon      string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SupplierID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID       *uuid.UUID `gorm:"type:uuid"`
	NameFR           string     `gorm:"type:varchar(200);not null"`
	NameAR           string     `gorm:"type:varchar(200)"`
	DescriptionFR    string     `gorm:"type:text"`
	DescriptionAR    string     `gorm:"type:text"`
	Price            float64    `gorm:"type:numeric(12,2);not null"`
	StockQuantity    int        `gorm:"not null;default:0"`
	MinOrderQuantity int        `gorm:"not null;default:1"`
	IsAvailable      bool       `gorm:"not null;default:true"`
	ImageURL         string     `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
