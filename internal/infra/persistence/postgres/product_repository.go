package postgres

import (
	"context"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product for a supplier.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSupplierNotFound.WrapMessage("invalid supplier or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListBySupplier retrieves a supplier's products, newest first.
func (repo *productRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID, availableOnly bool) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID)
	if availableOnly {
		tx = tx.Where("is_available = ?", true)
	}

	var productModels []*model.ProductModel
	if err := tx.Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by supplier")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id":        product.CategoryID,
			"name_fr":            product.NameFR,
			"name_ar":            product.NameAR,
			"description_fr":     product.DescriptionFR,
			"description_ar":     product.DescriptionAR,
			"price":              product.Price,
			"stock_quantity":     product.StockQuantity,
			"min_order_quantity": product.MinOrderQuantity,
			"is_available":       product.IsAvailable,
			"image_url":          product.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:               data.ID,
		SupplierID:       data.SupplierID,
		CategoryID:       data.CategoryID,
		NameFR:           data.NameFR,
		NameAR:           data.NameAR,
		DescriptionFR:    data.DescriptionFR,
		DescriptionAR:    data.DescriptionAR,
		Price:            data.Price,
		StockQuantity:    data.StockQuantity,
		MinOrderQuantity: data.MinOrderQuantity,
		IsAvailable:      data.IsAvailable,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:               data.ID,
		SupplierID:       data.SupplierID,
		CategoryID:       data.CategoryID,
		NameFR:           data.NameFR,
		NameAR:           data.NameAR,
		DescriptionFR:    data.DescriptionFR,
		DescriptionAR:    data.DescriptionAR,
		Price:            data.Price,
		StockQuantity:    data.StockQuantity,
		MinOrderQuantity: data.MinOrderQuantity,
		IsAvailable:      data.IsAvailable,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
