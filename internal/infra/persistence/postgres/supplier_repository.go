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

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create persists a new supplier profile referencing an existing user.
func (repo *supplierRepository) Create(ctx context.Context, profile *entity.SupplierProfile) error {
	profileM := fromSupplierDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("supplier profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the supplier profile for a principal.
func (repo *supplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error) {
	var profileM model.SupplierProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by user ID")
	}

	return toSupplierDomain(&profileM), nil
}

// Update modifies an existing supplier profile. The rating aggregate is
// managed separately through UpdateRating.
func (repo *supplierRepository) Update(ctx context.Context, profile *entity.SupplierProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"company_name":        profile.CompanyName,
			"company_description": profile.CompanyDescription,
			"category":            profile.Category,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// List retrieves supplier profiles matching the query, best rated first.
// City filtering joins through the base profile.
func (repo *supplierRepository) List(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierProfile, error) {
	tx := repo.db.WithContext(ctx).Model(&model.SupplierProfileModel{})

	if query.Category != "" {
		tx = tx.Where("supplier_profiles.category = ?", query.Category)
	}
	if query.City != "" {
		tx = tx.Joins("JOIN profiles ON profiles.user_id = supplier_profiles.user_id").
			Where("profiles.city = ?", query.City)
	}

	var profileModels []*model.SupplierProfileModel
	if err := tx.Order("supplier_profiles.rating_average DESC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	profiles := make([]*entity.SupplierProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toSupplierDomain(profileM))
	}

	return profiles, nil
}

// UpdateRating overwrites the running rating aggregate for a supplier.
func (repo *supplierRepository) UpdateRating(ctx context.Context, userID uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"rating_average": average,
			"rating_count":   count,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierProfileModel to a domain SupplierProfile entity.
func toSupplierDomain(data *model.SupplierProfileModel) *entity.SupplierProfile {
	if data == nil {
		return nil
	}

	return &entity.SupplierProfile{
		UserID:             data.UserID,
		CompanyName:        data.CompanyName,
		CompanyDescription: data.CompanyDescription,
		Category:           data.Category,
		RatingAverage:      data.RatingAverage,
		RatingCount:        data.RatingCount,
		IsVerified:         data.IsVerified,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain SupplierProfile entity to a GORM SupplierProfileModel.
func fromSupplierDomain(data *entity.SupplierProfile) *model.SupplierProfileModel {
	if data == nil {
		return nil
	}

	return &model.SupplierProfileModel{
		UserID:             data.UserID,
		CompanyName:        data.CompanyName,
		CompanyDescription: data.CompanyDescription,
		Category:           data.Category,
		RatingAverage:      data.RatingAverage,
		RatingCount:        data.RatingCount,
		IsVerified:         data.IsVerified,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
