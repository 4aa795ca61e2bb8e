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

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// Create persists the single role assignment for a principal. The primary key
// on user_id makes the assignment write-once.
func (repo *roleRepository) Create(ctx context.Context, assignment *entity.RoleAssignment) error {
	roleM := fromRoleDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleAlreadyAssigned
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role assignment")
	}

	assignment.CreatedAt = roleM.CreatedAt

	return nil
}

// FindByUserID retrieves the role assignment for a principal.
func (repo *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error) {
	var roleM model.UserRoleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by user ID")
	}

	return toRoleDomain(&roleM), nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM UserRoleModel to a domain RoleAssignment entity.
func toRoleDomain(data *model.UserRoleModel) *entity.RoleAssignment {
	if data == nil {
		return nil
	}

	return &entity.RoleAssignment{
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
	}
}

// fromRoleDomain converts a domain RoleAssignment entity to a GORM UserRoleModel.
func fromRoleDomain(data *entity.RoleAssignment) *model.UserRoleModel {
	if data == nil {
		return nil
	}

	return &model.UserRoleModel{
		UserID:    data.UserID,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
	}
}
