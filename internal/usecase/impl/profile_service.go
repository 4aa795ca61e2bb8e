package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/identity"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	resolver     *identity.Resolver
	profileRepo  repository.ProfileRepository
	roleRepo     repository.RoleRepository
	supplierRepo repository.SupplierRepository
	vendorRepo   repository.VendorRepository
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Resolver     *identity.Resolver
	ProfileRepo  repository.ProfileRepository
	RoleRepo     repository.RoleRepository
	SupplierRepo repository.SupplierRepository
	VendorRepo   repository.VendorRepository
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		resolver:     params.Resolver,
		profileRepo:  params.ProfileRepo,
		roleRepo:     params.RoleRepo,
		supplierRepo: params.SupplierRepo,
		vendorRepo:   params.VendorRepo,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetIdentity hydrates the full identity of a principal through the resolver,
// so the degraded states (no profile, no role, missing role profile) are
// reported the same way everywhere.
func (srv *profileService) GetIdentity(ctx context.Context, userID uuid.UUID) (*usecase.IdentityOutput, error) {
	resolution, err := srv.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	// A missing base profile is the valid terminal empty identity; it is
	// reported as data, not as an error.
	return &usecase.IdentityOutput{
		Profile:     resolution.Profile,
		RoleProfile: resolution.RoleProfile,
	}, nil
}

// UpdateProfile modifies the principal's base profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}

	profile := &entity.Profile{
		UserID:    userID,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		City:      strings.TrimSpace(input.City),
		ShowPhone: input.ShowPhone,
		ShowEmail: input.ShowEmail,
		AvatarURL: input.AvatarURL,
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return srv.profileRepo.FindByUserID(ctx, userID)
}

// UpdateSupplierProfile modifies the principal's supplier profile.
func (srv *profileService) UpdateSupplierProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateSupplierProfileInput) (*entity.SupplierProfile, error) {
	if err := srv.requireRole(ctx, userID, entity.RoleSupplier); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("company name is required")
	}

	profile := &entity.SupplierProfile{
		UserID:             userID,
		CompanyName:        strings.TrimSpace(input.CompanyName),
		CompanyDescription: strings.TrimSpace(input.CompanyDescription),
		Category:           input.Category,
	}

	if err := srv.supplierRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update supplier profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return srv.supplierRepo.FindByUserID(ctx, userID)
}

// UpdateVendorProfile modifies the principal's vendor profile.
func (srv *profileService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateVendorProfileInput) (*entity.VendorProfile, error) {
	if err := srv.requireRole(ctx, userID, entity.RoleVendor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.StoreName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("store name is required")
	}

	profile := &entity.VendorProfile{
		UserID:           userID,
		StoreName:        strings.TrimSpace(input.StoreName),
		StoreDescription: strings.TrimSpace(input.StoreDescription),
	}

	if err := srv.vendorRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update vendor profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return srv.vendorRepo.FindByUserID(ctx, userID)
}

func (srv *profileService) requireRole(ctx context.Context, userID uuid.UUID, want entity.Role) error {
	assignment, err := srv.roleRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleRequired
		}

		return errors.Wrap(err, "failed to find role assignment")
	}

	if assignment.Role != want {
		return domainerrors.ErrRoleRequired
	}

	return nil
}
