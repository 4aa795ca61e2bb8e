package identity

import (
	"context"
	"log/slog"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Resolution is the outcome of one identity hydration. A nil Profile with a
// zero RoleProfile is a valid terminal state (provider-side account whose
// signup never completed), not an error.
type Resolution struct {
	Profile     *entity.Profile
	RoleProfile entity.RoleProfile
}

// Resolver turns a principal id into a fully hydrated identity, or a
// well-defined absence. Resolution is idempotent and safe to re-invoke.
type Resolver struct {
	profileRepo  repository.ProfileRepository
	roleRepo     repository.RoleRepository
	supplierRepo repository.SupplierRepository
	vendorRepo   repository.VendorRepository
	logger       *slog.Logger
}

// NewResolver is the constructor for Resolver.
func NewResolver(
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	supplierRepo repository.SupplierRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		profileRepo:  profileRepo,
		roleRepo:     roleRepo,
		supplierRepo: supplierRepo,
		vendorRepo:   vendorRepo,
		logger:       logger,
	}
}

// Resolve fetches the base profile, role assignment and role-specific profile
// for a principal. Missing records yield well-defined partial resolutions;
// only storage failures return an error, so the caller can keep whatever
// identity it already published.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (*Resolution, error) {
	profile, err := r.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Incomplete signup on the provider side. Terminal, not retryable.
			return &Resolution{}, nil
		}

		return nil, errors.Wrap(err, "failed to fetch base profile")
	}

	assignment, err := r.roleRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			// Authenticated but roleless.
			return &Resolution{Profile: profile}, nil
		}

		return nil, errors.Wrap(err, "failed to fetch role assignment")
	}

	roleProfile, err := r.resolveRoleProfile(ctx, userID, assignment.Role)
	if err != nil {
		return nil, err
	}

	return &Resolution{Profile: profile, RoleProfile: roleProfile}, nil
}

// resolveRoleProfile fetches the profile matching the assigned role. A missing
// record despite an existing assignment is degraded but recoverable: the role
// tag is kept and the profile stays nil.
func (r *Resolver) resolveRoleProfile(ctx context.Context, userID uuid.UUID, role entity.Role) (entity.RoleProfile, error) {
	switch role {
	case entity.RoleSupplier:
		supplier, err := r.supplierRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				r.logger.Warn("Role assigned but supplier profile missing", slog.Any("userID", userID))

				return entity.SupplierRoleProfile(nil), nil
			}

			return entity.RoleProfile{}, errors.Wrap(err, "failed to fetch supplier profile")
		}

		return entity.SupplierRoleProfile(supplier), nil

	case entity.RoleVendor:
		vendor, err := r.vendorRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorNotFound) {
				r.logger.Warn("Role assigned but vendor profile missing", slog.Any("userID", userID))

				return entity.VendorRoleProfile(nil), nil
			}

			return entity.RoleProfile{}, errors.Wrap(err, "failed to fetch vendor profile")
		}

		return entity.VendorRoleProfile(vendor), nil

	default:
		r.logger.Warn("Unknown role tag in assignment", slog.Any("userID", userID), slog.String("role", role.String()))

		return entity.RoleProfile{}, nil
	}
}
