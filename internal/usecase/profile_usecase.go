package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the editable fields of the base profile.
type UpdateProfileInput struct {
	FullName  string
	Phone     string
	City      string
	ShowPhone bool
	ShowEmail bool
	AvatarURL string
}

// UpdateSupplierProfileInput defines the editable fields of a supplier profile.
type UpdateSupplierProfileInput struct {
	CompanyName        string
	CompanyDescription string
	Category           string
}

// UpdateVendorProfileInput defines the editable fields of a vendor profile.
type UpdateVendorProfileInput struct {
	StoreName        string
	StoreDescription string
}

// --- Output DTOs ---

// IdentityOutput is the full hydrated identity of a principal: base profile,
// role tag and role profile. Profile is nil for the terminal empty identity,
// and RoleProfile may be incomplete when the role-specific record is missing.
type IdentityOutput struct {
	Profile     *entity.Profile
	RoleProfile entity.RoleProfile
}

// ProfileUsecase defines the interface for profile read and edit operations.
type ProfileUsecase interface {
	// GetIdentity hydrates the full identity of a principal.
	GetIdentity(ctx context.Context, userID uuid.UUID) (*IdentityOutput, error)

	// UpdateProfile modifies the principal's base profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)

	// UpdateSupplierProfile modifies the principal's supplier profile.
	// The caller must hold the supplier role.
	UpdateSupplierProfile(ctx context.Context, userID uuid.UUID, input UpdateSupplierProfileInput) (*entity.SupplierProfile, error)

	// UpdateVendorProfile modifies the principal's vendor profile.
	// The caller must hold the vendor role.
	UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input UpdateVendorProfileInput) (*entity.VendorProfile, error)
}
