package identity

import (
	"context"
	"testing"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve_FullSupplierIdentity(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Karim Alami"}
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleSupplier}
	f.supplierRepo.suppliers[userID] = &entity.SupplierProfile{UserID: userID, CompanyName: "Atlas Gros"}

	resolution, err := f.resolver.Resolve(ctx, userID)
	require.NoError(t, err)

	require.NotNil(t, resolution.Profile)
	assert.Equal(t, "Karim Alami", resolution.Profile.FullName)
	assert.Equal(t, entity.RoleSupplier, resolution.RoleProfile.Role())

	supplier, ok := resolution.RoleProfile.Supplier()
	require.True(t, ok)
	assert.Equal(t, "Atlas Gros", supplier.CompanyName)
	assert.False(t, resolution.RoleProfile.Incomplete())
}

func TestResolver_Resolve_MissingProfileIsTerminalEmpty(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()

	resolution, err := f.resolver.Resolve(ctx, uuid.New())
	require.NoError(t, err)

	assert.Nil(t, resolution.Profile)
	assert.True(t, resolution.RoleProfile.IsZero())
}

func TestResolver_Resolve_MissingRoleYieldsProfileOnly(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Ana Benali"}

	resolution, err := f.resolver.Resolve(ctx, userID)
	require.NoError(t, err)

	require.NotNil(t, resolution.Profile)
	assert.True(t, resolution.RoleProfile.IsZero())
}

func TestResolver_Resolve_MissingRoleProfileKeepsRoleTag(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Ana Benali"}
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleVendor}
	// No vendor profile record despite the assignment.

	resolution, err := f.resolver.Resolve(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleVendor, resolution.RoleProfile.Role())
	assert.True(t, resolution.RoleProfile.Incomplete())

	_, ok := resolution.RoleProfile.Vendor()
	assert.False(t, ok)
}

func TestResolver_Resolve_StorageFailurePropagates(t *testing.T) {
	f := newResolverFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.err = errors.New("connection refused")

	_, err := f.resolver.Resolve(ctx, userID)
	assert.Error(t, err)

	f.profileRepo.err = nil
	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID}
	f.roleRepo.err = errors.New("connection refused")

	_, err = f.resolver.Resolve(ctx, userID)
	assert.Error(t, err)

	f.roleRepo.err = nil
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleSupplier}
	f.supplierRepo.err = errors.New("connection refused")

	_, err = f.resolver.Resolve(ctx, userID)
	assert.Error(t, err)
}
