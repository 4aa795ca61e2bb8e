package impl

import (
	"context"
	"testing"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	supplierID := uuid.New()

	var created *entity.Favorite
	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return nil, repository.ErrFavoriteNotFound
			},
			createFn: func(ctx context.Context, favorite *entity.Favorite) error {
				created = favorite
				return nil
			},
		},
		logger: newDiscardLogger(),
	}

	output, err := srv.ToggleFavorite(ctx, vendorID, supplierID)
	require.NoError(t, err)

	assert.True(t, output.Favorited)
	require.NotNil(t, created)
	assert.Equal(t, vendorID, created.VendorID)
	assert.Equal(t, supplierID, created.SupplierID)
}

func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	supplierID := uuid.New()

	deleted := false
	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return &entity.Favorite{VendorID: v, SupplierID: s}, nil
			},
			deleteFn: func(ctx context.Context, v, s uuid.UUID) error {
				deleted = true
				return nil
			},
		},
		logger: newDiscardLogger(),
	}

	output, err := srv.ToggleFavorite(ctx, vendorID, supplierID)
	require.NoError(t, err)

	assert.False(t, output.Favorited)
	assert.True(t, deleted)
}

func TestFavoriteService_Toggle_LostAddRaceConverges(t *testing.T) {
	ctx := context.Background()

	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return nil, repository.ErrFavoriteNotFound
			},
			createFn: func(ctx context.Context, favorite *entity.Favorite) error {
				// A concurrent toggle inserted the edge first.
				return repository.ErrDuplicateFavorite
			},
		},
		logger: newDiscardLogger(),
	}

	output, err := srv.ToggleFavorite(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, output.Favorited)
}

func TestFavoriteService_Toggle_LostRemoveRaceConverges(t *testing.T) {
	ctx := context.Background()

	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return &entity.Favorite{VendorID: v, SupplierID: s}, nil
			},
			deleteFn: func(ctx context.Context, v, s uuid.UUID) error {
				// A concurrent toggle removed the edge first.
				return repository.ErrFavoriteNotFound
			},
		},
		logger: newDiscardLogger(),
	}

	output, err := srv.ToggleFavorite(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, output.Favorited)
}

func TestFavoriteService_Toggle_ReadError(t *testing.T) {
	ctx := context.Background()

	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return nil, errors.New("database error")
			},
		},
		logger: newDiscardLogger(),
	}

	_, err := srv.ToggleFavorite(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	ctx := context.Background()

	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
				return &entity.Favorite{}, nil
			},
		},
		logger: newDiscardLogger(),
	}

	favorited, err := srv.IsFavorite(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, favorited)

	srv.favoriteRepo = &stubFavoriteRepo{
		findFn: func(ctx context.Context, v, s uuid.UUID) (*entity.Favorite, error) {
			return nil, repository.ErrFavoriteNotFound
		},
	}

	favorited, err = srv.IsFavorite(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ListFavorites_SkipsMissingSupplier(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	liveID := uuid.New()
	goneID := uuid.New()

	srv := &favoriteService{
		favoriteRepo: &stubFavoriteRepo{
			listByVendorFn: func(ctx context.Context, v uuid.UUID) ([]*entity.Favorite, error) {
				return []*entity.Favorite{
					{VendorID: v, SupplierID: liveID},
					{VendorID: v, SupplierID: goneID},
				}, nil
			},
		},
		supplierRepo: &stubSupplierRepo{
			findByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error) {
				if userID == goneID {
					return nil, repository.ErrSupplierNotFound
				}
				return &entity.SupplierProfile{UserID: userID, CompanyName: "Atlas Gros"}, nil
			},
		},
		profileRepo: &stubProfileRepo{
			findByUserIDsFn: func(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
				return map[uuid.UUID]*entity.Profile{
					liveID: {UserID: liveID, FullName: "Karim Alami", City: "Rabat"},
				}, nil
			},
		},
		logger: newDiscardLogger(),
	}

	listings, err := srv.ListFavorites(ctx, vendorID)
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.Equal(t, "Atlas Gros", listings[0].Supplier.CompanyName)
	assert.Equal(t, "Karim Alami", listings[0].FullName)
	assert.Equal(t, "Rabat", listings[0].City)
}
