package impl

import (
	"context"
	"log/slog"

	deliverycontext "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	supplierRepo repository.SupplierRepository
	profileRepo  repository.ProfileRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	SupplierRepo repository.SupplierRepository
	ProfileRepo  repository.ProfileRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		supplierRepo: params.SupplierRepo,
		profileRepo:  params.ProfileRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite flips the favorite edge for a (vendor, supplier) pair.
//
// The decision is read-then-write, so two concurrent toggles can both pick the
// same branch. The storage layer makes both branches converge: a duplicate
// insert reports "already favorited" and an absent delete reports "already
// removed", and each is mapped to the state the caller was driving toward
// rather than an error.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (*usecase.ToggleFavoriteOutput, error) {
	_, err := srv.favoriteRepo.Find(ctx, vendorID, supplierID)
	switch {
	case err == nil:
		return srv.removeFavorite(ctx, vendorID, supplierID)
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return srv.addFavorite(ctx, vendorID, supplierID)
	default:
		return nil, errors.Wrap(err, "failed to read favorite state")
	}
}

func (srv *favoriteService) addFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (*usecase.ToggleFavoriteOutput, error) {
	favorite := &entity.Favorite{
		VendorID:   vendorID,
		SupplierID: supplierID,
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			// Lost a race to a concurrent add; the desired state holds.
			return &usecase.ToggleFavoriteOutput{Favorited: true}, nil
		}

		srv.log(ctx).Error("Failed to add favorite",
			slog.Any("vendorID", vendorID),
			slog.Any("supplierID", supplierID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &usecase.ToggleFavoriteOutput{Favorited: true}, nil
}

func (srv *favoriteService) removeFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (*usecase.ToggleFavoriteOutput, error) {
	if err := srv.favoriteRepo.Delete(ctx, vendorID, supplierID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			// Lost a race to a concurrent remove; the desired state holds.
			return &usecase.ToggleFavoriteOutput{Favorited: false}, nil
		}

		srv.log(ctx).Error("Failed to remove favorite",
			slog.Any("vendorID", vendorID),
			slog.Any("supplierID", supplierID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &usecase.ToggleFavoriteOutput{Favorited: false}, nil
}

// IsFavorite reports whether a vendor has bookmarked a supplier.
func (srv *favoriteService) IsFavorite(ctx context.Context, vendorID, supplierID uuid.UUID) (bool, error) {
	_, err := srv.favoriteRepo.Find(ctx, vendorID, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read favorite state")
	}

	return true, nil
}

// ListFavorites retrieves the suppliers a vendor has bookmarked, joined with
// their public listing data, newest bookmark first. A favorite whose supplier
// record has disappeared is skipped.
func (srv *favoriteService) ListFavorites(ctx context.Context, vendorID uuid.UUID) ([]*entity.SupplierListing, error) {
	favorites, err := srv.favoriteRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	supplierIDs := make([]uuid.UUID, 0, len(favorites))
	for _, favorite := range favorites {
		supplierIDs = append(supplierIDs, favorite.SupplierID)
	}

	profiles, err := srv.profileRepo.FindByUserIDs(ctx, supplierIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch supplier profiles")
	}

	listings := make([]*entity.SupplierListing, 0, len(favorites))
	for _, favorite := range favorites {
		supplier, err := srv.supplierRepo.FindByUserID(ctx, favorite.SupplierID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				srv.log(ctx).Warn("Favorite references missing supplier",
					slog.Any("vendorID", vendorID),
					slog.Any("supplierID", favorite.SupplierID),
				)

				continue
			}

			return nil, errors.Wrap(err, "failed to fetch favorited supplier")
		}

		listing := &entity.SupplierListing{Supplier: *supplier}
		if profile, ok := profiles[favorite.SupplierID]; ok {
			listing.FullName = profile.FullName
			listing.City = profile.City
			listing.Avatar = profile.AvatarURL
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
