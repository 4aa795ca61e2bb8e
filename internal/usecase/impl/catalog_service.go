package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"souk/config"
	deliverycontext "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	supplierRepo      repository.SupplierRepository
	profileRepo       repository.ProfileRepository
	productRepo       repository.ProductRepository
	categoryRepo      repository.CategoryRepository
	reviewRepo        repository.ReviewRepository
	qrService         service.QRCodeService
	storefrontBaseURL string
	logger            *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	ProfileRepo  repository.ProfileRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		baseURL = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &catalogService{
		supplierRepo:      params.SupplierRepo,
		profileRepo:       params.ProfileRepo,
		productRepo:       params.ProductRepo,
		categoryRepo:      params.CategoryRepo,
		reviewRepo:        params.ReviewRepo,
		qrService:         params.QRService,
		storefrontBaseURL: baseURL,
		logger:            params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return srv.categoryRepo.List(ctx)
}

// ListSuppliers retrieves the supplier directory joined with the public parts
// of each base profile. A supplier without a base profile still appears, with
// the contact fields empty.
func (srv *catalogService) ListSuppliers(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierListing, error) {
	suppliers, err := srv.supplierRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	userIDs := make([]uuid.UUID, 0, len(suppliers))
	for _, supplier := range suppliers {
		userIDs = append(userIDs, supplier.UserID)
	}

	profiles, err := srv.profileRepo.FindByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch supplier profiles")
	}

	listings := make([]*entity.SupplierListing, 0, len(suppliers))
	for _, supplier := range suppliers {
		listing := &entity.SupplierListing{Supplier: *supplier}
		if profile, ok := profiles[supplier.UserID]; ok {
			listing.FullName = profile.FullName
			listing.City = profile.City
			listing.Avatar = profile.AvatarURL
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

// GetSupplier retrieves a supplier's public storefront: listing, available
// products and reviews.
func (srv *catalogService) GetSupplier(ctx context.Context, supplierID uuid.UUID) (*usecase.SupplierDetailOutput, error) {
	supplier, err := srv.supplierRepo.FindByUserID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	listing := &entity.SupplierListing{Supplier: *supplier}
	if profile, err := srv.profileRepo.FindByUserID(ctx, supplierID); err == nil {
		listing.FullName = profile.FullName
		listing.City = profile.City
		listing.Avatar = profile.AvatarURL
	}

	products, err := srv.productRepo.ListBySupplier(ctx, supplierID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier products")
	}

	reviews, err := srv.reviewRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier reviews")
	}

	return &usecase.SupplierDetailOutput{
		Listing:  listing,
		Products: products,
		Reviews:  reviews,
	}, nil
}

// CreateProduct adds a product to the calling supplier's catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, supplierID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		SupplierID:       supplierID,
		CategoryID:       input.CategoryID,
		NameFR:           strings.TrimSpace(input.NameFR),
		NameAR:           strings.TrimSpace(input.NameAR),
		DescriptionFR:    input.DescriptionFR,
		DescriptionAR:    input.DescriptionAR,
		Price:            input.Price,
		StockQuantity:    input.StockQuantity,
		MinOrderQuantity: input.MinOrderQuantity,
		IsAvailable:      input.IsAvailable,
		ImageURL:         input.ImageURL,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// UpdateProduct modifies a product owned by the calling supplier.
func (srv *catalogService) UpdateProduct(ctx context.Context, supplierID, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.SupplierID != supplierID {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another supplier")
	}

	product.CategoryID = input.CategoryID
	product.NameFR = strings.TrimSpace(input.NameFR)
	product.NameAR = strings.TrimSpace(input.NameAR)
	product.DescriptionFR = input.DescriptionFR
	product.DescriptionAR = input.DescriptionAR
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.MinOrderQuantity = input.MinOrderQuantity
	product.IsAvailable = input.IsAvailable
	product.ImageURL = input.ImageURL

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// ListMyProducts retrieves the calling supplier's products, including
// unavailable ones.
func (srv *catalogService) ListMyProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error) {
	return srv.productRepo.ListBySupplier(ctx, supplierID, false)
}

// GenerateStorefrontQR renders a QR code linking to a supplier's public
// storefront page.
func (srv *catalogService) GenerateStorefrontQR(ctx context.Context, supplierID uuid.UUID) ([]byte, error) {
	if _, err := srv.supplierRepo.FindByUserID(ctx, supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	url := fmt.Sprintf("%s/suppliers/%s", srv.storefrontBaseURL, supplierID)

	return srv.qrService.GenerateStorefrontQR(url)
}

func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.NameFR) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("French product name is required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if input.MinOrderQuantity < 1 {
		input.MinOrderQuantity = 1
	}

	return nil
}
