package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Hand-written repository stubs. Each method delegates to an optional function
// field so a test only wires the calls it cares about.

type stubProfileRepo struct {
	createFn        func(ctx context.Context, profile *entity.Profile) error
	findByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	findByUserIDsFn func(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)
	updateFn        func(ctx context.Context, profile *entity.Profile) error
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	return s.createFn(ctx, profile)
}

func (s *stubProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubProfileRepo) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	return s.findByUserIDsFn(ctx, userIDs)
}

func (s *stubProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	return s.updateFn(ctx, profile)
}

type stubRoleRepo struct {
	createFn       func(ctx context.Context, assignment *entity.RoleAssignment) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error)
}

func (s *stubRoleRepo) Create(ctx context.Context, assignment *entity.RoleAssignment) error {
	return s.createFn(ctx, assignment)
}

func (s *stubRoleRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error) {
	return s.findByUserIDFn(ctx, userID)
}

type stubSupplierRepo struct {
	createFn       func(ctx context.Context, profile *entity.SupplierProfile) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error)
	updateFn       func(ctx context.Context, profile *entity.SupplierProfile) error
	listFn         func(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierProfile, error)
	updateRatingFn func(ctx context.Context, userID uuid.UUID, average float64, count int) error
}

func (s *stubSupplierRepo) Create(ctx context.Context, profile *entity.SupplierProfile) error {
	return s.createFn(ctx, profile)
}

func (s *stubSupplierRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error) {
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubSupplierRepo) Update(ctx context.Context, profile *entity.SupplierProfile) error {
	return s.updateFn(ctx, profile)
}

func (s *stubSupplierRepo) List(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierProfile, error) {
	return s.listFn(ctx, query)
}

func (s *stubSupplierRepo) UpdateRating(ctx context.Context, userID uuid.UUID, average float64, count int) error {
	return s.updateRatingFn(ctx, userID, average, count)
}

type stubVendorRepo struct {
	createFn       func(ctx context.Context, profile *entity.VendorProfile) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)
	updateFn       func(ctx context.Context, profile *entity.VendorProfile) error
}

func (s *stubVendorRepo) Create(ctx context.Context, profile *entity.VendorProfile) error {
	return s.createFn(ctx, profile)
}

func (s *stubVendorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubVendorRepo) Update(ctx context.Context, profile *entity.VendorProfile) error {
	return s.updateFn(ctx, profile)
}

type stubFavoriteRepo struct {
	createFn       func(ctx context.Context, favorite *entity.Favorite) error
	findFn         func(ctx context.Context, vendorID, supplierID uuid.UUID) (*entity.Favorite, error)
	deleteFn       func(ctx context.Context, vendorID, supplierID uuid.UUID) error
	listByVendorFn func(ctx context.Context, vendorID uuid.UUID) ([]*entity.Favorite, error)
}

func (s *stubFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	return s.createFn(ctx, favorite)
}

func (s *stubFavoriteRepo) Find(ctx context.Context, vendorID, supplierID uuid.UUID) (*entity.Favorite, error) {
	return s.findFn(ctx, vendorID, supplierID)
}

func (s *stubFavoriteRepo) Delete(ctx context.Context, vendorID, supplierID uuid.UUID) error {
	return s.deleteFn(ctx, vendorID, supplierID)
}

func (s *stubFavoriteRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Favorite, error) {
	return s.listByVendorFn(ctx, vendorID)
}

type stubProductRepo struct {
	createFn         func(ctx context.Context, product *entity.Product) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	listBySupplierFn func(ctx context.Context, supplierID uuid.UUID, availableOnly bool) ([]*entity.Product, error)
	updateFn         func(ctx context.Context, product *entity.Product) error
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return s.createFn(ctx, product)
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID, availableOnly bool) ([]*entity.Product, error) {
	return s.listBySupplierFn(ctx, supplierID, availableOnly)
}

func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return s.updateFn(ctx, product)
}

type stubOrderRepo struct {
	createFn         func(ctx context.Context, order *entity.Order) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	listByVendorFn   func(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)
	listBySupplierFn func(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entity.OrderStatus, rejectionReason string) error
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return s.createFn(ctx, order)
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubOrderRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	return s.listByVendorFn(ctx, vendorID)
}

func (s *stubOrderRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error) {
	return s.listBySupplierFn(ctx, supplierID)
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, rejectionReason string) error {
	return s.updateStatusFn(ctx, id, status, rejectionReason)
}

type stubReviewRepo struct {
	createFn         func(ctx context.Context, review *entity.Review) error
	findByOrderIDFn  func(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)
	listBySupplierFn func(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error)
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return s.createFn(ctx, review)
}

func (s *stubReviewRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error) {
	return s.findByOrderIDFn(ctx, orderID)
}

func (s *stubReviewRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error) {
	return s.listBySupplierFn(ctx, supplierID)
}

type stubRefreshTokenRepo struct {
	createFn       func(ctx context.Context, token *entity.RefreshToken) error
	findByHashFn   func(ctx context.Context, hash string) (*entity.RefreshToken, error)
	deleteByHashFn func(ctx context.Context, hash string) error
	deleteByUserFn func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubRefreshTokenRepo) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return s.createFn(ctx, token)
}

func (s *stubRefreshTokenRepo) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	return s.findByHashFn(ctx, hash)
}

func (s *stubRefreshTokenRepo) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	return s.deleteByHashFn(ctx, hash)
}

func (s *stubRefreshTokenRepo) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return s.deleteByUserFn(ctx, userID)
}

// fakeTokenService mints predictable tokens and hashes so assertions can
// follow the rotation.
type fakeTokenService struct {
	userID   uuid.UUID
	lastRole string
	counter  int
}

func (f *fakeTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	f.lastRole = role
	f.counter++

	return fmt.Sprintf("access-%d", f.counter), fmt.Sprintf("refresh-%d", f.counter), nil
}

func (f *fakeTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return &service.Claims{UserID: f.userID, Type: "access"}, nil
}

func (f *fakeTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return &service.Claims{UserID: f.userID, Type: "refresh"}, nil
}

func (f *fakeTokenService) HashToken(tokenString string) string {
	return "hash(" + tokenString + ")"
}

func (f *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

// stubRepoFactory hands out the stub repositories as transaction-bound ones.
type stubRepoFactory struct {
	profileRepo  repository.ProfileRepository
	roleRepo     repository.RoleRepository
	supplierRepo repository.SupplierRepository
	vendorRepo   repository.VendorRepository
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	reviewRepo   repository.ReviewRepository
}

func (f *stubRepoFactory) ProfileRepo() repository.ProfileRepository   { return f.profileRepo }
func (f *stubRepoFactory) RoleRepo() repository.RoleRepository         { return f.roleRepo }
func (f *stubRepoFactory) SupplierRepo() repository.SupplierRepository { return f.supplierRepo }
func (f *stubRepoFactory) VendorRepo() repository.VendorRepository     { return f.vendorRepo }
func (f *stubRepoFactory) FavoriteRepo() repository.FavoriteRepository { return f.favoriteRepo }
func (f *stubRepoFactory) ProductRepo() repository.ProductRepository   { return f.productRepo }
func (f *stubRepoFactory) OrderRepo() repository.OrderRepository       { return f.orderRepo }
func (f *stubRepoFactory) ReviewRepo() repository.ReviewRepository     { return f.reviewRepo }

// stubTxManager runs the function against the stub factory with no real
// transaction semantics.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
