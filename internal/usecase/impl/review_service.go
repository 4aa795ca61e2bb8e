package impl

import (
	"context"
	"log/slog"

	deliverycontext "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	reviewRepo   repository.ReviewRepository
	supplierRepo repository.SupplierRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	SupplierRepo repository.SupplierRepository
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		reviewRepo:   params.ReviewRepo,
		supplierRepo: params.SupplierRepo,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview records a vendor's review of a completed order. The review
// insert and the supplier rating recomputation run in one transaction, so the
// aggregate never drifts from the reviews that feed it.
func (srv *reviewService) SubmitReview(ctx context.Context, vendorID uuid.UUID, input usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.VendorID != vendorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another vendor")
	}
	if order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrReviewNotAllowed
	}

	review := &entity.Review{
		OrderID:    order.ID,
		VendorID:   vendorID,
		SupplierID: order.SupplierID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewAlreadyExists
			}

			return errors.Wrap(err, "failed to create review")
		}

		supplierRepo := repoFactory.SupplierRepo()
		supplier, err := supplierRepo.FindByUserID(ctx, order.SupplierID)
		if err != nil {
			return errors.Wrap(err, "failed to find supplier for rating update")
		}

		// Running average: fold the new rating into the stored aggregate.
		newCount := supplier.RatingCount + 1
		newAverage := (supplier.RatingAverage*float64(supplier.RatingCount) + float64(input.Rating)) / float64(newCount)

		if err := supplierRepo.UpdateRating(ctx, order.SupplierID, newAverage, newCount); err != nil {
			return errors.Wrap(err, "failed to update supplier rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit review",
			slog.Any("orderID", input.OrderID),
			slog.Any("vendorID", vendorID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Review submitted",
		slog.Any("orderID", input.OrderID),
		slog.Any("supplierID", order.SupplierID),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}

// ListSupplierReviews retrieves a supplier's reviews, newest first.
func (srv *reviewService) ListSupplierReviews(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error) {
	return srv.reviewRepo.ListBySupplier(ctx, supplierID)
}
