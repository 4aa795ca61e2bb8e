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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates a pending order for the calling vendor. Prices are read
// from the catalog inside the same transaction that writes the order, so the
// captured unit prices and the computed total always agree.
func (srv *orderService) PlaceOrder(ctx context.Context, vendorID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order has no items")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		items := make([]*entity.OrderItem, 0, len(input.Items))
		total := 0.0
		for _, line := range input.Items {
			if line.Quantity < 1 {
				return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
			}

			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to fetch product")
			}
			if product.SupplierID != input.SupplierID {
				return domainerrors.ErrValidationFailed.WrapMessage("product belongs to another supplier")
			}
			if !product.IsAvailable {
				return domainerrors.ErrProductUnavailable
			}
			if line.Quantity < product.MinOrderQuantity {
				return domainerrors.ErrValidationFailed.WrapMessage("quantity below minimum order quantity")
			}

			items = append(items, &entity.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order := &entity.Order{
			VendorID:    vendorID,
			SupplierID:  input.SupplierID,
			Status:      entity.OrderStatusPending,
			TotalAmount: total,
			Notes:       input.Notes,
			Items:       items,
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.Any("vendorID", vendorID),
			slog.Any("supplierID", input.SupplierID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", placed.ID),
		slog.Any("vendorID", vendorID),
		slog.Any("supplierID", input.SupplierID),
	)

	return placed, nil
}

// GetOrder retrieves an order visible to the caller.
func (srv *orderService) GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.VendorID != callerID && order.SupplierID != callerID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListVendorOrders retrieves the calling vendor's orders, newest first.
func (srv *orderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.ListByVendor(ctx, vendorID)
}

// ListSupplierOrders retrieves the calling supplier's incoming orders.
func (srv *orderService) ListSupplierOrders(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.ListBySupplier(ctx, supplierID)
}

// UpdateOrderStatus moves an order through its lifecycle. The supplier drives
// every transition on its own orders; the vendor may only mark an accepted
// order completed.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	switch callerID {
	case order.SupplierID:
	case order.VendorID:
		if input.Status != entity.OrderStatusCompleted {
			return nil, domainerrors.ErrForbidden.WrapMessage("vendors may only complete an order")
		}
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another account")
	}

	if !isValidTransition(order.Status, input.Status) {
		return nil, domainerrors.ErrOrderStatusTransition.WithDetails(
			order.Status.String() + " -> " + input.Status.String(),
		)
	}

	reason := ""
	if input.Status == entity.OrderStatusRejected {
		reason = input.RejectionReason
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, input.Status, reason); err != nil {
		srv.log(ctx).Error("Failed to update order status",
			slog.Any("orderID", orderID),
			slog.String("status", input.Status.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	order.Status = input.Status
	order.RejectionReason = reason

	return order, nil
}

// isValidTransition enforces the order lifecycle:
// pending -> accepted | rejected, accepted -> completed.
func isValidTransition(from, to entity.OrderStatus) bool {
	switch from {
	case entity.OrderStatusPending:
		return to == entity.OrderStatusAccepted || to == entity.OrderStatusRejected
	case entity.OrderStatusAccepted:
		return to == entity.OrderStatusCompleted
	default:
		return false
	}
}
