package impl

import (
	"context"
	"testing"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder_CapturesPricesAndTotal(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	supplierID := uuid.New()
	flourID := uuid.New()
	oilID := uuid.New()

	products := map[uuid.UUID]*entity.Product{
		flourID: {ID: flourID, SupplierID: supplierID, Price: 12.5, MinOrderQuantity: 5, IsAvailable: true},
		oilID:   {ID: oilID, SupplierID: supplierID, Price: 40, MinOrderQuantity: 1, IsAvailable: true},
	}

	var created *entity.Order
	factory := &stubRepoFactory{
		productRepo: &stubProductRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
				if product, ok := products[id]; ok {
					return product, nil
				}
				return nil, repository.ErrProductNotFound
			},
		},
		orderRepo: &stubOrderRepo{
			createFn: func(ctx context.Context, order *entity.Order) error {
				order.ID = uuid.New()
				created = order
				return nil
			},
		},
	}

	srv := &orderService{
		txManager: &stubTxManager{factory: factory},
		logger:    newDiscardLogger(),
	}

	order, err := srv.PlaceOrder(ctx, vendorID, usecase.PlaceOrderInput{
		SupplierID: supplierID,
		Items: []usecase.OrderItemInput{
			{ProductID: flourID, Quantity: 10},
			{ProductID: oilID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, vendorID, order.VendorID)
	assert.InDelta(t, 12.5*10+40*2, order.TotalAmount, 0.001)

	require.Len(t, order.Items, 2)
	assert.InDelta(t, 12.5, order.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 40, order.Items[1].UnitPrice, 0.001)
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()
	otherSupplierID := uuid.New()
	productID := uuid.New()

	newService := func(product *entity.Product) *orderService {
		factory := &stubRepoFactory{
			productRepo: &stubProductRepo{
				findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
					if product == nil {
						return nil, repository.ErrProductNotFound
					}
					return product, nil
				},
			},
		}
		return &orderService{
			txManager: &stubTxManager{factory: factory},
			logger:    newDiscardLogger(),
		}
	}

	place := func(srv *orderService, quantity int) error {
		_, err := srv.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
			SupplierID: supplierID,
			Items:      []usecase.OrderItemInput{{ProductID: productID, Quantity: quantity}},
		})
		return err
	}

	// Empty order.
	srv := newService(nil)
	_, err := srv.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{SupplierID: supplierID})
	assert.Error(t, err)

	// Unknown product.
	assert.ErrorIs(t, place(newService(nil), 1), domainerrors.ErrProductNotFound)

	// Product of another supplier.
	foreign := &entity.Product{ID: productID, SupplierID: otherSupplierID, Price: 5, IsAvailable: true}
	assert.Error(t, place(newService(foreign), 1))

	// Unavailable product.
	unavailable := &entity.Product{ID: productID, SupplierID: supplierID, Price: 5, IsAvailable: false}
	assert.ErrorIs(t, place(newService(unavailable), 1), domainerrors.ErrProductUnavailable)

	// Below the minimum order quantity.
	bulky := &entity.Product{ID: productID, SupplierID: supplierID, Price: 5, MinOrderQuantity: 10, IsAvailable: true}
	assert.Error(t, place(newService(bulky), 3))

	// Non-positive quantity.
	fine := &entity.Product{ID: productID, SupplierID: supplierID, Price: 5, MinOrderQuantity: 1, IsAvailable: true}
	assert.Error(t, place(newService(fine), 0))
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	supplierID := uuid.New()
	orderID := uuid.New()

	srv := &orderService{
		orderRepo: &stubOrderRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
				return &entity.Order{ID: id, VendorID: vendorID, SupplierID: supplierID}, nil
			},
		},
		logger: newDiscardLogger(),
	}

	_, err := srv.GetOrder(ctx, vendorID, orderID)
	assert.NoError(t, err)

	_, err = srv.GetOrder(ctx, supplierID, orderID)
	assert.NoError(t, err)

	_, err = srv.GetOrder(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		allowed bool
	}{
		{"pending to accepted", entity.OrderStatusPending, entity.OrderStatusAccepted, true},
		{"pending to rejected", entity.OrderStatusPending, entity.OrderStatusRejected, true},
		{"pending to completed", entity.OrderStatusPending, entity.OrderStatusCompleted, false},
		{"accepted to completed", entity.OrderStatusAccepted, entity.OrderStatusCompleted, true},
		{"accepted to rejected", entity.OrderStatusAccepted, entity.OrderStatusRejected, false},
		{"rejected is terminal", entity.OrderStatusRejected, entity.OrderStatusAccepted, false},
		{"completed is terminal", entity.OrderStatusCompleted, entity.OrderStatusAccepted, false},
	}

	ctx := context.Background()
	supplierID := uuid.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &orderService{
				orderRepo: &stubOrderRepo{
					findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
						return &entity.Order{ID: id, SupplierID: supplierID, Status: tt.from}, nil
					},
					updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) error {
						return nil
					},
				},
				logger: newDiscardLogger(),
			}

			order, err := srv.UpdateOrderStatus(ctx, supplierID, uuid.New(), usecase.UpdateOrderStatusInput{Status: tt.to})
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, order.Status)
			} else {
				require.Error(t, err)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "ORDER_STATUS_TRANSITION", appErr.ErrorCode())
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus_ReasonOnlyKeptForRejection(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()

	var persistedReason string
	srv := &orderService{
		orderRepo: &stubOrderRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
				return &entity.Order{ID: id, SupplierID: supplierID, Status: entity.OrderStatusPending}, nil
			},
			updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) error {
				persistedReason = reason
				return nil
			},
		},
		logger: newDiscardLogger(),
	}

	order, err := srv.UpdateOrderStatus(ctx, supplierID, uuid.New(), usecase.UpdateOrderStatusInput{
		Status:          entity.OrderStatusAccepted,
		RejectionReason: "ignored for accepts",
	})
	require.NoError(t, err)
	assert.Empty(t, persistedReason)
	assert.Empty(t, order.RejectionReason)

	order, err = srv.UpdateOrderStatus(ctx, supplierID, uuid.New(), usecase.UpdateOrderStatusInput{
		Status:          entity.OrderStatusRejected,
		RejectionReason: "rupture de stock",
	})
	require.NoError(t, err)
	assert.Equal(t, "rupture de stock", persistedReason)
	assert.Equal(t, "rupture de stock", order.RejectionReason)
}

func TestOrderService_UpdateOrderStatus_VendorSide(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	supplierID := uuid.New()

	newService := func(status entity.OrderStatus) *orderService {
		return &orderService{
			orderRepo: &stubOrderRepo{
				findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
					return &entity.Order{ID: id, VendorID: vendorID, SupplierID: supplierID, Status: status}, nil
				},
				updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) error {
					return nil
				},
			},
			logger: newDiscardLogger(),
		}
	}

	// The vendor may complete an accepted order.
	order, err := newService(entity.OrderStatusAccepted).UpdateOrderStatus(ctx, vendorID, uuid.New(), usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)

	// Accepting and rejecting stay supplier-only.
	for _, status := range []entity.OrderStatus{entity.OrderStatusAccepted, entity.OrderStatusRejected} {
		_, err := newService(entity.OrderStatusPending).UpdateOrderStatus(ctx, vendorID, uuid.New(), usecase.UpdateOrderStatusInput{
			Status: status,
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	}

	// The lifecycle still applies to the vendor.
	_, err = newService(entity.OrderStatusPending).UpdateOrderStatus(ctx, vendorID, uuid.New(), usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusCompleted,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_ForeignOrder(t *testing.T) {
	ctx := context.Background()

	srv := &orderService{
		orderRepo: &stubOrderRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
				return &entity.Order{ID: id, SupplierID: uuid.New(), Status: entity.OrderStatusPending}, nil
			},
		},
		logger: newDiscardLogger(),
	}

	_, err := srv.UpdateOrderStatus(ctx, uuid.New(), uuid.New(), usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusAccepted,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}
