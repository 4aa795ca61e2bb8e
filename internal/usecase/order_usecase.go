package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one product line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required for a vendor to place an order.
type PlaceOrderInput struct {
	SupplierID uuid.UUID
	Notes      string
	Items      []OrderItemInput
}

// UpdateOrderStatusInput defines a status change request on an order.
type UpdateOrderStatusInput struct {
	Status          entity.OrderStatus
	RejectionReason string
}

// OrderUsecase defines the interface for the order lifecycle.
type OrderUsecase interface {
	// PlaceOrder creates a pending order for the calling vendor. Unit
	// prices are captured from the catalog at order time and the total is
	// computed server-side.
	PlaceOrder(ctx context.Context, vendorID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order visible to the caller (its vendor or
	// its supplier).
	GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error)

	// ListVendorOrders retrieves the calling vendor's orders, newest first.
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// ListSupplierOrders retrieves the calling supplier's incoming orders.
	ListSupplierOrders(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order through its lifecycle. The supplier
	// accepts, rejects or completes its own orders; the vendor may only
	// complete an accepted order.
	UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, input UpdateOrderStatusInput) (*entity.Order, error)
}
