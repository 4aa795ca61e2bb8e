package repository

import (
	"context"
	"errors"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order and review persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrReviewNotFound is returned when no review exists for an order.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when an order already has a review.
	ErrDuplicateReview = errors.New("review already exists for order")
)

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByVendor retrieves a vendor's orders, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// ListBySupplier retrieves a supplier's incoming orders, newest first.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves an order to a new status; rejectionReason is only
	// persisted for rejected orders.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, rejectionReason string) error
}

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the
	// order already has one.
	Create(ctx context.Context, review *entity.Review) error

	// FindByOrderID retrieves the review left for an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ListBySupplier retrieves reviews of a supplier, newest first.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error)
}
