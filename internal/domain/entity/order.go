package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state after a vendor places an order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted means the supplier confirmed the order.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusRejected means the supplier declined the order.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusCompleted means the order was delivered.
	OrderStatusCompleted OrderStatus = "completed"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Order is a vendor's purchase request against a single supplier.
type Order struct {
	ID              uuid.UUID
	VendorID        uuid.UUID // User id of the ordering vendor.
	SupplierID      uuid.UUID // User id of the receiving supplier.
	Status          OrderStatus
	TotalAmount     float64
	Notes           string
	RejectionReason string
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a single product line within an order. UnitPrice is captured at
// order time so later price changes do not rewrite history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
	CreatedAt time.Time
}

// Review is a vendor's rating of a completed order's supplier.
type Review struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	VendorID   uuid.UUID
	SupplierID uuid.UUID
	Rating     int // 1 to 5.
	Comment    string
	CreatedAt  time.Time
}
