package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/response"
	"souk/internal/domain/entity"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type placeOrderRequest struct {
	SupplierID string             `json:"supplierId" validate:"required,uuid"`
	Notes      string             `json:"notes"`
	Items      []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=accepted rejected completed"`
	RejectionReason string `json:"rejectionReason"`
}

// PlaceOrder creates a pending order for the calling vendor.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier id")
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
		}
		items = append(items, usecase.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		SupplierID: supplierID,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Commande envoyée")
}

// GetOrder returns one order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListVendorOrders returns the calling vendor's orders, newest first.
func (h *OrderHandler) ListVendorOrders(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	orders, err := h.uc.ListVendorOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListSupplierOrders returns the calling supplier's incoming orders.
func (h *OrderHandler) ListSupplierOrders(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	orders, err := h.uc.ListSupplierOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus moves an order through its lifecycle on behalf of the
// caller. The usecase decides which transitions each side may drive.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), userID, orderID, usecase.UpdateOrderStatusInput{
		Status:          entity.OrderStatus(req.Status),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Statut de la commande mis à jour")
}
