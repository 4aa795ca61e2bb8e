package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for order review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitReviewRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Submit records the calling vendor's review of a completed order.
func (h *ReviewHandler) Submit(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), userID, usecase.SubmitReviewInput{
		OrderID: orderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Avis enregistré")
}

// ListForSupplier returns a supplier's reviews, newest first.
func (h *ReviewHandler) ListForSupplier(c echo.Context) error {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier id")
	}

	reviews, err := h.uc.ListSupplierReviews(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
