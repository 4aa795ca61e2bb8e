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

// FavoriteHandler holds dependencies for vendor bookmark handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle flips the favorite edge between the calling vendor and a supplier.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	supplierID, err := uuid.Parse(c.Param("supplierId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier id")
	}

	output, err := h.uc.ToggleFavorite(c.Request().Context(), userID, supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Fournisseur retiré des favoris"
	if output.Favorited {
		message = "Fournisseur ajouté aux favoris"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": output.Favorited}, message)
}

// IsFavorite reports whether the calling vendor has bookmarked a supplier.
func (h *FavoriteHandler) IsFavorite(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	supplierID, err := uuid.Parse(c.Param("supplierId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier id")
	}

	favorited, err := h.uc.IsFavorite(c.Request().Context(), userID, supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}

// List returns the suppliers the calling vendor has bookmarked.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	listings, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}
