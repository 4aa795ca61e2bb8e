package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/response"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public marketplace surface and
// supplier catalog management.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	CategoryID       string  `json:"categoryId"`
	NameFR           string  `json:"nameFr" validate:"required"`
	NameAR           string  `json:"nameAr"`
	DescriptionFR    string  `json:"descriptionFr"`
	DescriptionAR    string  `json:"descriptionAr"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	StockQuantity    int     `json:"stockQuantity" validate:"gte=0"`
	MinOrderQuantity int     `json:"minOrderQuantity" validate:"gte=0"`
	IsAvailable      bool    `json:"isAvailable"`
	ImageURL         string  `json:"imageUrl"`
}

func (r *productRequest) toInput() (usecase.ProductInput, error) {
	input := usecase.ProductInput{
		NameFR:           r.NameFR,
		NameAR:           r.NameAR,
		DescriptionFR:    r.DescriptionFR,
		DescriptionAR:    r.DescriptionAR,
		Price:            r.Price,
		StockQuantity:    r.StockQuantity,
		MinOrderQuantity: r.MinOrderQuantity,
		IsAvailable:      r.IsAvailable,
		ImageURL:         r.ImageURL,
	}
	if r.CategoryID != "" {
		categoryID, err := uuid.Parse(r.CategoryID)
		if err != nil {
			return input, err
		}
		input.CategoryID = &categoryID
	}
	return input, nil
}

// ListCategories returns all product categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListSuppliers returns the supplier directory, filtered by the optional
// category and city query parameters.
func (h *CatalogHandler) ListSuppliers(c echo.Context) error {
	listings, err := h.uc.ListSuppliers(c.Request().Context(), repository.SupplierQuery{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// GetSupplier returns a supplier's public storefront.
func (h *CatalogHandler) GetSupplier(c echo.Context) error {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier id")
	}

	detail, err := h.uc.GetSupplier(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// CreateProduct adds a product to the calling supplier's catalog.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category id")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Produit créé")
}

// UpdateProduct modifies a product owned by the calling supplier.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category id")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Produit mis à jour")
}

// ListMyProducts returns the calling supplier's full catalog, including
// unavailable products.
func (h *CatalogHandler) ListMyProducts(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	products, err := h.uc.ListMyProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetStorefrontQR streams a PNG QR code linking to the calling supplier's
// public storefront page.
func (h *CatalogHandler) GetStorefrontQR(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	png, err := h.uc.GenerateStorefrontQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
