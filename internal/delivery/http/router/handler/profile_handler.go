package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for identity and profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	ShowPhone bool   `json:"showPhone"`
	ShowEmail bool   `json:"showEmail"`
	AvatarURL string `json:"avatarUrl"`
}

type updateSupplierProfileRequest struct {
	CompanyName        string `json:"companyName" validate:"required"`
	CompanyDescription string `json:"companyDescription"`
	Category           string `json:"category"`
}

type updateVendorProfileRequest struct {
	StoreName        string `json:"storeName" validate:"required"`
	StoreDescription string `json:"storeDescription"`
}

// identityView is the wire shape of a hydrated identity. The role profile is
// flattened to at most one of the two role sections.
type identityView struct {
	Profile    any    `json:"profile"`
	Role       string `json:"role,omitempty"`
	Incomplete bool   `json:"incomplete,omitempty"`
	Supplier   any    `json:"supplier,omitempty"`
	Vendor     any    `json:"vendor,omitempty"`
}

// Me returns the caller's hydrated identity.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	output, err := h.uc.GetIdentity(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := identityView{Profile: output.Profile}
	if !output.RoleProfile.IsZero() {
		view.Role = output.RoleProfile.Role().String()
		view.Incomplete = output.RoleProfile.Incomplete()
		if supplier, ok := output.RoleProfile.Supplier(); ok {
			view.Supplier = supplier
		}
		if vendor, ok := output.RoleProfile.Vendor(); ok {
			view.Vendor = vendor
		}
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateProfile modifies the caller's base profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FullName:  req.FullName,
		Phone:     req.Phone,
		City:      req.City,
		ShowPhone: req.ShowPhone,
		ShowEmail: req.ShowEmail,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil mis à jour")
}

// UpdateSupplierProfile modifies the caller's supplier profile.
func (h *ProfileHandler) UpdateSupplierProfile(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req updateSupplierProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateSupplierProfile(c.Request().Context(), userID, usecase.UpdateSupplierProfileInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Category:           req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil fournisseur mis à jour")
}

// UpdateVendorProfile modifies the caller's vendor profile.
func (h *ProfileHandler) UpdateVendorProfile(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req updateVendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateVendorProfile(c.Request().Context(), userID, usecase.UpdateVendorProfileInput{
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil commerçant mis à jour")
}
