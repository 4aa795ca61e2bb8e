// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/identity"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	provider         identity.Provider
	profileRepo      repository.ProfileRepository
	roleRepo         repository.RoleRepository
	supplierRepo     repository.SupplierRepository
	vendorRepo       repository.VendorRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider         identity.Provider
	ProfileRepo      repository.ProfileRepository
	RoleRepo         repository.RoleRepository
	SupplierRepo     repository.SupplierRepository
	VendorRepo       repository.VendorRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		provider:         params.Provider,
		profileRepo:      params.ProfileRepo,
		roleRepo:         params.RoleRepo,
		supplierRepo:     params.SupplierRepo,
		vendorRepo:       params.VendorRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the account creation sequence: principal, base profile,
// role assignment, then the role-specific profile.
//
// The steps deliberately do not share a transaction. The collections are
// independent and a completed step is never rolled back: an account whose
// later steps failed signs in with a partial identity, which the resolver
// reports as such. Each failure carries a step-keyed error so the caller can
// tell which record is missing.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if err := validateSignUpInput(&input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting signup",
		slog.String("role", input.Role.String()),
		slog.String("email", input.Email),
	)

	session, err := srv.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		UserID:    session.UserID,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		City:      strings.TrimSpace(input.City),
		ShowPhone: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Signup profile step failed",
			slog.Any("userID", session.UserID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSignupProfileStep.WithDetails(err.Error())
	}

	assignment := &entity.RoleAssignment{
		UserID:    session.UserID,
		Role:      input.Role,
		CreatedAt: now,
	}
	if err := srv.roleRepo.Create(ctx, assignment); err != nil {
		srv.log(ctx).Error("Signup role step failed",
			slog.Any("userID", session.UserID),
			slog.String("role", input.Role.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSignupRoleStep.WithDetails(err.Error())
	}

	if err := srv.createRoleProfile(ctx, session.UserID, &input, now); err != nil {
		srv.log(ctx).Error("Signup role profile step failed",
			slog.Any("userID", session.UserID),
			slog.String("role", input.Role.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSignupRoleProfileStep.WithDetails(err.Error())
	}

	srv.log(ctx).Debug("Signup completed",
		slog.Any("userID", session.UserID),
		slog.String("role", input.Role.String()),
	)

	return &usecase.SignUpOutput{
		Session: session,
		Profile: profile,
		Role:    input.Role,
	}, nil
}

func (srv *authService) createRoleProfile(ctx context.Context, userID uuid.UUID, input *usecase.SignUpInput, now time.Time) error {
	switch input.Role {
	case entity.RoleSupplier:
		return srv.supplierRepo.Create(ctx, &entity.SupplierProfile{
			UserID:             userID,
			CompanyName:        strings.TrimSpace(input.CompanyName),
			CompanyDescription: strings.TrimSpace(input.CompanyDescription),
			Category:           input.Category,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	case entity.RoleVendor:
		return srv.vendorRepo.Create(ctx, &entity.VendorProfile{
			UserID:           userID,
			StoreName:        strings.TrimSpace(input.StoreName),
			StoreDescription: strings.TrimSpace(input.StoreDescription),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	default:
		return errors.Errorf("unknown role %q", input.Role)
	}
}

// SignIn establishes a session from an email/password pair.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	session, err := srv.provider.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email))

		return nil, err
	}

	return &usecase.SignInOutput{Session: session}, nil
}

// SignOut ends the current session.
func (srv *authService) SignOut(ctx context.Context) error {
	return srv.provider.SignOut(ctx)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// token is revoked; losing the race to a concurrent refresh invalidates both.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	hash := srv.tokenService.HashToken(input.RefreshToken)
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hash)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, stored.TokenHash); err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	role := ""
	if assignment, err := srv.roleRepo.FindByUserID(ctx, claims.UserID); err == nil {
		role = assignment.Role.String()
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(claims.UserID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    claims.UserID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func validateSignUpInput(input *usecase.SignUpInput) error {
	if !input.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid role")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}

	switch input.Role {
	case entity.RoleSupplier:
		if strings.TrimSpace(input.CompanyName) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("company name is required for suppliers")
		}
	case entity.RoleVendor:
		if strings.TrimSpace(input.StoreName) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("store name is required for vendors")
		}
	}

	return nil
}
