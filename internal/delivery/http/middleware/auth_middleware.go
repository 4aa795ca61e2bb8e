// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	roleRepo repository.RoleRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, roleRepo repository.RoleRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, roleRepo: roleRepo}
}

// Authenticate validates the JWT access token and resolves the caller's role.
// The token may carry a role claim, but the role assignment record stays
// authoritative: tokens minted before the role was assigned resolve through
// the repository.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(401, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return echo.NewHTTPError(401, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(401, "Invalid or expired token")
		}

		role := claims.Role
		if role == "" {
			if assignment, err := m.roleRepo.FindByUserID(c.Request().Context(), claims.UserID); err == nil {
				role = assignment.Role.String()
			} else if !errors.Is(err, repository.ErrRoleNotFound) {
				return echo.NewHTTPError(500, "Failed to resolve role")
			}
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || role == "" {
				return echo.NewHTTPError(403, "Permission denied: role information missing")
			}

			if role != requiredRole.String() {
				return echo.NewHTTPError(403, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// CallerID extracts the authenticated user id set by Authenticate.
func CallerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}
