// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/identity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account. The role
// decides which of the role-specific fields are read.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	City     string
	Role     entity.Role

	// Supplier fields, read when Role is RoleSupplier.
	CompanyName        string
	CompanyDescription string
	Category           string

	// Vendor fields, read when Role is RoleVendor.
	StoreName        string
	StoreDescription string
}

// SignInInput defines the data required to log in.
type SignInInput struct {
	Email    string
	Password string
}

// RefreshInput carries the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the established session and the identity records
// created during signup.
type SignUpOutput struct {
	Session *identity.Session
	Profile *entity.Profile
	Role    entity.Role
}

// SignInOutput returns the session after a successful login.
type SignInOutput struct {
	Session *identity.Session
}

// RefreshOutput returns the renewed token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// SignUp registers a new account: principal, base profile, role
	// assignment and role profile, in that order.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)

	// SignIn establishes a session from an email/password pair.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)
}
