package impl

import (
	"context"
	"testing"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/identity"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	signUpFn func(ctx context.Context, email, password string) (*identity.Session, error)
	signInFn func(ctx context.Context, email, password string) (*identity.Session, error)
}

func (p *stubProvider) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	return p.signUpFn(ctx, email, password)
}

func (p *stubProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	return p.signInFn(ctx, email, password)
}

func (p *stubProvider) SignOut(ctx context.Context) error { return nil }

func (p *stubProvider) CurrentSession(ctx context.Context) (*identity.Session, error) {
	return nil, nil
}

func (p *stubProvider) OnSessionChange(fn func(identity.Event)) func() {
	return func() {}
}

func vendorSignUpInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		Email:     "ana@example.com",
		Password:  "S0lide!motdepasse",
		FullName:  "Ana Benali",
		City:      "Casablanca",
		Role:      entity.RoleVendor,
		StoreName: "Ana Store",
	}
}

func TestAuthService_SignUp_Vendor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	session := &identity.Session{UserID: userID, Email: "ana@example.com"}

	var createdProfile *entity.Profile
	var createdAssignment *entity.RoleAssignment
	var createdVendor *entity.VendorProfile

	srv := &authService{
		provider: &stubProvider{
			signUpFn: func(ctx context.Context, email, password string) (*identity.Session, error) {
				return session, nil
			},
		},
		profileRepo: &stubProfileRepo{
			createFn: func(ctx context.Context, profile *entity.Profile) error {
				createdProfile = profile
				return nil
			},
		},
		roleRepo: &stubRoleRepo{
			createFn: func(ctx context.Context, assignment *entity.RoleAssignment) error {
				createdAssignment = assignment
				return nil
			},
		},
		vendorRepo: &stubVendorRepo{
			createFn: func(ctx context.Context, profile *entity.VendorProfile) error {
				createdVendor = profile
				return nil
			},
		},
		logger: newDiscardLogger(),
	}

	output, err := srv.SignUp(ctx, vendorSignUpInput())
	require.NoError(t, err)

	assert.Equal(t, session, output.Session)
	assert.Equal(t, entity.RoleVendor, output.Role)

	require.NotNil(t, createdProfile)
	assert.Equal(t, userID, createdProfile.UserID)
	assert.Equal(t, "Ana Benali", createdProfile.FullName)
	assert.True(t, createdProfile.ShowPhone)
	assert.False(t, createdProfile.ShowEmail)

	require.NotNil(t, createdAssignment)
	assert.Equal(t, entity.RoleVendor, createdAssignment.Role)

	require.NotNil(t, createdVendor)
	assert.Equal(t, "Ana Store", createdVendor.StoreName)
}

func TestAuthService_SignUp_RoleStepFailureKeepsEarlierSteps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profileCreated := false
	srv := &authService{
		provider: &stubProvider{
			signUpFn: func(ctx context.Context, email, password string) (*identity.Session, error) {
				return &identity.Session{UserID: userID}, nil
			},
		},
		profileRepo: &stubProfileRepo{
			createFn: func(ctx context.Context, profile *entity.Profile) error {
				profileCreated = true
				return nil
			},
		},
		roleRepo: &stubRoleRepo{
			createFn: func(ctx context.Context, assignment *entity.RoleAssignment) error {
				return errors.New("database error")
			},
		},
		logger: newDiscardLogger(),
	}

	_, err := srv.SignUp(ctx, vendorSignUpInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SIGNUP_ROLE_STEP_FAILED", appErr.ErrorCode())

	// The profile step completed and is not compensated.
	assert.True(t, profileCreated)
}

func TestAuthService_SignUp_RoleProfileStepFailure(t *testing.T) {
	ctx := context.Background()

	srv := &authService{
		provider: &stubProvider{
			signUpFn: func(ctx context.Context, email, password string) (*identity.Session, error) {
				return &identity.Session{UserID: uuid.New()}, nil
			},
		},
		profileRepo: &stubProfileRepo{
			createFn: func(ctx context.Context, profile *entity.Profile) error { return nil },
		},
		roleRepo: &stubRoleRepo{
			createFn: func(ctx context.Context, assignment *entity.RoleAssignment) error { return nil },
		},
		vendorRepo: &stubVendorRepo{
			createFn: func(ctx context.Context, profile *entity.VendorProfile) error {
				return errors.New("database error")
			},
		},
		logger: newDiscardLogger(),
	}

	_, err := srv.SignUp(ctx, vendorSignUpInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SIGNUP_ROLE_PROFILE_STEP_FAILED", appErr.ErrorCode())
}

func TestAuthService_SignUp_ValidationFailures(t *testing.T) {
	srv := &authService{logger: newDiscardLogger()}
	ctx := context.Background()

	invalidRole := vendorSignUpInput()
	invalidRole.Role = entity.Role("admin")
	_, err := srv.SignUp(ctx, invalidRole)
	assert.Error(t, err)

	missingName := vendorSignUpInput()
	missingName.FullName = "   "
	_, err = srv.SignUp(ctx, missingName)
	assert.Error(t, err)

	missingStore := vendorSignUpInput()
	missingStore.StoreName = ""
	_, err = srv.SignUp(ctx, missingStore)
	assert.Error(t, err)

	missingCompany := usecase.SignUpInput{
		Email:    "four@example.com",
		Password: "S0lide!motdepasse",
		FullName: "Karim Alami",
		Role:     entity.RoleSupplier,
	}
	_, err = srv.SignUp(ctx, missingCompany)
	assert.Error(t, err)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tokenSvc := &fakeTokenService{userID: userID}
	deletedHash := ""
	var persisted *entity.RefreshToken

	srv := &authService{
		roleRepo: &stubRoleRepo{
			findByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.RoleAssignment, error) {
				return &entity.RoleAssignment{UserID: id, Role: entity.RoleSupplier}, nil
			},
		},
		refreshTokenRepo: &stubRefreshTokenRepo{
			findByHashFn: func(ctx context.Context, hash string) (*entity.RefreshToken, error) {
				return &entity.RefreshToken{
					ID:        uuid.New(),
					UserID:    userID,
					TokenHash: hash,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
			deleteByHashFn: func(ctx context.Context, hash string) error {
				deletedHash = hash
				return nil
			},
			createFn: func(ctx context.Context, token *entity.RefreshToken) error {
				persisted = token
				return nil
			},
		},
		tokenService: tokenSvc,
		logger:       newDiscardLogger(),
	}

	output, err := srv.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.NotEqual(t, "old-refresh", output.RefreshToken)

	// The presented token's hash was revoked and the new one stored.
	assert.Equal(t, "hash(old-refresh)", deletedHash)
	require.NotNil(t, persisted)
	assert.Equal(t, userID, persisted.UserID)
	assert.Equal(t, "hash("+output.RefreshToken+")", persisted.TokenHash)

	// The role claim is resolved at refresh time.
	assert.Equal(t, "supplier", tokenSvc.lastRole)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	ctx := context.Background()

	srv := &authService{
		refreshTokenRepo: &stubRefreshTokenRepo{
			findByHashFn: func(ctx context.Context, hash string) (*entity.RefreshToken, error) {
				return nil, errors.New("not found")
			},
		},
		tokenService: &fakeTokenService{userID: uuid.New()},
		logger:       newDiscardLogger(),
	}

	_, err := srv.Refresh(ctx, usecase.RefreshInput{RefreshToken: "stolen"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
