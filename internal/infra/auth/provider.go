// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/identity"
)

// localProvider implements identity.Provider on top of the platform's own
// credential store. It holds the process-wide current session and fans out
// session transitions to registered observers.
type localProvider struct {
	users         repository.UserRepository
	credentials   repository.AuthRepository
	refreshTokens repository.RefreshTokenRepository
	hasher        service.PasswordHasher
	tokens        service.TokenService
	logger        *slog.Logger

	mu       sync.RWMutex
	session  *identity.Session
	nextID   int
	watchers map[int]func(identity.Event)
}

// NewLocalProvider is the constructor for localProvider.
func NewLocalProvider(
	users repository.UserRepository,
	credentials repository.AuthRepository,
	refreshTokens repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) identity.Provider {
	return &localProvider{
		users:         users,
		credentials:   credentials,
		refreshTokens: refreshTokens,
		hasher:        hasher,
		tokens:        tokens,
		logger:        logger,
		watchers:      make(map[int]func(identity.Event)),
	}
}

// SignUp creates the principal and its credential, then establishes a session.
// It owns only the auth records; profile records are the caller's concern.
func (p *localProvider) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	if err := p.hasher.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	if _, err := p.credentials.FindCredentialByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.users.Create(ctx, user); err != nil {
		return nil, err
	}

	credential := &entity.Credential{
		ID:           uuid.New(),
		UserID:       user.ID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := p.credentials.CreateCredential(ctx, credential); err != nil {
		return nil, err
	}

	return p.establishSession(ctx, user.ID, email)
}

// SignInWithPassword establishes a session from an email/password pair.
func (p *localProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		// Uniform error regardless of whether the email exists.
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return p.establishSession(ctx, credential.UserID, credential.Email)
}

// SignOut ends the current session and revokes its refresh token.
func (p *localProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	session := p.session
	p.session = nil
	p.mu.Unlock()

	if session == nil {
		return nil
	}

	if err := p.refreshTokens.DeleteRefreshTokenByHash(ctx, p.tokens.HashToken(session.RefreshToken)); err != nil {
		p.logger.Warn("Failed to revoke refresh token on sign-out",
			slog.Any("userID", session.UserID),
			slog.Any("error", err),
		)
	}

	p.notify(identity.Event{Type: identity.EventSignedOut, Session: nil})

	return nil
}

// CurrentSession returns the current session, or nil when signed out.
func (p *localProvider) CurrentSession(_ context.Context) (*identity.Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.session, nil
}

// OnSessionChange registers a session transition observer.
func (p *localProvider) OnSessionChange(fn func(identity.Event)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.watchers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.watchers, id)
		p.mu.Unlock()
	}
}

// establishSession mints tokens, persists the refresh token and publishes the
// new session.
func (p *localProvider) establishSession(ctx context.Context, userID uuid.UUID, email string) (*identity.Session, error) {
	// The session carries no role claim here: roles are hydrated from the
	// profile records, not from the credential layer.
	accessToken, refreshToken, err := p.tokens.GenerateTokens(userID, "")
	if err != nil {
		return nil, err
	}

	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: p.tokens.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(p.tokens.GetRefreshTokenDuration()),
		CreatedAt: time.Now(),
	}
	if err := p.refreshTokens.CreateRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	session := &identity.Session{
		UserID:       userID,
		Email:        email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    record.ExpiresAt,
	}

	p.mu.Lock()
	p.session = session
	p.mu.Unlock()

	p.notify(identity.Event{Type: identity.EventSignedIn, Session: session})

	return session, nil
}

// notify invokes observers outside the state lock so callbacks can read the
// provider without deadlocking.
func (p *localProvider) notify(ev identity.Event) {
	p.mu.RLock()
	fns := make([]func(identity.Event), 0, len(p.watchers))
	for _, fn := range p.watchers {
		fns = append(fns, fn)
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
