// Package identity binds an authenticated principal to its profile records and
// publishes a single coherent identity view for the lifetime of a session.
package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the credential state issued by the identity provider.
type Session struct {
	UserID       uuid.UUID
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// EventType classifies a session transition pushed by the provider.
type EventType string

const (
	// EventSignedIn fires when a session is established.
	EventSignedIn EventType = "signed_in"
	// EventSignedOut fires when the session ends.
	EventSignedOut EventType = "signed_out"
	// EventTokenRefreshed fires when the session's tokens are renewed.
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event is a session transition notification. Session is nil on sign-out.
type Event struct {
	Type    EventType
	Session *Session
}

// Provider is the identity platform surface this package consumes. It owns the
// principals; this package only observes them.
type Provider interface {
	// SignUp creates a new principal and auto-establishes a session for it.
	SignUp(ctx context.Context, email, password string) (*Session, error)

	// SignInWithPassword establishes a session from an email/password pair.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// CurrentSession returns the current session, or nil when signed out.
	CurrentSession(ctx context.Context) (*Session, error)

	// OnSessionChange registers a callback invoked on every session
	// transition. The returned function unregisters it. Callbacks must not
	// call back into the provider; anything that does has to be deferred.
	OnSessionChange(fn func(Event)) (unsubscribe func())
}
