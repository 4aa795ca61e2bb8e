package identity

import (
	"context"
	"log/slog"
	"sync"

	"souk/internal/domain/entity"
)

// Snapshot is one consistent read of the published identity. All fields were
// set in a single update; no mixed state is ever observable.
type Snapshot struct {
	Session     *Session
	Profile     *entity.Profile
	RoleProfile entity.RoleProfile
	// Loading is true until the first resolution attempt (success or failure)
	// completes after construction.
	Loading bool
}

// Role returns the resolved role tag, or empty when signed out or roleless.
func (s Snapshot) Role() entity.Role {
	return s.RoleProfile.Role()
}

// SignedIn reports whether a session is currently published.
func (s Snapshot) SignedIn() bool {
	return s.Session != nil
}

// Store is the session-scoped published source of truth combining the current
// session with its resolved identity. It is the only mutable shared state of
// the package: every write goes through its own setters, and subscribers are
// handed immutable snapshots.
type Store struct {
	resolver *Resolver
	logger   *slog.Logger

	mu          sync.RWMutex
	session     *Session
	profile     *entity.Profile
	roleProfile entity.RoleProfile
	loading     bool
	nextSubID   int
	subscribers map[int]func(Snapshot)
}

// NewStore is the constructor for Store. The store starts empty with the
// loading flag raised.
func NewStore(resolver *Resolver, logger *slog.Logger) *Store {
	return &Store{
		resolver:    resolver,
		logger:      logger,
		loading:     true,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current published identity in one atomic read.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Subscribe registers a callback invoked with the new snapshot after every
// published update. The returned function unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// SetSession publishes a new session without touching the resolved identity
// fields; they keep their previous values until the next Refresh rewrites
// them, so observers never see a logged-in session flicker to empty.
func (s *Store) SetSession(session *Session) {
	s.mu.Lock()
	s.session = session
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// Refresh re-resolves the identity for the current session and publishes the
// outcome in a single update. Transient resolution failures are logged and
// swallowed: the previously published identity fields stay untouched. Safe to
// invoke at any time, including concurrently; the last completion wins.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if session == nil {
		s.Clear()

		return
	}

	resolution, err := s.resolver.Resolve(ctx, session.UserID)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.logger.Warn("Identity resolution failed, keeping previous identity",
			slog.Any("userID", session.UserID), slog.Any("error", err))
	} else if s.session != nil {
		// The session may have been cleared while the fetch was in flight;
		// a resolution for a signed-out store is dropped.
		s.profile = resolution.Profile
		s.roleProfile = resolution.RoleProfile
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// Clear nulls the session and every identity field in one synchronous update.
// Called on sign-out; no intermediate state is visible to consumers. A clear
// also counts as the first resolution attempt, lowering the loading flag.
func (s *Store) Clear() {
	s.mu.Lock()
	s.session = nil
	s.profile = nil
	s.roleProfile = entity.RoleProfile{}
	s.loading = false
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Session:     s.session,
		Profile:     s.profile,
		RoleProfile: s.roleProfile,
		Loading:     s.loading,
	}
}

func (s *Store) subscribersLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}

	return subs
}

// notify runs outside the store lock so a subscriber may read the store again.
func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
