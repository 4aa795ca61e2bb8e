package identity

import (
	"context"
	"log/slog"
)

// hydrateQueueSize bounds the deferred hydration queue. Session transitions
// are rare; a full queue only drops intermediate hydrations, and the final
// one always reflects the provider's current state.
const hydrateQueueSize = 16

// Watcher feeds the Store from the provider's push events. Observer
// registration happens before the initial session check so a transition
// landing between the two is never lost: both paths converge on the same
// state-setting logic and whichever completes last wins.
//
// Hydration never runs inside the provider's notification callback. The
// callback only publishes the session and enqueues a task; a dedicated
// goroutine performs the fetches. Sign-out is the exception: clearing touches
// no provider state and must appear instantaneous, so it happens in place.
type Watcher struct {
	provider Provider
	store    *Store
	logger   *slog.Logger
	tasks    chan *Session
}

// NewWatcher is the constructor for Watcher.
func NewWatcher(provider Provider, store *Store, logger *slog.Logger) *Watcher {
	return &Watcher{
		provider: provider,
		store:    store,
		logger:   logger,
		tasks:    make(chan *Session, hydrateQueueSize),
	}
}

// Run registers the session observer, starts the hydration worker, then
// issues the initial session check. It blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	unsubscribe := w.provider.OnSessionChange(w.onSessionChange)
	defer unsubscribe()

	go w.drain(ctx)

	session, err := w.provider.CurrentSession(ctx)
	if err != nil {
		w.logger.Warn("Initial session check failed", slog.Any("error", err))
	} else {
		w.apply(session)
	}

	<-ctx.Done()

	return nil
}

// onSessionChange is the provider callback. It must return quickly and must
// not call back into the provider.
func (w *Watcher) onSessionChange(ev Event) {
	w.apply(ev.Session)
}

// apply is the single state-setting path shared by push events and the
// initial check. A nil session clears everything synchronously; a live
// session is published immediately and its hydration deferred.
func (w *Watcher) apply(session *Session) {
	if session == nil {
		w.store.Clear()

		return
	}

	w.store.SetSession(session)

	select {
	case w.tasks <- session:
	default:
		w.logger.Warn("Hydration queue full, dropping task", slog.Any("userID", session.UserID))
	}
}

// drain performs deferred hydrations until ctx is cancelled.
func (w *Watcher) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.tasks:
			w.store.Refresh(ctx)
		}
	}
}
