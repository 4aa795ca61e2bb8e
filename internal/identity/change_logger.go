package identity

import (
	"log/slog"
	"sync"
)

// changeLogger turns published snapshots into audit log lines.
type changeLogger struct {
	logger *slog.Logger

	mu   sync.Mutex
	last Snapshot
}

// LogChanges subscribes an audit logger to the store so every session and
// role transition leaves a trace in the service log. The returned function
// unsubscribes it.
func LogChanges(store *Store, logger *slog.Logger) (unsubscribe func()) {
	cl := &changeLogger{logger: logger, last: store.Snapshot()}

	return store.Subscribe(cl.observe)
}

func (cl *changeLogger) observe(snap Snapshot) {
	cl.mu.Lock()
	prev := cl.last
	cl.last = snap
	cl.mu.Unlock()

	switch {
	case !prev.SignedIn() && snap.SignedIn():
		cl.logger.Info("Session established",
			slog.Any("userID", snap.Session.UserID))
	case prev.SignedIn() && !snap.SignedIn():
		cl.logger.Info("Session ended")
	case snap.SignedIn() && prev.Role() != snap.Role():
		cl.logger.Info("Role resolved",
			slog.Any("userID", snap.Session.UserID),
			slog.String("role", snap.Role().String()))
	}
}
