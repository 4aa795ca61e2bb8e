package identity

import (
	"context"
	"testing"
	"time"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startWatcher runs the watcher in the background and returns once the
// observer is registered, so tests can publish events right away.
func startWatcher(t *testing.T, provider *fakeProvider, store *Store) {
	t.Helper()

	watcher := NewWatcher(provider, store, newDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watcher.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, func() bool {
		return provider.watcherCount() > 0
	}, time.Second, time.Millisecond)
}

func TestWatcher_HydratesExistingSessionOnStart(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())
	provider := newFakeProvider()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Karim Alami"}
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleSupplier}
	f.supplierRepo.suppliers[userID] = &entity.SupplierProfile{UserID: userID, CompanyName: "Atlas Gros"}
	provider.session = &Session{UserID: userID}

	startWatcher(t, provider, store)

	require.Eventually(t, func() bool {
		snap := store.Snapshot()
		return snap.SignedIn() && snap.Profile != nil
	}, time.Second, 5*time.Millisecond)

	snap := store.Snapshot()
	assert.Equal(t, entity.RoleSupplier, snap.Role())
	assert.False(t, snap.Loading)
}

func TestWatcher_HydratesSessionPushedAfterStart(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())
	provider := newFakeProvider()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Ana Benali"}
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleVendor}
	f.vendorRepo.vendors[userID] = &entity.VendorProfile{UserID: userID, StoreName: "Ana Store"}

	startWatcher(t, provider, store)

	provider.signIn(&Session{UserID: userID})

	// The session itself is published synchronously by the callback.
	assert.True(t, store.Snapshot().SignedIn())

	// The resolved identity arrives via the hydration worker.
	require.Eventually(t, func() bool {
		snap := store.Snapshot()
		vendor, ok := snap.RoleProfile.Vendor()
		return ok && vendor != nil && vendor.StoreName == "Ana Store"
	}, time.Second, 5*time.Millisecond)
}

func TestWatcher_SignOutClearsSynchronously(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())
	provider := newFakeProvider()
	userID := uuid.New()

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID}
	provider.session = &Session{UserID: userID}

	startWatcher(t, provider, store)

	require.Eventually(t, func() bool {
		return store.Snapshot().SignedIn()
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, provider.SignOut(context.Background()))

	// The clear happens inside the callback, not on the worker.
	snap := store.Snapshot()
	assert.False(t, snap.SignedIn())
	assert.Nil(t, snap.Profile)
	assert.True(t, snap.RoleProfile.IsZero())
}

func TestWatcher_SurvivesInitialCheckFailure(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())
	provider := newFakeProvider()
	userID := uuid.New()

	provider.currentSessionErr = assert.AnError

	startWatcher(t, provider, store)

	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Ana Benali"}
	provider.mu.Lock()
	provider.currentSessionErr = nil
	provider.mu.Unlock()

	// Push events still flow after a failed initial check.
	provider.signIn(&Session{UserID: userID})

	require.Eventually(t, func() bool {
		snap := store.Snapshot()
		return snap.SignedIn() && snap.Profile != nil
	}, time.Second, 5*time.Millisecond)
}
