package identity

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChangeLogger_TracksSessionAndRoleTransitions(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())

	var buf bytes.Buffer
	unsubscribe := LogChanges(store, slog.New(slog.NewTextHandler(&buf, nil)))
	defer unsubscribe()

	userID := uuid.New()
	f.profileRepo.profiles[userID] = &entity.Profile{UserID: userID, FullName: "Ana Benali"}
	f.roleRepo.assignments[userID] = &entity.RoleAssignment{UserID: userID, Role: entity.RoleVendor}
	f.vendorRepo.vendors[userID] = &entity.VendorProfile{UserID: userID, StoreName: "Ana Store"}

	store.SetSession(&Session{UserID: userID})
	assert.Contains(t, buf.String(), "Session established")

	store.Refresh(context.Background())
	assert.Contains(t, buf.String(), "Role resolved")
	assert.Contains(t, buf.String(), "vendor")

	store.Clear()
	assert.Contains(t, buf.String(), "Session ended")
}

func TestChangeLogger_UnsubscribeStopsLogging(t *testing.T) {
	f := newResolverFixture()
	store := NewStore(f.resolver, newDiscardLogger())

	var buf bytes.Buffer
	unsubscribe := LogChanges(store, slog.New(slog.NewTextHandler(&buf, nil)))
	unsubscribe()

	store.SetSession(&Session{UserID: uuid.New()})
	assert.Empty(t, buf.String())
}
