package identity

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memProfileRepo is an in-memory ProfileRepository keyed by user id. An
// optional err field makes every call fail, simulating storage outages.
type memProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
	err      error
}

func (r *memProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *memProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (r *memProfileRepo) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	found := make(map[uuid.UUID]*entity.Profile)
	for _, id := range userIDs {
		if profile, ok := r.profiles[id]; ok {
			found[id] = profile
		}
	}
	return found, nil
}

func (r *memProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.profiles[profile.UserID] = profile
	return nil
}

type memRoleRepo struct {
	assignments map[uuid.UUID]*entity.RoleAssignment
	err         error
}

func (r *memRoleRepo) Create(ctx context.Context, assignment *entity.RoleAssignment) error {
	if r.err != nil {
		return r.err
	}
	r.assignments[assignment.UserID] = assignment
	return nil
}

func (r *memRoleRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	assignment, ok := r.assignments[userID]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}
	return assignment, nil
}

type memSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.SupplierProfile
	err       error
}

func (r *memSupplierRepo) Create(ctx context.Context, profile *entity.SupplierProfile) error {
	if r.err != nil {
		return r.err
	}
	r.suppliers[profile.UserID] = profile
	return nil
}

func (r *memSupplierRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SupplierProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.suppliers[userID]
	if !ok {
		return nil, repository.ErrSupplierNotFound
	}
	return profile, nil
}

func (r *memSupplierRepo) Update(ctx context.Context, profile *entity.SupplierProfile) error {
	if r.err != nil {
		return r.err
	}
	r.suppliers[profile.UserID] = profile
	return nil
}

func (r *memSupplierRepo) List(ctx context.Context, query repository.SupplierQuery) ([]*entity.SupplierProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	listed := make([]*entity.SupplierProfile, 0, len(r.suppliers))
	for _, profile := range r.suppliers {
		listed = append(listed, profile)
	}
	return listed, nil
}

func (r *memSupplierRepo) UpdateRating(ctx context.Context, userID uuid.UUID, average float64, count int) error {
	if r.err != nil {
		return r.err
	}
	if profile, ok := r.suppliers[userID]; ok {
		profile.RatingAverage = average
		profile.RatingCount = count
	}
	return nil
}

type memVendorRepo struct {
	vendors map[uuid.UUID]*entity.VendorProfile
	err     error
}

func (r *memVendorRepo) Create(ctx context.Context, profile *entity.VendorProfile) error {
	if r.err != nil {
		return r.err
	}
	r.vendors[profile.UserID] = profile
	return nil
}

func (r *memVendorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.vendors[userID]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	return profile, nil
}

func (r *memVendorRepo) Update(ctx context.Context, profile *entity.VendorProfile) error {
	if r.err != nil {
		return r.err
	}
	r.vendors[profile.UserID] = profile
	return nil
}

type resolverFixture struct {
	profileRepo  *memProfileRepo
	roleRepo     *memRoleRepo
	supplierRepo *memSupplierRepo
	vendorRepo   *memVendorRepo
	resolver     *Resolver
}

func newResolverFixture() *resolverFixture {
	f := &resolverFixture{
		profileRepo:  &memProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)},
		roleRepo:     &memRoleRepo{assignments: make(map[uuid.UUID]*entity.RoleAssignment)},
		supplierRepo: &memSupplierRepo{suppliers: make(map[uuid.UUID]*entity.SupplierProfile)},
		vendorRepo:   &memVendorRepo{vendors: make(map[uuid.UUID]*entity.VendorProfile)},
	}
	f.resolver = NewResolver(f.profileRepo, f.roleRepo, f.supplierRepo, f.vendorRepo, newDiscardLogger())
	return f
}

// fakeProvider is an in-memory Provider whose session can be flipped from the
// test, firing registered observers like the real one.
type fakeProvider struct {
	mu       sync.Mutex
	session  *Session
	nextID   int
	watchers map[int]func(Event)

	currentSessionErr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{watchers: make(map[int]func(Event))}
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return nil, nil
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return nil, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.setSession(nil, EventSignedOut)
	return nil
}

func (p *fakeProvider) CurrentSession(ctx context.Context) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currentSessionErr != nil {
		return nil, p.currentSessionErr
	}
	return p.session, nil
}

func (p *fakeProvider) OnSessionChange(fn func(Event)) func() {
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

func (p *fakeProvider) watcherCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.watchers)
}

func (p *fakeProvider) signIn(session *Session) {
	p.setSession(session, EventSignedIn)
}

func (p *fakeProvider) setSession(session *Session, eventType EventType) {
	p.mu.Lock()
	p.session = session
	fns := make([]func(Event), 0, len(p.watchers))
	for _, fn := range p.watchers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(Event{Type: eventType, Session: session})
	}
}
