package mocks

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPackageStore implements store.PackageStore for testing
type MockPackageStore struct {
	*memory[domain.Package]

	CreateFn  func(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error)
	GetByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)
}

// NewMockPackageStore creates a store seeded with pkgs.
func NewMockPackageStore(pkgs ...domain.Package) *MockPackageStore {
	return &MockPackageStore{
		memory: newMemory(func(p *domain.Package) *primitive.ObjectID { return &p.ID }, pkgs),
	}
}

var _ store.PackageStore = (*MockPackageStore)(nil)

func (m *MockPackageStore) List(ctx context.Context) ([]domain.Package, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(nil), nil
}

func (m *MockPackageStore) ListByTourType(ctx context.Context, tourType string) ([]domain.Package, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(func(p *domain.Package) bool { return p.TourType == tourType }), nil
}

func (m *MockPackageStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if p, ok := m.byID(id); ok {
		return &p, nil
	}
	return nil, store.ErrPackageNotFound
}

func (m *MockPackageStore) Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pkg)
	}
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*pkg), nil
}

// MockUserStore implements store.UserStore for testing.
// Create enforces email uniqueness like the unique index does.
type MockUserStore struct {
	*memory[domain.User]

	CreateFn     func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

// NewMockUserStore creates a store seeded with users.
func NewMockUserStore(users ...domain.User) *MockUserStore {
	return &MockUserStore{
		memory: newMemory(func(u *domain.User) *primitive.ObjectID { return &u.ID }, users),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(nil), nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if u, ok := m.first(func(u *domain.User) bool { return u.Email == email }); ok {
		return &u, nil
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}

	m.mu.Lock()
	for i := range m.docs {
		if m.docs[i].Email == user.Email {
			m.mu.Unlock()
			return primitive.NilObjectID, store.ErrEmailExists
		}
	}
	doc := *user
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	m.mu.Unlock()
	return doc.ID, nil
}

// MockWishlistStore implements store.WishlistStore for testing
type MockWishlistStore struct {
	*memory[domain.WishlistItem]
}

// NewMockWishlistStore creates a store seeded with items.
func NewMockWishlistStore(items ...domain.WishlistItem) *MockWishlistStore {
	return &MockWishlistStore{
		memory: newMemory(func(w *domain.WishlistItem) *primitive.ObjectID { return &w.ID }, items),
	}
}

var _ store.WishlistStore = (*MockWishlistStore)(nil)

func (m *MockWishlistStore) ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(func(w *domain.WishlistItem) bool { return w.Email == email }), nil
}

func (m *MockWishlistStore) Create(ctx context.Context, item *domain.WishlistItem) (primitive.ObjectID, error) {
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*item), nil
}

func (m *MockWishlistStore) DeleteForOwner(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	if m.Error != nil {
		return 0, m.Error
	}
	return m.deleteFirst(func(w *domain.WishlistItem) bool { return w.ID == id && w.Email == email }), nil
}

// MockGuideStore implements store.GuideStore for testing
type MockGuideStore struct {
	*memory[domain.Guide]
}

// NewMockGuideStore creates a store seeded with guides.
func NewMockGuideStore(guides ...domain.Guide) *MockGuideStore {
	return &MockGuideStore{
		memory: newMemory(func(g *domain.Guide) *primitive.ObjectID { return &g.ID }, guides),
	}
}

var _ store.GuideStore = (*MockGuideStore)(nil)

func (m *MockGuideStore) List(ctx context.Context) ([]domain.Guide, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(nil), nil
}

func (m *MockGuideStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Guide, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if g, ok := m.byID(id); ok {
		return &g, nil
	}
	return nil, store.ErrGuideNotFound
}

func (m *MockGuideStore) Create(ctx context.Context, guide *domain.Guide) (primitive.ObjectID, error) {
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*guide), nil
}

// MockStoryStore implements store.StoryStore for testing
type MockStoryStore struct {
	*memory[domain.Story]
}

// NewMockStoryStore creates a store seeded with stories.
func NewMockStoryStore(stories ...domain.Story) *MockStoryStore {
	return &MockStoryStore{
		memory: newMemory(func(s *domain.Story) *primitive.ObjectID { return &s.ID }, stories),
	}
}

var _ store.StoryStore = (*MockStoryStore)(nil)

func (m *MockStoryStore) List(ctx context.Context) ([]domain.Story, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(nil), nil
}

func (m *MockStoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if s, ok := m.byID(id); ok {
		return &s, nil
	}
	return nil, store.ErrStoryNotFound
}

func (m *MockStoryStore) Create(ctx context.Context, story *domain.Story) (primitive.ObjectID, error) {
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*story), nil
}

// MockRoleRequestStore implements store.RoleRequestStore for testing
type MockRoleRequestStore struct {
	*memory[domain.RoleRequest]

	ApplyDecisionFn func(ctx context.Context, email string, decision domain.RoleDecision) (store.UpdateResult, error)
}

// NewMockRoleRequestStore creates a store seeded with requests.
func NewMockRoleRequestStore(reqs ...domain.RoleRequest) *MockRoleRequestStore {
	return &MockRoleRequestStore{
		memory: newMemory(func(r *domain.RoleRequest) *primitive.ObjectID { return &r.ID }, reqs),
	}
}

var _ store.RoleRequestStore = (*MockRoleRequestStore)(nil)

func (m *MockRoleRequestStore) ListByEmail(ctx context.Context, email string) ([]domain.RoleRequest, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(func(r *domain.RoleRequest) bool { return r.Email == email }), nil
}

func (m *MockRoleRequestStore) GetByEmail(ctx context.Context, email string) (*domain.RoleRequest, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if r, ok := m.first(func(r *domain.RoleRequest) bool { return r.Email == email }); ok {
		return &r, nil
	}
	return nil, store.ErrRoleRequestNotFound
}

func (m *MockRoleRequestStore) ListPending(ctx context.Context) ([]domain.RoleRequest, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.filter(func(r *domain.RoleRequest) bool {
		return r.Status == domain.RequestStatusPending
	}), nil
}

func (m *MockRoleRequestStore) Create(ctx context.Context, req *domain.RoleRequest) (primitive.ObjectID, error) {
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*req), nil
}

func (m *MockRoleRequestStore) ApplyDecision(
	ctx context.Context,
	email string,
	decision domain.RoleDecision,
) (store.UpdateResult, error) {
	if m.ApplyDecisionFn != nil {
		return m.ApplyDecisionFn(ctx, email, decision)
	}
	if m.Error != nil {
		return store.UpdateResult{}, m.Error
	}
	matched, modified := m.updateFirst(
		func(r *domain.RoleRequest) bool { return r.Email == email },
		func(r *domain.RoleRequest) bool {
			changed := r.Status != decision.Status
			r.Status = decision.Status
			if decision.Role != "" {
				changed = changed || r.Role != decision.Role
				r.Role = decision.Role
			}
			return changed
		},
	)
	return store.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// MockBookingStore implements store.BookingStore for testing.
// Listing applies the same view filter and skip/limit as the MongoDB store.
type MockBookingStore struct {
	*memory[domain.Booking]

	ListFn func(ctx context.Context, filter store.BookingFilter) ([]domain.Booking, error)
}

// NewMockBookingStore creates a store seeded with bookings.
func NewMockBookingStore(bookings ...domain.Booking) *MockBookingStore {
	return &MockBookingStore{
		memory: newMemory(func(b *domain.Booking) *primitive.ObjectID { return &b.ID }, bookings),
	}
}

var _ store.BookingStore = (*MockBookingStore)(nil)

func (m *MockBookingStore) List(ctx context.Context, f store.BookingFilter) ([]domain.Booking, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	if m.Error != nil {
		return nil, m.Error
	}

	matched := m.filter(func(b *domain.Booking) bool {
		if b.Status == domain.BookingStatusCanceled {
			return false
		}
		if f.View == store.BookingViewGuide {
			for _, g := range b.Guides {
				if g == f.Email {
					return true
				}
			}
			return false
		}
		return b.Tourist.Email == f.Email
	})

	if f.Skip >= int64(len(matched)) {
		return []domain.Booking{}, nil
	}
	matched = matched[f.Skip:]
	if f.Limit > 0 && f.Limit < int64(len(matched)) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (m *MockBookingStore) EstimatedCount(ctx context.Context) (int64, error) {
	if m.Error != nil {
		return 0, m.Error
	}
	return m.count(nil), nil
}

func (m *MockBookingStore) CountByTourist(ctx context.Context, email string) (int64, error) {
	if m.Error != nil {
		return 0, m.Error
	}
	return m.count(func(b *domain.Booking) bool { return b.Tourist.Email == email }), nil
}

func (m *MockBookingStore) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	if m.Error != nil {
		return primitive.NilObjectID, m.Error
	}
	return m.insert(*booking), nil
}

func (m *MockBookingStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.Error != nil {
		return 0, m.Error
	}
	return m.deleteFirst(func(b *domain.Booking) bool { return b.ID == id }), nil
}

func (m *MockBookingStore) UpdateStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status domain.BookingStatus,
) (store.UpdateResult, error) {
	if m.Error != nil {
		return store.UpdateResult{}, m.Error
	}
	matched, modified := m.updateFirst(
		func(b *domain.Booking) bool { return b.ID == id },
		func(b *domain.Booking) bool {
			changed := b.Status != status
			b.Status = status
			return changed
		},
	)
	return store.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}
