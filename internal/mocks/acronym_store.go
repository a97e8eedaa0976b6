package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/store"
)

// MockAcronymStore implements store.AcronymStore in memory.
// Acronyms are kept in insertion order, which is the order First uses.
type MockAcronymStore struct {
	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, acronym *domain.Acronym) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.Acronym, error)
	ListFn              func(ctx context.Context) ([]*domain.Acronym, error)
	UpdateFn            func(ctx context.Context, acronym *domain.Acronym) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	SearchFn            func(ctx context.Context, term string) ([]*domain.Acronym, error)
	FirstFn             func(ctx context.Context) (*domain.Acronym, error)
	ListSortedByShortFn func(ctx context.Context) ([]*domain.Acronym, error)
	ListByUserFn        func(ctx context.Context, userID uuid.UUID) ([]*domain.Acronym, error)

	mu       sync.RWMutex
	acronyms []*domain.Acronym
}

// NewMockAcronymStore creates an empty in-memory acronym store.
func NewMockAcronymStore() *MockAcronymStore {
	return &MockAcronymStore{}
}

var _ store.AcronymStore = (*MockAcronymStore)(nil)

// Seed appends acronyms directly, bypassing Create overrides.
func (m *MockAcronymStore) Seed(acronyms ...*domain.Acronym) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range acronyms {
		cp := *a
		m.acronyms = append(m.acronyms, &cp)
	}
}

// Len returns the number of stored acronyms.
func (m *MockAcronymStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.acronyms)
}

// Create implements store.AcronymStore
func (m *MockAcronymStore) Create(ctx context.Context, acronym *domain.Acronym) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, acronym)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(acronym.ID) >= 0 {
		return store.ErrDuplicate
	}
	cp := *acronym
	m.acronyms = append(m.acronyms, &cp)
	return nil
}

// GetByID implements store.AcronymStore
func (m *MockAcronymStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Acronym, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, store.ErrAcronymNotFound
	}
	cp := *m.acronyms[i]
	return &cp, nil
}

// List implements store.AcronymStore
func (m *MockAcronymStore) List(ctx context.Context) ([]*domain.Acronym, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.filter(func(*domain.Acronym) bool { return true }), nil
}

// Update implements store.AcronymStore
func (m *MockAcronymStore) Update(ctx context.Context, acronym *domain.Acronym) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, acronym)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(acronym.ID)
	if i < 0 {
		return store.ErrAcronymNotFound
	}
	cp := *acronym
	m.acronyms[i] = &cp
	return nil
}

// Delete implements store.AcronymStore
func (m *MockAcronymStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return store.ErrAcronymNotFound
	}
	m.acronyms = append(m.acronyms[:i], m.acronyms[i+1:]...)
	return nil
}

// Search implements store.AcronymStore
func (m *MockAcronymStore) Search(ctx context.Context, term string) ([]*domain.Acronym, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, term)
	}
	return m.filter(func(a *domain.Acronym) bool {
		return a.Short == term || a.Long == term
	}), nil
}

// First implements store.AcronymStore
func (m *MockAcronymStore) First(ctx context.Context) (*domain.Acronym, error) {
	if m.FirstFn != nil {
		return m.FirstFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.acronyms) == 0 {
		return nil, store.ErrAcronymNotFound
	}
	cp := *m.acronyms[0]
	return &cp, nil
}

// ListSortedByShort implements store.AcronymStore
func (m *MockAcronymStore) ListSortedByShort(ctx context.Context) ([]*domain.Acronym, error) {
	if m.ListSortedByShortFn != nil {
		return m.ListSortedByShortFn(ctx)
	}

	all := m.filter(func(*domain.Acronym) bool { return true })
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Short < all[j].Short
	})
	return all, nil
}

// ListByUser implements store.AcronymStore
func (m *MockAcronymStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Acronym, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.filter(func(a *domain.Acronym) bool { return a.UserID == userID }), nil
}

// WithTx implements store.AcronymStore; the mock has no transactions.
func (m *MockAcronymStore) WithTx(tx *sql.Tx) store.AcronymStore {
	return m
}

// indexOf must be called with mu held.
func (m *MockAcronymStore) indexOf(id uuid.UUID) int {
	for i, a := range m.acronyms {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (m *MockAcronymStore) filter(keep func(*domain.Acronym) bool) []*domain.Acronym {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Acronym, 0, len(m.acronyms))
	for _, a := range m.acronyms {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}
