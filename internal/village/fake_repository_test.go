package village

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/alion/internal/domain"
)

// memoryRepository is an in-memory VillageRepository with the same
// version-checked write-back as the database
type memoryRepository struct {
	mu       sync.Mutex
	villages map[string]domain.Village
	saves    int
	// beforeSave runs with the lock released, letting tests race a writer in
	beforeSave func()
}

func newMemoryRepository(villages ...domain.Village) *memoryRepository {
	r := &memoryRepository{villages: make(map[string]domain.Village)}
	for _, v := range villages {
		r.villages[v.ID] = v
	}
	return r
}

func (r *memoryRepository) GetVillage(_ context.Context, userID, villageID string) (*domain.Village, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.villages[villageID]
	if !ok || v.UserID != userID {
		return nil, domain.ErrVillageNotFound
	}
	return &v, nil
}

func (r *memoryRepository) ListVillagesByUser(_ context.Context, userID string) ([]domain.Village, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Village
	for _, v := range r.villages {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memoryRepository) SaveResources(_ context.Context, villageID string, state domain.ResourceState, expectedVersion int64) error {
	if r.beforeSave != nil {
		r.beforeSave()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.villages[villageID]
	if !ok || v.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	v.Resources = state
	v.Version++
	r.villages[villageID] = v
	r.saves++
	return nil
}

func (r *memoryRepository) RenameVillage(_ context.Context, userID, villageID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.villages[villageID]
	if !ok || v.UserID != userID {
		return domain.ErrVillageNotFound
	}
	v.Name = name
	v.Version++
	r.villages[villageID] = v
	return nil
}

func (r *memoryRepository) HasVillages(_ context.Context, userID string) (bool, error) {
	villages, _ := r.ListVillagesByUser(context.Background(), userID)
	return len(villages) > 0, nil
}

func (r *memoryRepository) stored(villageID string) domain.Village {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.villages[villageID]
}

// MockRepository is a testify mock of repository.VillageRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockRepository) ListVillagesByUser(ctx context.Context, userID string) ([]domain.Village, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockRepository) SaveResources(ctx context.Context, villageID string, state domain.ResourceState, expectedVersion int64) error {
	args := m.Called(ctx, villageID, state, expectedVersion)
	return args.Error(0)
}

func (m *MockRepository) RenameVillage(ctx context.Context, userID, villageID, name string) error {
	args := m.Called(ctx, userID, villageID, name)
	return args.Error(0)
}

func (m *MockRepository) HasVillages(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
