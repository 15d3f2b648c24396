package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/alion/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockVillageRepository struct {
	mock.Mock
}

func (m *MockVillageRepository) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageRepository) ListVillagesByUser(ctx context.Context, userID string) ([]domain.Village, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockVillageRepository) SaveResources(ctx context.Context, villageID string, state domain.ResourceState, expectedVersion int64) error {
	return m.Called(ctx, villageID, state, expectedVersion).Error(0)
}

func (m *MockVillageRepository) RenameVillage(ctx context.Context, userID, villageID, name string) error {
	return m.Called(ctx, userID, villageID, name).Error(0)
}

func (m *MockVillageRepository) HasVillages(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
