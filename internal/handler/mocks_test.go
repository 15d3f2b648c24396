package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/alion/internal/domain"
)

type MockVillageService struct {
	mock.Mock
}

func (m *MockVillageService) ListVillages(ctx context.Context, userID string) ([]domain.Village, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockVillageService) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageService) GetResources(ctx context.Context, userID, villageID string) (*domain.VillageResourcesResponse, error) {
	args := m.Called(ctx, userID, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VillageResourcesResponse), args.Error(1)
}

func (m *MockVillageService) RenameVillage(ctx context.Context, userID, villageID, name string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

type MockTribeService struct {
	mock.Mock
}

func (m *MockTribeService) ListTribes(ctx context.Context) ([]domain.Tribe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tribe), args.Error(1)
}

func (m *MockTribeService) SelectTribe(ctx context.Context, userID string, tribeID int) (*domain.Village, error) {
	args := m.Called(ctx, userID, tribeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, userID string) (*domain.CurrentUserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentUserResponse), args.Error(1)
}

func (m *MockUserService) GetPlayer(ctx context.Context, userID string) (*domain.PlayerResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerResponse), args.Error(1)
}

func (m *MockUserService) InvalidateUser(userID string) {
	m.Called(userID)
}
