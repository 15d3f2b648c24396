package tribe

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListTribes(ctx context.Context) ([]domain.Tribe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tribe), args.Error(1)
}

func (m *MockRepository) GetTribe(ctx context.Context, tribeID int) (*domain.Tribe, error) {
	args := m.Called(ctx, tribeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tribe), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.TribeTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TribeTx), args.Error(1)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockTx) SetUserTribe(ctx context.Context, userID string, tribeID int) error {
	return m.Called(ctx, userID, tribeID).Error(0)
}

func (m *MockTx) CoordinatesTaken(ctx context.Context, x, y int) (bool, error) {
	args := m.Called(ctx, x, y)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) CreateVillage(ctx context.Context, village *domain.Village) error {
	return m.Called(ctx, village).Error(0)
}

type recordingInvalidator struct {
	userIDs []string
}

func (r *recordingInvalidator) InvalidateUser(userID string) {
	r.userIDs = append(r.userIDs, userID)
}
