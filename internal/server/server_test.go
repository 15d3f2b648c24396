package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/alion/internal/auth"
	"github.com/osse101/alion/internal/domain"
)

type stubPool struct{}

func (stubPool) Ping(context.Context) error { return nil }
func (stubPool) Close()                     {}

type MockUserService struct {
	MockProvisioner
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, userID string) (*domain.CurrentUserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*domain.CurrentUserResponse), args.Error(1)
}

func (m *MockUserService) GetPlayer(ctx context.Context, userID string) (*domain.PlayerResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*domain.PlayerResponse), args.Error(1)
}

func (m *MockUserService) InvalidateUser(userID string) {
	m.Called(userID)
}

type MockTribeService struct {
	mock.Mock
}

func (m *MockTribeService) ListTribes(ctx context.Context) ([]domain.Tribe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tribe), args.Error(1)
}

func (m *MockTribeService) SelectTribe(ctx context.Context, userID string, tribeID int) (*domain.Village, error) {
	args := m.Called(ctx, userID, tribeID)
	return args.Get(0).(*domain.Village), args.Error(1)
}

type MockVillageService struct {
	mock.Mock
}

func (m *MockVillageService) ListVillages(ctx context.Context, userID string) ([]domain.Village, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockVillageService) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID)
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageService) GetResources(ctx context.Context, userID, villageID string) (*domain.VillageResourcesResponse, error) {
	args := m.Called(ctx, userID, villageID)
	return args.Get(0).(*domain.VillageResourcesResponse), args.Error(1)
}

func (m *MockVillageService) RenameVillage(ctx context.Context, userID, villageID, name string) (*domain.Village, error) {
	args := m.Called(ctx, userID, villageID, name)
	return args.Get(0).(*domain.Village), args.Error(1)
}

func TestRouter(t *testing.T) {
	verifier, err := auth.NewVerifier(testSecret)
	require.NoError(t, err)

	player := domain.Identity{UserID: "5b9d6c1e-0f2a-4d3b-8e7f-1a2b3c4d5e6f", Username: "boudicca"}
	token, err := verifier.Issue(player, time.Hour)
	require.NoError(t, err)

	users := &MockUserService{}
	users.On("EnsureUser", mock.Anything, mock.Anything).Return(&domain.User{ID: player.UserID}, nil)
	users.On("GetCurrentUser", mock.Anything, player.UserID).
		Return(&domain.CurrentUserResponse{ID: player.UserID, Username: "boudicca"}, nil)

	tribes := &MockTribeService{}
	tribes.On("ListTribes", mock.Anything).Return([]domain.Tribe{{ID: 1, Name: "Romans"}}, nil)

	villages := &MockVillageService{}
	villages.On("ListVillages", mock.Anything, player.UserID).Return([]domain.Village{}, nil)
	villages.On("GetResources", mock.Anything, player.UserID, "0d1e2f3a-4b5c-4d6e-8f70-8192a3b4c5d6").
		Return(&domain.VillageResourcesResponse{Wood: 800}, nil)

	router := NewRouter(Params{
		DBPool:         stubPool{},
		Verifier:       verifier,
		UserService:    users,
		VillageService: villages,
		TribeService:   tribes,
	})

	tests := []struct {
		name           string
		path           string
		authed         bool
		expectedStatus int
	}{
		{"Liveness is public", "/healthz", false, http.StatusOK},
		{"Readiness is public", "/readyz", false, http.StatusOK},
		{"Version is public", "/version", false, http.StatusOK},
		{"Metrics are public", "/metrics", false, http.StatusOK},
		{"API requires a token", "/api/villages", false, http.StatusUnauthorized},
		{"Villages", "/api/villages", true, http.StatusOK},
		{"Village resources", "/api/villages/0d1e2f3a-4b5c-4d6e-8f70-8192a3b4c5d6/resources", true, http.StatusOK},
		{"Malformed village id", "/api/villages/42/resources", true, http.StatusBadRequest},
		{"Tribes", "/api/tribes", true, http.StatusOK},
		{"Current user", "/api/users/me", true, http.StatusOK},
		{"Unknown route", "/api/nope", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authed {
				req.Header.Set(HeaderAuthorization, BearerPrefix+token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}
