package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/alion/internal/domain"
)

func newTribeRouter(svc *MockTribeService) http.Handler {
	h := NewTribeHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/tribes", h.List)
	r.Post("/api/tribes/select", h.Select)
	return r
}

func TestTribeHandler_List(t *testing.T) {
	svc := &MockTribeService{}
	svc.On("ListTribes", mock.Anything).Return([]domain.Tribe{
		{ID: 1, Name: "Romans", IronBonus: 5, ColorHex: "#DC2626"},
		{ID: 2, Name: "Teutons", CropBonus: 5},
	}, nil)

	w := httptest.NewRecorder()
	newTribeRouter(svc).ServeHTTP(w, authedRequest(http.MethodGet, "/api/tribes", ""))

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.Tribe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, 5, got[0].IronBonus)
}

func TestTribeHandler_Select(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockTribeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Founds the capital",
			body: `{"tribe_id":3}`,
			setupMock: func(m *MockTribeService) {
				v := sampleVillage()
				v.TribeID, v.TribeName = 3, "Gauls"
				m.On("SelectTribe", mock.Anything, testUserID, 3).Return(v, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"tribe_name":"Gauls"`,
		},
		{
			name:           "Missing tribe id",
			body:           `{}`,
			setupMock:      func(m *MockTribeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"tribe_id":"This field is required"`,
		},
		{
			name: "Unknown tribe",
			body: `{"tribe_id":42}`,
			setupMock: func(m *MockTribeService) {
				m.On("SelectTribe", mock.Anything, testUserID, 42).Return(nil, domain.ErrTribeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTribeNotFound,
		},
		{
			name: "Already chosen",
			body: `{"tribe_id":1}`,
			setupMock: func(m *MockTribeService) {
				m.On("SelectTribe", mock.Anything, testUserID, 1).Return(nil, domain.ErrTribeAlreadySelected)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgTribeAlreadyChosen,
		},
		{
			name: "Map full",
			body: `{"tribe_id":1}`,
			setupMock: func(m *MockTribeService) {
				m.On("SelectTribe", mock.Anything, testUserID, 1).Return(nil, domain.ErrNoFreeCoordinates)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgMapFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTribeService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			newTribeRouter(svc).ServeHTTP(w, authedRequest(http.MethodPost, "/api/tribes/select", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
