package handler

import (
	"net/http"

	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/user"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	userSvc user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc user.Service) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me returns the authenticated user
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.CurrentUserResponse
// @Router /api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	resp, err := h.userSvc.GetCurrentUser(r.Context(), id.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Get current user failed", "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Player returns the onboarding summary of the authenticated player
// @Summary Player summary
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PlayerResponse
// @Router /api/users/player [get]
func (h *UserHandler) Player(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	resp, err := h.userSvc.GetPlayer(r.Context(), id.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Get player failed", "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
