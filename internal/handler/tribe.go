package handler

import (
	"net/http"

	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/tribe"
)

// SelectTribeRequest picks the player's tribe
type SelectTribeRequest struct {
	TribeID int `json:"tribe_id" validate:"required,min=1"`
}

// TribeHandler handles tribe HTTP requests
type TribeHandler struct {
	tribeSvc tribe.Service
}

// NewTribeHandler creates a new tribe handler
func NewTribeHandler(tribeSvc tribe.Service) *TribeHandler {
	return &TribeHandler{tribeSvc: tribeSvc}
}

// List returns the tribe catalogue
// @Summary List tribes
// @Tags tribes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Tribe
// @Router /api/tribes [get]
func (h *TribeHandler) List(w http.ResponseWriter, r *http.Request) {
	tribes, err := h.tribeSvc.ListTribes(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("List tribes failed", "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tribes)
}

// Select assigns a tribe and founds the player's capital
// @Summary Select tribe
// @Description One-time tribe choice; founds the capital village at a random free tile
// @Tags tribes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectTribeRequest true "Tribe choice"
// @Success 201 {object} domain.VillageResponse
// @Failure 400 {object} ErrorResponse "Invalid request or tribe already chosen"
// @Failure 404 {object} ErrorResponse "Unknown tribe"
// @Router /api/tribes/select [post]
func (h *TribeHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req SelectTribeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select tribe"); err != nil {
		return
	}

	v, err := h.tribeSvc.SelectTribe(r.Context(), id.UserID, req.TribeID)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Select tribe failed", "tribe_id", req.TribeID, "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v.ToResponse())
}
