package handler

import (
	"net/http"

	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/village"
)

// RenameVillageRequest renames a village
type RenameVillageRequest struct {
	Name string `json:"name" validate:"required,notblank,nocontrol,max=400"`
}

// VillageHandler handles village HTTP requests
type VillageHandler struct {
	villageSvc village.Service
}

// NewVillageHandler creates a new village handler
func NewVillageHandler(villageSvc village.Service) *VillageHandler {
	return &VillageHandler{villageSvc: villageSvc}
}

// List returns the caller's villages
// @Summary List villages
// @Description Villages of the authenticated player with resources projected to now
// @Tags villages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.VillageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/villages [get]
func (h *VillageHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	villages, err := h.villageSvc.ListVillages(r.Context(), id.UserID)
	if err != nil {
		logger.FromContext(r.Context()).Error("List villages failed", "error", err)
		respondServiceError(w, err)
		return
	}

	out := make([]domain.VillageResponse, 0, len(villages))
	for i := range villages {
		out = append(out, villages[i].ToResponse())
	}
	respondJSON(w, http.StatusOK, out)
}

// Get returns one village with resources reconciled to now
// @Summary Get village
// @Tags villages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Village ID"
// @Success 200 {object} domain.VillageResponse
// @Failure 400 {object} ErrorResponse "Malformed village id"
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Concurrent update, retry"
// @Router /api/villages/{id} [get]
func (h *VillageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	villageID, ok := villageIDParam(w, r)
	if !ok {
		return
	}

	v, err := h.villageSvc.GetVillage(r.Context(), id.UserID, villageID)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Get village failed", "village_id", villageID, "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v.ToResponse())
}

// GetResources returns the resource levels polled by the client
// @Summary Get village resources
// @Tags villages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Village ID"
// @Success 200 {object} domain.VillageResourcesResponse
// @Failure 400 {object} ErrorResponse "Malformed village id"
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Concurrent update, retry"
// @Router /api/villages/{id}/resources [get]
func (h *VillageHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	villageID, ok := villageIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.villageSvc.GetResources(r.Context(), id.UserID, villageID)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Get village resources failed", "village_id", villageID, "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Rename changes a village name
// @Summary Rename village
// @Tags villages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Village ID"
// @Param request body RenameVillageRequest true "New name"
// @Success 200 {object} domain.VillageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/villages/{id}/rename [put]
func (h *VillageHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	villageID, ok := villageIDParam(w, r)
	if !ok {
		return
	}

	var req RenameVillageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rename village"); err != nil {
		return
	}

	v, err := h.villageSvc.RenameVillage(r.Context(), id.UserID, villageID, req.Name)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Rename village failed", "village_id", villageID, "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v.ToResponse())
}
