package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nucleobets/backend/internal/api/request"
	"github.com/nucleobets/backend/internal/api/response"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/services/tip"
)

// TipHandler handles valuable-tip endpoints
type TipHandler struct {
	tipService *tip.Service
}

// NewTipHandler creates a new tip handler
func NewTipHandler(tipService *tip.Service) *TipHandler {
	return &TipHandler{
		tipService: tipService,
	}
}

// Create handles POST /api/v1/admin/tips
func (h *TipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" || req.Games == "" {
		WriteError(w, NewInvalidRequestError("title and games are required"))
		return
	}

	created, err := h.tipService.Create(r.Context(), tip.CreateParams{
		Title:           req.Title,
		Description:     req.Description,
		Games:           req.Games,
		TotalOdds:       req.TotalOdds,
		StakeSuggestion: req.StakeSuggestion,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TipFromModel(created))
}

// ListAdmin handles GET /api/v1/admin/tips (no limit)
func (h *TipHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.List(r.Context(), 0)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TipsFromModel(tips))
}

// Update handles PUT /api/v1/admin/tips/{id}
func (h *TipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.TipID(mux.Vars(r)["id"])

	var req request.UpdateTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.tipService.Update(r.Context(), id, tip.UpdateParams{
		Title:           req.Title,
		Description:     req.Description,
		Games:           req.Games,
		TotalOdds:       req.TotalOdds,
		StakeSuggestion: req.StakeSuggestion,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TipFromModel(updated))
}

// Delete handles DELETE /api/v1/admin/tips/{id}
func (h *TipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.TipID(mux.Vars(r)["id"])

	if err := h.tipService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Message{Message: "Tip deleted"})
}

// ListPublic handles GET /api/v1/tips (bounded, newest first)
func (h *TipHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.List(r.Context(), tip.PublicLimit)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TipsFromModel(tips))
}
