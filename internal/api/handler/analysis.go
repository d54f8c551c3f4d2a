package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nucleobets/backend/internal/api/request"
	"github.com/nucleobets/backend/internal/api/response"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/services/analysis"
)

// AnalysisHandler handles analysis and statistics endpoints
type AnalysisHandler struct {
	analysisService *analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Create handles POST /api/v1/admin/analyses
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" || req.MatchInfo == "" || req.BetType == "" {
		WriteError(w, NewInvalidRequestError("title, match_info and bet_type are required"))
		return
	}
	if req.MatchDate.IsZero() {
		WriteError(w, NewInvalidRequestError("match_date is required"))
		return
	}

	created, err := h.analysisService.Create(r.Context(), analysis.CreateParams{
		Title:            req.Title,
		MatchInfo:        req.MatchInfo,
		BetType:          model.BetType(req.BetType),
		Confidence:       req.Confidence,
		DetailedAnalysis: req.DetailedAnalysis,
		Odds:             req.Odds,
		MatchDate:        req.MatchDate,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(created))
}

// ListAdmin handles GET /api/v1/admin/analyses (no limit)
func (h *AnalysisHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.analysisService.List(r.Context(), 0)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AnalysesFromModel(analyses))
}

// Update handles PUT /api/v1/admin/analyses/{id}
func (h *AnalysisHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.AnalysisID(mux.Vars(r)["id"])

	var req request.UpdateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := analysis.UpdateParams{
		Title:            req.Title,
		MatchInfo:        req.MatchInfo,
		Confidence:       req.Confidence,
		DetailedAnalysis: req.DetailedAnalysis,
		Odds:             req.Odds,
		MatchDate:        req.MatchDate,
	}
	if req.BetType != nil {
		bt := model.BetType(*req.BetType)
		params.BetType = &bt
	}
	if req.Outcome != nil {
		oc := model.Outcome(*req.Outcome)
		params.Outcome = &oc
	}

	updated, err := h.analysisService.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(updated))
}

// Delete handles DELETE /api/v1/admin/analyses/{id}
func (h *AnalysisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.AnalysisID(mux.Vars(r)["id"])

	if err := h.analysisService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Message{Message: "Analysis deleted"})
}

// ListPublic handles GET /api/v1/analyses (bounded, newest first)
func (h *AnalysisHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.analysisService.List(r.Context(), analysis.PublicLimit)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AnalysesFromModel(analyses))
}

// Stats handles GET /api/v1/stats
func (h *AnalysisHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analysisService.Stats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}
