package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/pulse/internal/middleware"
	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/service"
)

// GoalHandler serves goal CRUD. Deleting a goal never touches habits that
// reference it; their references simply stop resolving.
type GoalHandler struct {
	goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type goalRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type goalResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

func toGoalResponse(g *models.Goal) goalResponse {
	return goalResponse{
		ID:        g.ID,
		Name:      g.Name,
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		CreatedAt: g.CreatedAt,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]goalResponse, len(goals))
	for i := range goals {
		resp[i] = toGoalResponse(&goals[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	goal, err := h.goals.Create(r.Context(), middleware.GetUserID(r.Context()), req.Name, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	goal, err := h.goals.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"), req.Name, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.goals.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
