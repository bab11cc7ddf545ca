package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/pulse/internal/engine"
	"github.com/mmynk/pulse/internal/middleware"
	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/service"
)

// HabitHandler serves habit CRUD and the daily completion toggle.
type HabitHandler struct {
	habits *service.HabitService
}

func NewHabitHandler(habits *service.HabitService) *HabitHandler {
	return &HabitHandler{habits: habits}
}

type createHabitRequest struct {
	Name   string `json:"name"`
	GoalID string `json:"goalId"`
}

type updateHabitRequest struct {
	Name   *string `json:"name"`
	GoalID *string `json:"goalId"`
}

type habitResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	CompletedDates []string      `json:"completedDates"`
	Streak         int           `json:"streak"`
	GoalID         string        `json:"goalId,omitempty"`
	CreatedAt      int64         `json:"createdAt"`
	Goal           *goalResponse `json:"goal,omitempty"`
}

func toHabitResponse(h *models.Habit) habitResponse {
	dates := h.CompletedDates
	if dates == nil {
		dates = []string{}
	}
	return habitResponse{
		ID:             h.ID,
		Name:           h.Name,
		CompletedDates: dates,
		Streak:         h.Streak,
		GoalID:         h.GoalID,
		CreatedAt:      h.CreatedAt,
	}
}

func toHabitViewResponse(view service.HabitView) habitResponse {
	resp := toHabitResponse(&view.Habit)
	if view.Goal != engine.NoGoal {
		resp.Goal = &goalResponse{
			ID:        view.Goal.GoalID,
			Name:      view.Goal.Name,
			StartDate: view.Goal.StartDate,
			EndDate:   view.Goal.EndDate,
		}
	}
	return resp
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.habits.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]habitResponse, len(views))
	for i, view := range views {
		resp[i] = toHabitViewResponse(view)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.Create(r.Context(), middleware.GetUserID(r.Context()), req.Name, req.GoalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHabitResponse(habit))
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"), service.UpdateParams{
		Name:   req.Name,
		GoalID: req.GoalID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(habit))
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.habits.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Toggle flips today's completion for the habit and returns the updated
// habit with its streak recomputed.
func (h *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	habit, err := h.habits.Toggle(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(habit))
}
