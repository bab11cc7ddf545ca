package server

import (
	"encoding/json"
	"net/http"

	"github.com/mmynk/pulse/internal/middleware"
	"github.com/mmynk/pulse/internal/service"
)

// SuggestHandler serves AI habit suggestions. The response always carries
// advice: upstream failures degrade to the keyword fallback instead of
// surfacing an error.
type SuggestHandler struct {
	suggestions *service.SuggestionService
	habits      *service.HabitService
}

func NewSuggestHandler(suggestions *service.SuggestionService, habits *service.HabitService) *SuggestHandler {
	return &SuggestHandler{suggestions: suggestions, habits: habits}
}

type suggestRequest struct {
	Question string `json:"question"`
}

type suggestionResponse struct {
	Advice       string `json:"advice"`
	Habit        string `json:"habit,omitempty"`
	CanAdd       bool   `json:"canAdd"`
	FromFallback bool   `json:"fromFallback"`
}

func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ownerID := middleware.GetUserID(r.Context())
	views, err := h.habits.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	names := make([]string, len(views))
	for i, view := range views {
		names[i] = view.Habit.Name
	}

	suggestion := h.suggestions.Suggest(r.Context(), names, req.Question)
	writeJSON(w, http.StatusOK, suggestionResponse{
		Advice:       suggestion.Advice,
		Habit:        suggestion.Habit,
		CanAdd:       suggestion.CanAdd,
		FromFallback: suggestion.FromFallback,
	})
}
