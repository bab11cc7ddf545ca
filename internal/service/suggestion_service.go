package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/pulse/internal/suggest"
)

// Suggestion is the outcome of asking the AI collaborator for advice.
type Suggestion struct {
	// Advice is the full response text shown in the chat.
	Advice string

	// Habit is the extracted habit candidate, empty when none was found.
	// CanAdd reports whether an "add this habit" affordance applies.
	Habit  string
	CanAdd bool

	// FromFallback is true when the AI call failed and a canned
	// keyword-matched response was substituted.
	FromFallback bool
}

// SuggestionService wraps the AI collaborator with fallback and extraction.
type SuggestionService struct {
	generator suggest.Generator
}

// NewSuggestionService creates a SuggestionService backed by the given
// generator.
func NewSuggestionService(generator suggest.Generator) *SuggestionService {
	return &SuggestionService{generator: generator}
}

// Suggest asks the model for advice tailored to the user's habits and
// question. Collaborator failures never propagate: the keyword fallback
// answers instead, so the user always gets a functional response.
func (s *SuggestionService) Suggest(ctx context.Context, habitNames []string, question string) Suggestion {
	advice, err := s.generator.Generate(ctx, suggest.PromptContext{
		CurrentHabitNames: habitNames,
		UserQuestion:      question,
	})

	result := Suggestion{Advice: advice}
	if err != nil {
		slog.Warn("AI suggestion failed, using fallback", "error", err)
		result.Advice = suggest.Fallback(question)
		result.FromFallback = true
	}

	result.Habit, result.CanAdd = suggest.ExtractHabit(result.Advice)
	return result
}
