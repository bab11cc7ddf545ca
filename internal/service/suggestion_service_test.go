package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/pulse/internal/suggest"
)

type fakeGenerator struct {
	message string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, _ suggest.PromptContext) (string, error) {
	return f.message, f.err
}

func TestSuggestionServiceSuggest(t *testing.T) {
	tests := []struct {
		name         string
		generator    *fakeGenerator
		wantAdvice   string
		wantHabit    string
		wantCanAdd   bool
		wantFallback bool
	}{
		{
			name:         "advice with marker",
			generator:    &fakeGenerator{message: "Sleep matters. I recommend: a fixed bedtime. It compounds."},
			wantAdvice:   "Sleep matters. I recommend: a fixed bedtime. It compounds.",
			wantHabit:    "a fixed bedtime",
			wantCanAdd:   true,
			wantFallback: false,
		},
		{
			name:         "advice without marker",
			generator:    &fakeGenerator{message: "Just keep showing up every day."},
			wantAdvice:   "Just keep showing up every day.",
			wantHabit:    "",
			wantCanAdd:   false,
			wantFallback: false,
		},
		{
			name:         "generator failure falls back",
			generator:    &fakeGenerator{err: errors.New("upstream unavailable")},
			wantAdvice:   suggest.Fallback("how do I sleep better?"),
			wantHabit:    "No screens 30 minutes before bed",
			wantCanAdd:   true,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSuggestionService(tt.generator)
			got := svc.Suggest(context.Background(), []string{"Read"}, "how do I sleep better?")

			if got.Advice != tt.wantAdvice {
				t.Errorf("Advice = %q, want %q", got.Advice, tt.wantAdvice)
			}
			if got.Habit != tt.wantHabit {
				t.Errorf("Habit = %q, want %q", got.Habit, tt.wantHabit)
			}
			if got.CanAdd != tt.wantCanAdd {
				t.Errorf("CanAdd = %v, want %v", got.CanAdd, tt.wantCanAdd)
			}
			if got.FromFallback != tt.wantFallback {
				t.Errorf("FromFallback = %v, want %v", got.FromFallback, tt.wantFallback)
			}
		})
	}
}
