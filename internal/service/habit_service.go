// Package service orchestrates the pure engine against the persistence and
// AI collaborators. Services validate input, keep the cached streak
// consistent with the completion set, and log failures; all derivation
// stays in the engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/pulse/internal/datekey"
	"github.com/mmynk/pulse/internal/engine"
	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/storage"
)

var (
	// ErrEmptyName rejects blank habit or goal names before any state change.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrNotOwner is returned when a user touches a record they do not own.
	ErrNotOwner = errors.New("record belongs to another user")
)

// HabitService implements habit lifecycle and the dashboard aggregations.
type HabitService struct {
	store storage.Store

	// now is the clock, swappable in tests. Every DateKey derives from it.
	now func() time.Time
}

// NewHabitService creates a HabitService with the given storage backend.
func NewHabitService(store storage.Store) *HabitService {
	return &HabitService{store: store, now: time.Now}
}

// HabitView pairs a habit with its resolved goal reference for display.
type HabitView struct {
	Habit models.Habit
	Goal  engine.GoalDisplay
}

// Create defines a new habit seeded with its creation day completed, so the
// cached streak starts at 1 and matches the engine's computation.
func (s *HabitService) Create(ctx context.Context, ownerID, name, goalID string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	today := datekey.FromTime(s.now())
	set := engine.NewCompletionSet().Add(today)
	habit := &models.Habit{
		OwnerID:        ownerID,
		Name:           name,
		GoalID:         goalID,
		CompletedDates: set.Keys(),
		Streak:         engine.CurrentStreak(set, s.now()),
	}

	if err := s.store.CreateHabit(ctx, habit); err != nil {
		slog.Error("Failed to create habit", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	slog.Info("Habit created", "habit_id", habit.ID, "owner_id", ownerID)
	return habit, nil
}

// Toggle flips today's completion for the habit and recomputes the streak
// from the full set. The streak is never adjusted incrementally: removing a
// non-trailing day would silently diverge from the true consecutive count.
func (s *HabitService) Toggle(ctx context.Context, ownerID, habitID string) (*models.Habit, error) {
	habit, err := s.ownedHabit(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := datekey.FromTime(now)
	set := engine.FromDates(habit.CompletedDates).Toggle(today)

	habit.CompletedDates = set.Keys()
	habit.Streak = engine.CurrentStreak(set, now)

	if err := s.store.UpdateHabit(ctx, habit); err != nil {
		slog.Error("Failed to persist toggle", "habit_id", habitID, "error", err)
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	slog.Info("Habit toggled",
		"habit_id", habitID,
		"day", today,
		"completed", set.Contains(today),
		"streak", habit.Streak,
	)
	return habit, nil
}

// UpdateParams are the optional edits Rename/relink accepts. Nil fields are
// left unchanged; a non-nil empty GoalID clears the link.
type UpdateParams struct {
	Name   *string
	GoalID *string
}

// Update edits a habit's name and/or goal link.
func (s *HabitService) Update(ctx context.Context, ownerID, habitID string, params UpdateParams) (*models.Habit, error) {
	habit, err := s.ownedHabit(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		habit.Name = name
	}
	if params.GoalID != nil {
		habit.GoalID = *params.GoalID
	}

	if err := s.store.UpdateHabit(ctx, habit); err != nil {
		slog.Error("Failed to update habit", "habit_id", habitID, "error", err)
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return habit, nil
}

// Delete removes a habit; it disappears from all future aggregations.
func (s *HabitService) Delete(ctx context.Context, ownerID, habitID string) error {
	if _, err := s.ownedHabit(ctx, ownerID, habitID); err != nil {
		return err
	}
	if err := s.store.DeleteHabit(ctx, habitID); err != nil {
		slog.Error("Failed to delete habit", "habit_id", habitID, "error", err)
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	slog.Info("Habit deleted", "habit_id", habitID, "owner_id", ownerID)
	return nil
}

// List returns the user's habits with their goal references resolved.
// Dangling references resolve to the no-goal display state.
func (s *HabitService) List(ctx context.Context, ownerID string) ([]HabitView, error) {
	habits, err := s.store.ListHabits(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	goals, err := s.store.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	views := make([]HabitView, len(habits))
	for i, habit := range habits {
		views[i] = HabitView{
			Habit: habit,
			Goal:  engine.ResolveGoal(habit.GoalID, goals),
		}
	}
	return views, nil
}

// Calendar aggregates the user's habits into a month view.
func (s *HabitService) Calendar(ctx context.Context, ownerID string, year int, month time.Month) (engine.MonthView, error) {
	habits, err := s.store.ListHabits(ctx, ownerID)
	if err != nil {
		return engine.MonthView{}, fmt.Errorf("failed to list habits: %w", err)
	}
	return engine.CalendarMonth(habits, year, month), nil
}

// Trend aggregates the user's habits into the current week's trend.
func (s *HabitService) Trend(ctx context.Context, ownerID string) (engine.WeekTrend, error) {
	habits, err := s.store.ListHabits(ctx, ownerID)
	if err != nil {
		return engine.WeekTrend{}, fmt.Errorf("failed to list habits: %w", err)
	}
	return engine.TrendForWeek(habits, s.now()), nil
}

// Stats aggregates the user's dashboard summary.
func (s *HabitService) Stats(ctx context.Context, ownerID string) (engine.DashboardStats, error) {
	habits, err := s.store.ListHabits(ctx, ownerID)
	if err != nil {
		return engine.DashboardStats{}, fmt.Errorf("failed to list habits: %w", err)
	}
	return engine.Stats(habits, s.now()), nil
}

// ownedHabit loads a habit and enforces ownership.
func (s *HabitService) ownedHabit(ctx context.Context, ownerID, habitID string) (*models.Habit, error) {
	habit, err := s.store.GetHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return habit, nil
}
