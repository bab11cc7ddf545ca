package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/pulse/internal/datekey"
	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/storage"
)

// ErrInvalidDateRange rejects goals whose dates are malformed or reversed.
var ErrInvalidDateRange = errors.New("start date must be a valid day on or before end date")

// GoalService implements goal CRUD. Goals are display-only from the engine's
// perspective; habits reference them weakly by ID.
type GoalService struct {
	store storage.Store
}

// NewGoalService creates a GoalService with the given storage backend.
func NewGoalService(store storage.Store) *GoalService {
	return &GoalService{store: store}
}

// Create defines a new goal after validating its name and date range.
func (s *GoalService) Create(ctx context.Context, ownerID, name, startDate, endDate string) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		OwnerID:   ownerID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := s.store.CreateGoal(ctx, goal); err != nil {
		slog.Error("Failed to create goal", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("Goal created", "goal_id", goal.ID, "owner_id", ownerID)
	return goal, nil
}

// List returns all goals owned by the user.
func (s *GoalService) List(ctx context.Context, ownerID string) ([]models.Goal, error) {
	goals, err := s.store.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Update edits a goal's name and date range.
func (s *GoalService) Update(ctx context.Context, ownerID, goalID, name, startDate, endDate string) (*models.Goal, error) {
	goal, err := s.ownedGoal(ctx, ownerID, goalID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	goal.Name = name
	goal.StartDate = startDate
	goal.EndDate = endDate
	if err := s.store.UpdateGoal(ctx, goal); err != nil {
		slog.Error("Failed to update goal", "goal_id", goalID, "error", err)
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// Delete removes a goal. Habits referencing it keep their dangling ID;
// display resolution degrades to "no goal linked" rather than erroring.
func (s *GoalService) Delete(ctx context.Context, ownerID, goalID string) error {
	if _, err := s.ownedGoal(ctx, ownerID, goalID); err != nil {
		return err
	}
	if err := s.store.DeleteGoal(ctx, goalID); err != nil {
		slog.Error("Failed to delete goal", "goal_id", goalID, "error", err)
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	slog.Info("Goal deleted", "goal_id", goalID, "owner_id", ownerID)
	return nil
}

func (s *GoalService) ownedGoal(ctx context.Context, ownerID, goalID string) (*models.Goal, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return goal, nil
}

func validateRange(startDate, endDate string) error {
	if !datekey.Valid(startDate) || !datekey.Valid(endDate) || startDate > endDate {
		return ErrInvalidDateRange
	}
	return nil
}
