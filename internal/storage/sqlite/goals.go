package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/storage"
)

// CreateGoal persists a new goal.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt == 0 {
		goal.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO goals (id, owner_id, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		goal.ID, goal.OwnerID, goal.Name, goal.StartDate, goal.EndDate, goal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// GetGoal retrieves a goal by ID.
func (s *SQLiteStore) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	goal := &models.Goal{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, start_date, end_date, created_at FROM goals WHERE id = ?",
		goalID,
	).Scan(&goal.ID, &goal.OwnerID, &goal.Name, &goal.StartDate, &goal.EndDate, &goal.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal %s: %w", goalID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// ListGoals returns all goals owned by the user, newest first.
func (s *SQLiteStore) ListGoals(ctx context.Context, ownerID string) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, start_date, end_date, created_at FROM goals WHERE owner_id = ? ORDER BY created_at DESC, id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.OwnerID, &goal.Name, &goal.StartDate, &goal.EndDate, &goal.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal writes back a goal's name and date range.
func (s *SQLiteStore) UpdateGoal(ctx context.Context, goal *models.Goal) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE goals SET name = ?, start_date = ?, end_date = ? WHERE id = ?",
		goal.Name, goal.StartDate, goal.EndDate, goal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", goal.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteGoal removes a goal. Habits referencing it are left untouched; their
// GoalID dangles and resolves to the no-goal display state.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, goalID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", goalID, storage.ErrNotFound)
	}
	return nil
}
