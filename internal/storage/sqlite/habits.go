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

// CreateHabit persists a new habit and its completion days.
func (s *SQLiteStore) CreateHabit(ctx context.Context, habit *models.Habit) error {
	// Generate IDs if not set
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.CreatedAt == 0 {
		habit.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var goalID interface{}
	if habit.GoalID != "" {
		goalID = habit.GoalID
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO habits (id, owner_id, name, streak, goal_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		habit.ID, habit.OwnerID, habit.Name, habit.Streak, goalID, habit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	for _, day := range habit.CompletedDates {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO habit_completions (habit_id, day) VALUES (?, ?)",
			habit.ID, day,
		)
		if err != nil {
			return fmt.Errorf("failed to insert completion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetHabit retrieves a habit by ID, including its completion days.
func (s *SQLiteStore) GetHabit(ctx context.Context, habitID string) (*models.Habit, error) {
	habit := &models.Habit{}
	var goalID sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, streak, goal_id, created_at FROM habits WHERE id = ?",
		habitID,
	).Scan(&habit.ID, &habit.OwnerID, &habit.Name, &habit.Streak, &goalID, &habit.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("habit %s: %w", habitID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	if goalID.Valid {
		habit.GoalID = goalID.String
	}

	habit.CompletedDates, err = s.completionDays(ctx, habit.ID)
	if err != nil {
		return nil, err
	}

	return habit, nil
}

// ListHabits returns all habits owned by the user, newest first.
func (s *SQLiteStore) ListHabits(ctx context.Context, ownerID string) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, streak, goal_id, created_at FROM habits WHERE owner_id = ? ORDER BY created_at DESC, id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var habit models.Habit
		var goalID sql.NullString
		if err := rows.Scan(&habit.ID, &habit.OwnerID, &habit.Name, &habit.Streak, &goalID, &habit.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if goalID.Valid {
			habit.GoalID = goalID.String
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	for i := range habits {
		habits[i].CompletedDates, err = s.completionDays(ctx, habits[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return habits, nil
}

// UpdateHabit rewrites the habit's mutable fields and replaces its
// completion days with the given set.
func (s *SQLiteStore) UpdateHabit(ctx context.Context, habit *models.Habit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var goalID interface{}
	if habit.GoalID != "" {
		goalID = habit.GoalID
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE habits SET name = ?, streak = ?, goal_id = ? WHERE id = ?",
		habit.Name, habit.Streak, goalID, habit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM habit_completions WHERE habit_id = ?", habit.ID); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	for _, day := range habit.CompletedDates {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO habit_completions (habit_id, day) VALUES (?, ?)",
			habit.ID, day,
		); err != nil {
			return fmt.Errorf("failed to insert completion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteHabit removes a habit; its completions cascade.
func (s *SQLiteStore) DeleteHabit(ctx context.Context, habitID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", habitID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", habitID, storage.ErrNotFound)
	}
	return nil
}

// completionDays loads a habit's completion keys sorted ascending.
func (s *SQLiteStore) completionDays(ctx context.Context, habitID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT day FROM habit_completions WHERE habit_id = ? ORDER BY day",
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get completions: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}
	return days, nil
}
