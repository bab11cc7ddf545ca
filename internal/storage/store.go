// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/pulse/internal/models"
)

// ErrNotFound is returned when a habit or goal does not exist. Callers match
// it with errors.Is to distinguish missing records from persistence failures.
var ErrNotFound = errors.New("not found")

// Store defines the interface for habit, goal, and user persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateHabit persists a new habit. ID and CreatedAt are populated by
	// the store when unset.
	CreateHabit(ctx context.Context, habit *models.Habit) error

	// GetHabit retrieves one habit by ID, including its completion days.
	GetHabit(ctx context.Context, habitID string) (*models.Habit, error)

	// ListHabits returns all habits owned by the user, newest first.
	ListHabits(ctx context.Context, ownerID string) ([]models.Habit, error)

	// UpdateHabit writes back a habit's mutable fields: name, goal link,
	// completion days, and cached streak.
	UpdateHabit(ctx context.Context, habit *models.Habit) error

	// DeleteHabit removes a habit and its completion days.
	DeleteHabit(ctx context.Context, habitID string) error

	// CreateGoal persists a new goal. ID and CreatedAt are populated by the
	// store when unset.
	CreateGoal(ctx context.Context, goal *models.Goal) error

	// GetGoal retrieves one goal by ID.
	GetGoal(ctx context.Context, goalID string) (*models.Goal, error)

	// ListGoals returns all goals owned by the user, newest first.
	ListGoals(ctx context.Context, ownerID string) ([]models.Goal, error)

	// UpdateGoal writes back a goal's name and date range.
	UpdateGoal(ctx context.Context, goal *models.Goal) error

	// DeleteGoal removes a goal. Habits referencing it keep their dangling
	// GoalID; resolution degrades to "no goal linked".
	DeleteGoal(ctx context.Context, goalID string) error

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or (nil, nil) if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or (nil, nil) if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
