package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/pulse/internal/models"
	"github.com/mmynk/pulse/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "pulse-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func seedUser(t *testing.T, store *SQLiteStore) *models.User {
	t.Helper()
	user := models.NewUser("test@example.com", "Test", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStoreHabits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	t.Run("CreateHabit generates ID and timestamp", func(t *testing.T) {
		habit := &models.Habit{
			OwnerID:        user.ID,
			Name:           "Drink water",
			CompletedDates: []string{"2024-06-12"},
			Streak:         1,
		}

		if err := store.CreateHabit(ctx, habit); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}
		if habit.ID == "" {
			t.Error("Expected habit ID to be generated")
		}
		if habit.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetHabit round-trips completion days sorted", func(t *testing.T) {
		habit := &models.Habit{
			OwnerID:        user.ID,
			Name:           "Read",
			CompletedDates: []string{"2024-06-12", "2024-06-10", "2024-06-11"},
			Streak:         3,
		}
		if err := store.CreateHabit(ctx, habit); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}

		got, err := store.GetHabit(ctx, habit.ID)
		if err != nil {
			t.Fatalf("GetHabit failed: %v", err)
		}

		want := []string{"2024-06-10", "2024-06-11", "2024-06-12"}
		if !reflect.DeepEqual(got.CompletedDates, want) {
			t.Errorf("CompletedDates = %v, want %v", got.CompletedDates, want)
		}
		if got.Streak != 3 {
			t.Errorf("Streak = %d, want 3", got.Streak)
		}
		if got.GoalID != "" {
			t.Errorf("GoalID = %q, want empty", got.GoalID)
		}
	})

	t.Run("UpdateHabit replaces completion set", func(t *testing.T) {
		habit := &models.Habit{
			OwnerID:        user.ID,
			Name:           "Stretch",
			CompletedDates: []string{"2024-06-11", "2024-06-12"},
			Streak:         2,
		}
		if err := store.CreateHabit(ctx, habit); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}

		habit.Name = "Morning stretch"
		habit.CompletedDates = []string{"2024-06-11"}
		habit.Streak = 0
		if err := store.UpdateHabit(ctx, habit); err != nil {
			t.Fatalf("UpdateHabit failed: %v", err)
		}

		got, err := store.GetHabit(ctx, habit.ID)
		if err != nil {
			t.Fatalf("GetHabit failed: %v", err)
		}
		if got.Name != "Morning stretch" {
			t.Errorf("Name = %q, want %q", got.Name, "Morning stretch")
		}
		if !reflect.DeepEqual(got.CompletedDates, []string{"2024-06-11"}) {
			t.Errorf("CompletedDates = %v, want [2024-06-11]", got.CompletedDates)
		}
		if got.Streak != 0 {
			t.Errorf("Streak = %d, want 0", got.Streak)
		}
	})

	t.Run("DeleteHabit removes habit and completions", func(t *testing.T) {
		habit := &models.Habit{
			OwnerID:        user.ID,
			Name:           "Meditate",
			CompletedDates: []string{"2024-06-12"},
		}
		if err := store.CreateHabit(ctx, habit); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}

		if err := store.DeleteHabit(ctx, habit.ID); err != nil {
			t.Fatalf("DeleteHabit failed: %v", err)
		}
		if _, err := store.GetHabit(ctx, habit.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetHabit after delete: err = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing habit is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetHabit(ctx, "nonexistent"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		if err := store.DeleteHabit(ctx, "nonexistent"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStoreGoals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	t.Run("goal round-trip", func(t *testing.T) {
		goal := &models.Goal{
			OwnerID:   user.ID,
			Name:      "Run a 10k",
			StartDate: "2024-06-01",
			EndDate:   "2024-08-31",
		}
		if err := store.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
		if goal.ID == "" {
			t.Error("Expected goal ID to be generated")
		}

		got, err := store.GetGoal(ctx, goal.ID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if got.Name != goal.Name || got.StartDate != goal.StartDate || got.EndDate != goal.EndDate {
			t.Errorf("GetGoal = %+v, want %+v", got, goal)
		}
	})

	t.Run("deleting a goal leaves referencing habits dangling", func(t *testing.T) {
		goal := &models.Goal{OwnerID: user.ID, Name: "Hydration", StartDate: "2024-06-01", EndDate: "2024-06-30"}
		if err := store.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}

		habit := &models.Habit{OwnerID: user.ID, Name: "Drink water", GoalID: goal.ID}
		if err := store.CreateHabit(ctx, habit); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}

		if err := store.DeleteGoal(ctx, goal.ID); err != nil {
			t.Fatalf("DeleteGoal failed: %v", err)
		}

		got, err := store.GetHabit(ctx, habit.ID)
		if err != nil {
			t.Fatalf("GetHabit failed: %v", err)
		}
		if got.GoalID != goal.ID {
			t.Errorf("GoalID = %q, want the dangling %q", got.GoalID, goal.ID)
		}
	})
}

func TestSQLiteStoreListOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	older := &models.Habit{OwnerID: user.ID, Name: "Old", CreatedAt: 100}
	newer := &models.Habit{OwnerID: user.ID, Name: "New", CreatedAt: 200}
	for _, h := range []*models.Habit{older, newer} {
		if err := store.CreateHabit(ctx, h); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}
	}

	habits, err := store.ListHabits(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("len(habits) = %d, want 2", len(habits))
	}
	if habits[0].Name != "New" || habits[1].Name != "Old" {
		t.Errorf("expected newest first, got %s then %s", habits[0].Name, habits[1].Name)
	}

	// Other owners see nothing.
	other, err := store.ListHabits(ctx, "someone-else")
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no habits for other owner, got %d", len(other))
	}
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "bcrypt-hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Errorf("GetUserByEmail = %+v, want ID %s", byEmail, user.ID)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}

	// Duplicate email rejected by the unique constraint.
	dup := models.NewUser("alice@example.com", "Alice Again", "hash")
	if err := store.CreateUser(ctx, dup); err == nil {
		t.Error("expected error for duplicate email")
	}
}
