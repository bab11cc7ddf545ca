package models

// Habit represents a daily habit tracked by a single user.
type Habit struct {
	// ID is the unique identifier for the habit (UUID format).
	ID string

	// OwnerID is the user who owns this habit.
	OwnerID string

	// Name is the display name of the habit (e.g., "Drink 8 glasses of water").
	// Never empty: creation rejects blank names before any state change.
	Name string

	// CompletedDates is the set of local calendar days on which the habit was
	// completed, each a canonical "YYYY-MM-DD" key. Sorted ascending,
	// duplicate-free by construction.
	CompletedDates []string

	// Streak is the cached current streak, kept equal to what the engine
	// computes from CompletedDates. Persisted for display convenience only.
	Streak int

	// GoalID optionally references a Goal by ID. Empty means no goal.
	// The reference is weak: the goal may have been deleted.
	GoalID string

	// CreatedAt is the Unix timestamp when the habit was created. Immutable.
	CreatedAt int64
}
