package models

// Goal represents a dated goal a user is working toward.
// Habits may reference a goal by ID for display; the goal does not know
// which habits point at it.
type Goal struct {
	// ID is the unique identifier for the goal (UUID format).
	ID string

	// OwnerID is the user who owns this goal.
	OwnerID string

	// Name is the display name of the goal.
	Name string

	// StartDate and EndDate are "YYYY-MM-DD" keys bounding the goal.
	// Invariant: StartDate <= EndDate (lexicographic order matches
	// chronological order for canonical keys).
	StartDate string
	EndDate   string

	// CreatedAt is the Unix timestamp when the goal was created.
	CreatedAt int64
}
