package engine

import "github.com/mmynk/pulse/internal/models"

// GoalDisplay is the resolved display state of a habit's goal reference.
type GoalDisplay struct {
	// Linked is false when the habit has no goal or the referenced goal no
	// longer exists.
	Linked bool

	GoalID    string
	Name      string
	StartDate string
	EndDate   string
}

// NoGoal is the sentinel for an absent or dangling goal reference.
var NoGoal = GoalDisplay{}

// ResolveGoal looks up goalID in the user's goals. An empty ID or a dangling
// reference (goal deleted while habits still point at it) resolves to NoGoal;
// it is an expected state, never an error.
func ResolveGoal(goalID string, goals []models.Goal) GoalDisplay {
	if goalID == "" {
		return NoGoal
	}
	for i := range goals {
		if goals[i].ID == goalID {
			return GoalDisplay{
				Linked:    true,
				GoalID:    goals[i].ID,
				Name:      goals[i].Name,
				StartDate: goals[i].StartDate,
				EndDate:   goals[i].EndDate,
			}
		}
	}
	return NoGoal
}
