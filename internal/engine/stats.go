package engine

import (
	"time"

	"github.com/mmynk/pulse/internal/datekey"
	"github.com/mmynk/pulse/internal/models"
)

// Total-streak thresholds for reward tiers.
const (
	silverStreak = 1000
	goldStreak   = 5000
)

// Reward tiers derived from the summed streak across all habits.
const (
	TierNone   = "none"
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// goalProgressCap is the total streak that fills a goal's progress bar.
const goalProgressCap = 500

// DashboardStats is the summary block shown at the top of the dashboard.
type DashboardStats struct {
	HabitCount       int
	CompletedToday   int
	TotalStreak      int
	TotalCompletions int

	// BestHabitID/BestHabitStreak identify the habit with the highest
	// cached streak. Empty/zero with no habits.
	BestHabitID     string
	BestHabitStreak int

	// WeeklyRate is the current week's completion rate in [0, 1].
	WeeklyRate float64

	// RewardTier is the medal tier for TotalStreak.
	RewardTier string
}

// Stats aggregates the dashboard summary from the full habit collection.
// Streaks are read from the cached field, which the service layer keeps
// equal to CurrentStreak on every mutation.
func Stats(habits []models.Habit, now time.Time) DashboardStats {
	today := datekey.FromTime(now)
	stats := DashboardStats{HabitCount: len(habits)}

	for i := range habits {
		h := &habits[i]
		set := FromDates(h.CompletedDates)
		if set.Contains(today) {
			stats.CompletedToday++
		}
		stats.TotalStreak += h.Streak
		stats.TotalCompletions += set.Len()
		if h.Streak > stats.BestHabitStreak || stats.BestHabitID == "" {
			stats.BestHabitID = h.ID
			stats.BestHabitStreak = h.Streak
		}
	}

	stats.WeeklyRate = WeeklyCompletionRate(habits, now)
	stats.RewardTier = rewardTier(stats.TotalStreak)
	return stats
}

// GoalProgress maps the summed streak onto a 0-100 progress percentage,
// saturating once the total streak reaches the cap.
func GoalProgress(totalStreak int) float64 {
	if totalStreak <= 0 {
		return 0
	}
	pct := float64(totalStreak) / goalProgressCap * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func rewardTier(totalStreak int) string {
	switch {
	case totalStreak >= goldStreak:
		return TierGold
	case totalStreak >= silverStreak:
		return TierSilver
	case totalStreak >= 1:
		return TierBronze
	default:
		return TierNone
	}
}
