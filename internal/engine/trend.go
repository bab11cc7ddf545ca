package engine

import (
	"time"

	"github.com/mmynk/pulse/internal/datekey"
	"github.com/mmynk/pulse/internal/models"
)

// WeekTrend is the completion trend for the week containing "now".
type WeekTrend struct {
	// Buckets counts completions per weekday across all habits,
	// indexed Monday(0) through Sunday(6).
	Buckets [7]int

	// ScaleMax is the largest bucket value, floored at 1 so consumers can
	// divide by it for proportional rendering.
	ScaleMax int

	// WeekStart is the Monday key of the counted week.
	WeekStart string
}

// TrendForWeek aggregates all habits' completions for the current week,
// Monday through Sunday. Completions outside the 7-day window are ignored.
func TrendForWeek(habits []models.Habit, now time.Time) WeekTrend {
	trend := WeekTrend{WeekStart: datekey.WeekStart(now)}

	// The 7 keys of the week, Monday first.
	var week [7]string
	for i := 0; i < 7; i++ {
		week[i] = datekey.AddDays(trend.WeekStart, i)
	}

	for i := range habits {
		set := FromDates(habits[i].CompletedDates)
		for day, key := range week {
			if set.Contains(key) {
				trend.Buckets[day]++
			}
		}
	}

	trend.ScaleMax = 1
	for _, n := range trend.Buckets {
		if n > trend.ScaleMax {
			trend.ScaleMax = n
		}
	}
	return trend
}

// WeeklyCompletionRate is the share of possible completions achieved this
// week: completions in the window divided by 7 slots per habit. Returns 0
// with no habits.
func WeeklyCompletionRate(habits []models.Habit, now time.Time) float64 {
	if len(habits) == 0 {
		return 0
	}
	trend := TrendForWeek(habits, now)
	completed := 0
	for _, n := range trend.Buckets {
		completed += n
	}
	return float64(completed) / float64(7*len(habits))
}
