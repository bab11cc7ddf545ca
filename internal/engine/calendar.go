package engine

import (
	"time"

	"github.com/mmynk/pulse/internal/datekey"
	"github.com/mmynk/pulse/internal/models"
)

// DayCell is one day of a month grid.
type DayCell struct {
	// Day is the day of month, 1-based.
	Day int

	// Count is how many distinct habits were completed on this day.
	Count int
}

// MonthView is the calendar aggregation for one month across all habits.
type MonthView struct {
	Year  int
	Month time.Month

	// Leading is the number of blank cells before day 1 in a Sunday-first
	// grid, i.e. the weekday of the 1st (Sunday=0).
	Leading int

	// Days holds one cell per day of the month, in order.
	Days []DayCell
}

// CompletionCountForDay counts the distinct habits completed on the given
// calendar day. Habits with no completions contribute zero; absence is not
// an error.
func CompletionCountForDay(habits []models.Habit, year int, month time.Month, day int) int {
	key := datekey.FromDate(year, month, day)
	count := 0
	for i := range habits {
		if FromDates(habits[i].CompletedDates).Contains(key) {
			count++
		}
	}
	return count
}

// CalendarMonth aggregates all habits' completion sets into a month view.
func CalendarMonth(habits []models.Habit, year int, month time.Month) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Index each habit's set once rather than per day.
	sets := make([]CompletionSet, len(habits))
	for i := range habits {
		sets[i] = FromDates(habits[i].CompletedDates)
	}

	view := MonthView{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]DayCell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		key := datekey.FromDate(year, month, day)
		count := 0
		for i := range sets {
			if sets[i].Contains(key) {
				count++
			}
		}
		view.Days = append(view.Days, DayCell{Day: day, Count: count})
	}
	return view
}
