package engine

import (
	"testing"
	"time"

	"github.com/mmynk/pulse/internal/models"
)

func TestCalendarMonth(t *testing.T) {
	tests := []struct {
		name         string
		habits       []models.Habit
		year         int
		month        time.Month
		validateFunc func(t *testing.T, view MonthView)
	}{
		{
			name: "two habits overlapping on one day",
			habits: []models.Habit{
				{Name: "Water", CompletedDates: []string{"2024-06-05"}},
				{Name: "Read", CompletedDates: []string{"2024-06-05", "2024-06-06"}},
			},
			year:  2024,
			month: time.June,
			validateFunc: func(t *testing.T, view MonthView) {
				for _, cell := range view.Days {
					want := 0
					switch cell.Day {
					case 5:
						want = 2
					case 6:
						want = 1
					}
					if cell.Count != want {
						t.Errorf("day %d: count = %d, want %d", cell.Day, cell.Count, want)
					}
				}
			},
		},
		{
			name:   "no habits",
			habits: nil,
			year:   2024,
			month:  time.June,
			validateFunc: func(t *testing.T, view MonthView) {
				for _, cell := range view.Days {
					if cell.Count != 0 {
						t.Errorf("day %d: count = %d, want 0", cell.Day, cell.Count)
					}
				}
			},
		},
		{
			name: "habit without completions contributes zero",
			habits: []models.Habit{
				{Name: "New habit"},
				{Name: "Water", CompletedDates: []string{"2024-06-01"}},
			},
			year:  2024,
			month: time.June,
			validateFunc: func(t *testing.T, view MonthView) {
				if view.Days[0].Count != 1 {
					t.Errorf("day 1: count = %d, want 1", view.Days[0].Count)
				}
			},
		},
		{
			name: "completions outside the month are ignored",
			habits: []models.Habit{
				{Name: "Water", CompletedDates: []string{"2024-05-31", "2024-07-01"}},
			},
			year:  2024,
			month: time.June,
			validateFunc: func(t *testing.T, view MonthView) {
				for _, cell := range view.Days {
					if cell.Count != 0 {
						t.Errorf("day %d: count = %d, want 0", cell.Day, cell.Count)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := CalendarMonth(tt.habits, tt.year, tt.month)
			if len(view.Days) != 30 {
				t.Fatalf("June has %d cells, want 30", len(view.Days))
			}
			tt.validateFunc(t, view)
		})
	}
}

func TestCalendarMonthGridShape(t *testing.T) {
	tests := []struct {
		year        int
		month       time.Month
		wantLeading int
		wantDays    int
	}{
		{2024, time.June, 6, 30},     // June 1 2024 is a Saturday
		{2024, time.September, 0, 30}, // Sept 1 2024 is a Sunday
		{2024, time.July, 1, 31},     // July 1 2024 is a Monday
		{2024, time.February, 4, 29}, // leap February, starts Thursday
	}

	for _, tt := range tests {
		view := CalendarMonth(nil, tt.year, tt.month)
		if view.Leading != tt.wantLeading {
			t.Errorf("%v %d: Leading = %d, want %d", tt.month, tt.year, view.Leading, tt.wantLeading)
		}
		if len(view.Days) != tt.wantDays {
			t.Errorf("%v %d: len(Days) = %d, want %d", tt.month, tt.year, len(view.Days), tt.wantDays)
		}
	}
}

func TestCalendarMonthCountsSumToMonthCompletions(t *testing.T) {
	habits := []models.Habit{
		{Name: "A", CompletedDates: []string{"2024-06-01", "2024-06-02", "2024-06-15", "2024-05-31"}},
		{Name: "B", CompletedDates: []string{"2024-06-02", "2024-06-30"}},
		{Name: "C", CompletedDates: []string{"2024-07-01"}},
	}

	view := CalendarMonth(habits, 2024, time.June)
	sum := 0
	for _, cell := range view.Days {
		sum += cell.Count
	}

	// A has 3 June completions, B has 2, C has none.
	if sum != 5 {
		t.Errorf("sum of day counts = %d, want 5", sum)
	}
}

func TestCompletionCountForDay(t *testing.T) {
	habits := []models.Habit{
		{Name: "A", CompletedDates: []string{"2024-06-05"}},
		{Name: "B", CompletedDates: []string{"2024-06-05", "2024-06-06"}},
	}

	if got := CompletionCountForDay(habits, 2024, time.June, 5); got != 2 {
		t.Errorf("day 5 count = %d, want 2", got)
	}
	if got := CompletionCountForDay(habits, 2024, time.June, 6); got != 1 {
		t.Errorf("day 6 count = %d, want 1", got)
	}
	if got := CompletionCountForDay(habits, 2024, time.June, 7); got != 0 {
		t.Errorf("day 7 count = %d, want 0", got)
	}
}
