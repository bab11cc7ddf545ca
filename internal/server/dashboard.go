package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mmynk/pulse/internal/engine"
	"github.com/mmynk/pulse/internal/middleware"
	"github.com/mmynk/pulse/internal/service"
)

// DashboardHandler serves the read-only aggregation views: the month
// calendar, the weekly trend, and the summary stats block.
type DashboardHandler struct {
	habits *service.HabitService
}

func NewDashboardHandler(habits *service.HabitService) *DashboardHandler {
	return &DashboardHandler{habits: habits}
}

type dayCellResponse struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

type calendarResponse struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Leading int               `json:"leading"`
	Days    []dayCellResponse `json:"days"`
}

type trendResponse struct {
	WeekStart string `json:"weekStart"`
	Buckets   [7]int `json:"buckets"`
	ScaleMax  int    `json:"scaleMax"`
}

type statsResponse struct {
	HabitCount       int     `json:"habitCount"`
	CompletedToday   int     `json:"completedToday"`
	TotalStreak      int     `json:"totalStreak"`
	TotalCompletions int     `json:"totalCompletions"`
	BestHabitID      string  `json:"bestHabitId,omitempty"`
	BestHabitStreak  int     `json:"bestHabitStreak"`
	WeeklyRate       float64 `json:"weeklyRate"`
	RewardTier       string  `json:"rewardTier"`
	GoalProgress     float64 `json:"goalProgress"`
}

// Calendar serves the month grid. Year and month default to the current
// month when the query parameters are absent.
func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(n)
	}

	view, err := h.habits.Calendar(r.Context(), middleware.GetUserID(r.Context()), year, month)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := calendarResponse{
		Year:    view.Year,
		Month:   int(view.Month),
		Leading: view.Leading,
		Days:    make([]dayCellResponse, len(view.Days)),
	}
	for i, cell := range view.Days {
		resp.Days[i] = dayCellResponse{Day: cell.Day, Count: cell.Count}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.habits.Trend(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trendResponse{
		WeekStart: trend.WeekStart,
		Buckets:   trend.Buckets,
		ScaleMax:  trend.ScaleMax,
	})
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.habits.Stats(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		HabitCount:       stats.HabitCount,
		CompletedToday:   stats.CompletedToday,
		TotalStreak:      stats.TotalStreak,
		TotalCompletions: stats.TotalCompletions,
		BestHabitID:      stats.BestHabitID,
		BestHabitStreak:  stats.BestHabitStreak,
		WeeklyRate:       stats.WeeklyRate,
		RewardTier:       stats.RewardTier,
		GoalProgress:     engine.GoalProgress(stats.TotalStreak),
	})
}
