package habit_test

import (
	"testing"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/model"
)

func TestComputeStatsNewGoal(t *testing.T) {
	t.Parallel()
	start := localDate(2026, time.May, 1, 9, 0)
	g := newDailyBinaryGoal(start)

	// Brand new and incomplete: 0 of 1 provisional period.
	if got := habit.ComputeStats(&g); got.ConsistencyPct != 0 {
		t.Fatalf("expected 0%%, got %d%%", got.ConsistencyPct)
	}

	// Marked complete on day one: 1 of 1.
	habit.Toggle(&g)
	if got := habit.ComputeStats(&g); got.ConsistencyPct != 100 {
		t.Fatalf("expected 100%%, got %d%%", got.ConsistencyPct)
	}
}

func TestComputeStatsCountsLiveProvisionalPeriod(t *testing.T) {
	t.Parallel()
	start := localDate(2026, time.May, 1, 9, 0)
	g := newDailyBinaryGoal(start)
	g.History = []model.HistoryEntry{
		{Date: start, Progress: 1, Target: 0, Completed: true},
		{Date: start.AddDate(0, 0, 1), Progress: 0, Target: 0, Completed: false},
	}
	g.Streak = 0
	g.LongestStreak = 1

	// 1 completed of 3 periods (two archived + live incomplete).
	got := habit.ComputeStats(&g)
	if got.ConsistencyPct != 33 {
		t.Fatalf("expected 33%%, got %d%%", got.ConsistencyPct)
	}
	if got.Streak != 0 || got.LongestStreak != 1 {
		t.Fatalf("streaks should pass through verbatim, got %+v", got)
	}

	// Completing the live period moves it to 2 of 3.
	habit.Toggle(&g)
	if got := habit.ComputeStats(&g); got.ConsistencyPct != 67 {
		t.Fatalf("expected 67%%, got %d%%", got.ConsistencyPct)
	}
}

func TestComputeStatsBounds(t *testing.T) {
	t.Parallel()
	start := localDate(2026, time.May, 1, 9, 0)
	goals := []model.Goal{newDailyBinaryGoal(start)}

	now := start
	for day := 0; day < 40; day++ {
		if day%3 != 0 {
			goals[0].Progress = 1
		}
		now = now.AddDate(0, 0, 1)
		habit.ApplyResets(goals, now)
		stats := habit.ComputeStats(&goals[0])
		if stats.ConsistencyPct < 0 || stats.ConsistencyPct > 100 {
			t.Fatalf("day %d: consistency %d%% out of bounds", day, stats.ConsistencyPct)
		}
	}
}
