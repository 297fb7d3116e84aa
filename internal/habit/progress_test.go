package habit_test

import (
	"testing"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/model"
)

func TestAdjustProgressClampsAtZero(t *testing.T) {
	t.Parallel()
	g := model.Goal{Type: model.GoalQuantitative, Target: 100, Progress: 30}

	habit.AdjustProgress(&g, -50)
	if g.Progress != 0 {
		t.Fatalf("expected clamp at 0, got %v", g.Progress)
	}
	habit.AdjustProgress(&g, 40)
	if g.Progress != 40 {
		t.Fatalf("expected 40, got %v", g.Progress)
	}
}

func TestAdjustProgressAllowsOverage(t *testing.T) {
	t.Parallel()
	g := model.Goal{Type: model.GoalQuantitative, Target: 100, Progress: 90}
	habit.AdjustProgress(&g, 60)
	if g.Progress != 150 {
		t.Fatalf("overage past target must not clamp, got %v", g.Progress)
	}
}

func TestSetProgress(t *testing.T) {
	t.Parallel()
	g := model.Goal{Type: model.GoalQuantitative, Target: 2000}
	habit.SetProgress(&g, 2500)
	if g.Progress != 2500 {
		t.Fatalf("expected 2500, got %v", g.Progress)
	}
	habit.SetProgress(&g, -10)
	if g.Progress != 0 {
		t.Fatalf("negative set should clamp to 0, got %v", g.Progress)
	}
}

func TestToggleIsAPureFlip(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.Local)
	g := newDailyBinaryGoal(start)

	habit.Toggle(&g)
	if g.Progress != 1 {
		t.Fatalf("toggle on: expected 1, got %v", g.Progress)
	}
	habit.Toggle(&g)
	if g.Progress != 0 {
		t.Fatalf("toggle off: expected 0, got %v", g.Progress)
	}

	// Anything already at or above 1 flips to 0, not 2.
	g.Progress = 3
	habit.Toggle(&g)
	if g.Progress != 0 {
		t.Fatalf("toggle from overage: expected 0, got %v", g.Progress)
	}
}
