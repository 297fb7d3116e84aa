package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

func openTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st, path
}

func TestLoadFreshStoreYieldsDefaults(t *testing.T) {
	t.Parallel()
	st, _ := openTestStore(t)
	defer st.Close()

	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Goals) != 0 || len(state.Tasks) != 0 || len(state.Metrics) != 0 {
		t.Fatalf("fresh store should have empty collections: %+v", state)
	}
	if _, ok := state.MetricTypes["weight"]; !ok {
		t.Fatalf("default metric types missing")
	}
	if _, ok := state.TaskCategories["Work"]; !ok {
		t.Fatalf("default task categories missing")
	}
	if state.Settings.Currency != "USD" || state.Settings.WeightUnit != "lbs" {
		t.Fatalf("default settings missing: %+v", state.Settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	st, path := openTestStore(t)

	now := time.Date(2026, time.June, 1, 7, 30, 0, 0, time.Local)
	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	state.Goals = append(state.Goals, model.Goal{
		ID:        "g1",
		Title:     "Drink water",
		Frequency: model.FrequencyDaily,
		Type:      model.GoalQuantitative,
		Target:    2000,
		Unit:      "ml",
		Progress:  750,
		Streak:    3,
		History: []model.HistoryEntry{
			{Date: now.AddDate(0, 0, -1), Progress: 2100, Target: 2000, Completed: true},
		},
		LastReset: now,
		StartDate: now.AddDate(0, 0, -4),
	})
	state.Tasks = append(state.Tasks, model.Task{
		ID: "t1", Title: "File taxes", Category: "Personal", DueDate: "2026-06-15", CreatedAt: now,
	})
	state.Metrics = append(state.Metrics, model.Metric{
		ID: "m1", Type: "weight", Value: 172.5, RecordedAt: now,
	})
	state.Settings.Currency = "EUR"

	if err := st.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}
	st.Close()

	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(loaded.Goals))
	}
	g := loaded.Goals[0]
	if g.Title != "Drink water" || g.Progress != 750 || g.Streak != 3 || len(g.History) != 1 {
		t.Fatalf("goal did not round-trip: %+v", g)
	}
	if !g.History[0].Completed || g.History[0].Target != 2000 {
		t.Fatalf("history entry did not round-trip: %+v", g.History[0])
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].DueDate != "2026-06-15" {
		t.Fatalf("tasks did not round-trip: %+v", loaded.Tasks)
	}
	if len(loaded.Metrics) != 1 || loaded.Metrics[0].Value != 172.5 {
		t.Fatalf("metrics did not round-trip: %+v", loaded.Metrics)
	}
	if loaded.Settings.Currency != "EUR" {
		t.Fatalf("settings did not round-trip: %+v", loaded.Settings)
	}
}

func TestSaveIsFullOverwrite(t *testing.T) {
	t.Parallel()
	st, _ := openTestStore(t)
	defer st.Close()

	state, _ := st.Load()
	state.Tasks = append(state.Tasks, model.Task{ID: "t1", Title: "one", Category: "Work"})
	if err := st.Save(state); err != nil {
		t.Fatalf("first save: %v", err)
	}

	state.Tasks = nil
	if err := st.Save(state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Tasks) != 0 {
		t.Fatalf("expected overwrite to drop the task, got %+v", loaded.Tasks)
	}
}
