package tracker

import (
	"path/filepath"
	"strings"
	"testing"
)

// Drives a realistic day through the whole command tree against one database.
func TestDailyTrackingFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	runCmd(t, "--db", path, "init")

	out := runCmd(t, "--db", path, "goal", "add",
		"--title", "Drink water",
		"--frequency", "daily",
		"--type", "quantitative",
		"--target", "2000",
		"--unit", "ml",
	)
	if !strings.Contains(out, "Created daily goal") {
		t.Fatalf("goal add: %s", out)
	}

	out = runCmd(t, "--db", path, "goal", "list")
	id := goalIDFromList(t, out, "Drink water")

	runCmd(t, "--db", path, "goal", "log", id, "750")
	out = runCmd(t, "--db", path, "goal", "bump", id, "--by", "500")
	if !strings.Contains(out, "1250 ml") {
		t.Fatalf("bump should land at 1250 ml: %s", out)
	}

	out = runCmd(t, "--db", path, "goal", "stats", id)
	if !strings.Contains(out, "Current streak: 0") {
		t.Fatalf("fresh goal should have no streak: %s", out)
	}

	runCmd(t, "--db", path, "task", "add", "Buy groceries", "--category", "Grocery", "--due", "2026-09-01")
	out = runCmd(t, "--db", path, "task", "list")
	if !strings.Contains(out, "Buy groceries") {
		t.Fatalf("task list: %s", out)
	}
	taskID := firstColumn(t, out, "Buy groceries")
	out = runCmd(t, "--db", path, "task", "done", taskID)
	if !strings.Contains(out, "Done: Buy groceries") {
		t.Fatalf("task done: %s", out)
	}

	runCmd(t, "--db", path, "metric", "log", "sleep", "7.5")
	out = runCmd(t, "--db", path, "metric", "summary", "sleep", "--days", "7")
	if !strings.Contains(out, "Points: 1") {
		t.Fatalf("metric summary: %s", out)
	}

	out = runCmd(t, "--db", path, "today")
	if !strings.Contains(out, "Drink water") || !strings.Contains(out, "Sleep Hours") {
		t.Fatalf("today dashboard: %s", out)
	}

	out = runCmd(t, "--db", path, "export", "--format", "json")
	if !strings.Contains(out, `"goals"`) {
		t.Fatalf("json export: %s", out)
	}
}

func TestBinaryGoalToggleFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	runCmd(t, "--db", path, "init")

	runCmd(t, "--db", path, "goal", "add", "--title", "Meditate", "--frequency", "daily", "--type", "binary")
	out := runCmd(t, "--db", path, "goal", "list")
	id := goalIDFromList(t, out, "Meditate")

	out = runCmd(t, "--db", path, "goal", "toggle", id)
	if !strings.Contains(out, "done for this period") {
		t.Fatalf("first toggle: %s", out)
	}
	out = runCmd(t, "--db", path, "goal", "toggle", id)
	if !strings.Contains(out, "not done") {
		t.Fatalf("second toggle: %s", out)
	}
}

func goalIDFromList(t *testing.T, out, title string) string {
	t.Helper()
	return firstColumn(t, out, title)
}

func firstColumn(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			fields := strings.Split(line, "\t")
			if len(fields) > 0 && fields[0] != "" {
				return fields[0]
			}
		}
	}
	t.Fatalf("no line containing %q in output:\n%s", needle, out)
	return ""
}
