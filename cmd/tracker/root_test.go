package tracker

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCmd(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
	for _, name := range []string{"goal", "task", "metric", "today", "export", "doctor"} {
		if !strings.Contains(out, name) {
			t.Errorf("help missing %q command", name)
		}
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	for i := 0; i < 2; i++ {
		out := runCmd(t, "--db", path, "init")
		if !strings.Contains(out, "Initialized") {
			t.Fatalf("run %d: unexpected output: %s", i, out)
		}
	}
}

func TestInitSampleSeedsOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")

	out := runCmd(t, "--db", path, "init", "--sample")
	if !strings.Contains(out, "Seeded sample") {
		t.Fatalf("first init --sample should seed, got: %s", out)
	}

	out = runCmd(t, "--db", path, "init", "--sample")
	if !strings.Contains(out, "skipping sample data") {
		t.Fatalf("second init --sample should skip, got: %s", out)
	}

	out = runCmd(t, "--db", path, "goal", "list")
	if !strings.Contains(out, "Drink water") {
		t.Fatalf("expected sample goal in list, got: %s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCmd(t, "version")
	if !strings.Contains(out, "tracker") {
		t.Fatalf("unexpected version output: %s", out)
	}
}

func TestDoctorOnCleanStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	runCmd(t, "--db", path, "init")

	out := runCmd(t, "--db", path, "doctor")
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("unexpected doctor output: %s", out)
	}
}
