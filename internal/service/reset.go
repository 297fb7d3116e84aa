package service

import (
	"time"

	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

// RunResets closes every elapsed goal period and persists the result iff
// anything changed. It runs once per process, before any data-facing command;
// resets are lazily evaluated, never scheduled.
func RunResets(st *store.Store, now time.Time) (int, error) {
	state, err := st.Load()
	if err != nil {
		return 0, err
	}
	n := habit.ApplyResets(state.Goals, now)
	if n == 0 {
		return 0, nil
	}
	if err := st.Save(state); err != nil {
		return 0, err
	}
	return n, nil
}
