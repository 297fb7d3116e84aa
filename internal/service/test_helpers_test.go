package service_test

import (
	"path/filepath"
	"testing"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func loadState(t *testing.T, st *store.Store) *model.State {
	t.Helper()
	state, err := st.Load()
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	return state
}

func saveState(t *testing.T, st *store.Store, state *model.State) {
	t.Helper()
	if err := st.Save(state); err != nil {
		t.Fatalf("save state: %v", err)
	}
}
