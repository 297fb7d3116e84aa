// Package store persists the full application state as one JSON document per
// collection in a sqlite key/value table. Every save is a full-state
// overwrite inside a single transaction; there is exactly one writer.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TonyOlaCodes/tracker/internal/model"
	_ "modernc.org/sqlite"
)

const (
	keyGoals          = "goals"
	keyTasks          = "tasks"
	keyMetrics        = "metrics"
	keyMetricTypes    = "metric_types"
	keyTaskCategories = "task_categories"
	keySettings       = "settings"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted state. Absent keys fall back to the seeded
// defaults from model.NewState, so a fresh database loads as a usable empty
// state rather than an error.
func (s *Store) Load() (*model.State, error) {
	rows, err := s.db.Query(`SELECT key, value FROM app_state`)
	if err != nil {
		return nil, fmt.Errorf("query app state: %w", err)
	}
	defer rows.Close()

	state := model.NewState()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan app state: %w", err)
		}
		var dst any
		switch key {
		case keyGoals:
			dst = &state.Goals
		case keyTasks:
			dst = &state.Tasks
		case keyMetrics:
			dst = &state.Metrics
		case keyMetricTypes:
			dst = &state.MetricTypes
		case keyTaskCategories:
			dst = &state.TaskCategories
		case keySettings:
			dst = &state.Settings
		default:
			continue
		}
		if err := json.Unmarshal([]byte(value), dst); err != nil {
			return nil, fmt.Errorf("decode %s state: %w", key, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate app state: %w", err)
	}
	return state, nil
}

// Save overwrites every collection key with the given state in one
// transaction. Last writer wins by design.
func (s *Store) Save(state *model.State) error {
	documents := []struct {
		key   string
		value any
	}{
		{keyGoals, state.Goals},
		{keyTasks, state.Tasks},
		{keyMetrics, state.Metrics},
		{keyMetricTypes, state.MetricTypes},
		{keyTaskCategories, state.TaskCategories},
		{keySettings, state.Settings},
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	for _, doc := range documents {
		encoded, err := json.Marshal(doc.value)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encode %s state: %w", doc.key, err)
		}
		if _, err := tx.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, doc.key, string(encoded)); err != nil {
			tx.Rollback()
			return fmt.Errorf("write %s state: %w", doc.key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}
