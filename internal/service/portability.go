package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

type ExportData struct {
	ExportedAt     string                        `json:"exported_at"`
	Goals          []model.Goal                  `json:"goals"`
	Tasks          []model.Task                  `json:"tasks"`
	Metrics        []model.Metric                `json:"metrics"`
	MetricTypes    map[string]model.MetricType   `json:"metric_types"`
	TaskCategories map[string]model.TaskCategory `json:"task_categories"`
	Settings       model.Settings                `json:"settings"`
}

// ExportJSON writes the full state as an indented JSON document.
func ExportJSON(st *store.Store, w io.Writer) error {
	state, err := st.Load()
	if err != nil {
		return err
	}
	data := ExportData{
		ExportedAt:     time.Now().Format(time.RFC3339),
		Goals:          state.Goals,
		Tasks:          state.Tasks,
		Metrics:        state.Metrics,
		MetricTypes:    state.MetricTypes,
		TaskCategories: state.TaskCategories,
		Settings:       state.Settings,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ExportCSV writes the archived goal history as a flat ledger, one row per
// closed period.
func ExportCSV(st *store.Store, w io.Writer) error {
	state, err := st.Load()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{"goal_id", "title", "frequency", "type", "period_start", "progress", "target", "unit", "completed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range state.Goals {
		g := &state.Goals[i]
		for _, entry := range g.History {
			row := []string{
				g.ID,
				g.Title,
				string(g.Frequency),
				string(g.Type),
				entry.Date.Format("2006-01-02"),
				strconv.FormatFloat(entry.Progress, 'f', -1, 64),
				strconv.FormatFloat(entry.Target, 'f', -1, 64),
				g.Unit,
				strconv.FormatBool(entry.Completed),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
