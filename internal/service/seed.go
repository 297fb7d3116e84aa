package service

import (
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/google/uuid"
)

// SeedSampleData populates an empty store with a starter set of goals, tasks,
// and a metric point. Returns false without touching anything if the store
// already holds data.
func SeedSampleData(st *store.Store) (bool, error) {
	state, err := st.Load()
	if err != nil {
		return false, err
	}
	if len(state.Goals) > 0 || len(state.Tasks) > 0 || len(state.Metrics) > 0 {
		return false, nil
	}

	now := time.Now()
	state.Goals = append(state.Goals,
		model.Goal{
			ID:          uuid.NewString(),
			Title:       "Drink water",
			Description: "Stay hydrated through the day",
			Frequency:   model.FrequencyDaily,
			Type:        model.GoalQuantitative,
			Target:      2000,
			Unit:        "ml",
			History:     []model.HistoryEntry{},
			LastReset:   now,
			StartDate:   now,
		},
		model.Goal{
			ID:          uuid.NewString(),
			Title:       "Exercise",
			Description: "At least 30 minutes of movement",
			Frequency:   model.FrequencyDaily,
			Type:        model.GoalBinary,
			History:     []model.HistoryEntry{},
			LastReset:   now,
			StartDate:   now,
		},
		model.Goal{
			ID:          uuid.NewString(),
			Title:       "Read a book chapter",
			Frequency:   model.FrequencyWeekly,
			Type:        model.GoalBinary,
			History:     []model.HistoryEntry{},
			LastReset:   now,
			StartDate:   now,
		},
	)
	state.Tasks = append(state.Tasks,
		model.Task{
			ID:        uuid.NewString(),
			Title:     "Buy groceries",
			Category:  "Grocery",
			DueDate:   now.AddDate(0, 0, 2).Format("2006-01-02"),
			CreatedAt: now,
		},
		model.Task{
			ID:        uuid.NewString(),
			Title:     "Review weekly plan",
			Category:  "Work",
			CreatedAt: now,
		},
	)
	state.Metrics = append(state.Metrics, model.Metric{
		ID:         uuid.NewString(),
		Type:       "sleep",
		Value:      7.5,
		RecordedAt: now,
	})

	if err := st.Save(state); err != nil {
		return false, err
	}
	return true, nil
}
