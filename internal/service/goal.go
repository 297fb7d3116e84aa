package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/google/uuid"
)

type CreateGoalInput struct {
	Title       string
	Description string
	Frequency   model.Frequency
	Type        model.GoalType
	Target      float64
	Unit        string
}

func CreateGoal(st *store.Store, in CreateGoalInput) (model.Goal, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return model.Goal{}, fmt.Errorf("goal title is required")
	}
	if !in.Frequency.Valid() {
		return model.Goal{}, fmt.Errorf("invalid frequency %q (use daily, weekly, monthly)", in.Frequency)
	}
	if !in.Type.Valid() {
		return model.Goal{}, fmt.Errorf("invalid goal type %q (use binary, quantitative)", in.Type)
	}
	if in.Type == model.GoalQuantitative && in.Target <= 0 {
		return model.Goal{}, fmt.Errorf("quantitative goals need a target > 0")
	}

	now := time.Now()
	goal := model.Goal{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Frequency:   in.Frequency,
		Type:        in.Type,
		Unit:        strings.TrimSpace(in.Unit),
		History:     []model.HistoryEntry{},
		LastReset:   now,
		StartDate:   now,
	}
	if in.Type == model.GoalQuantitative {
		goal.Target = in.Target
	}

	state, err := st.Load()
	if err != nil {
		return model.Goal{}, err
	}
	state.Goals = append(state.Goals, goal)
	if err := st.Save(state); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

type UpdateGoalInput struct {
	ID          string
	Title       *string
	Description *string
	Frequency   *model.Frequency
	Target      *float64
	Unit        *string
}

// UpdateGoal edits goal fields in place. Changing the frequency re-baselines
// the live period: progress survives but lastReset jumps to now, so the next
// boundary is measured against the new granularity.
func UpdateGoal(st *store.Store, in UpdateGoalInput) (model.Goal, error) {
	state, err := st.Load()
	if err != nil {
		return model.Goal{}, err
	}
	g, err := findGoal(state, in.ID)
	if err != nil {
		return model.Goal{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return model.Goal{}, fmt.Errorf("goal title cannot be empty")
		}
		g.Title = title
	}
	if in.Description != nil {
		g.Description = strings.TrimSpace(*in.Description)
	}
	if in.Frequency != nil && *in.Frequency != g.Frequency {
		if !in.Frequency.Valid() {
			return model.Goal{}, fmt.Errorf("invalid frequency %q (use daily, weekly, monthly)", *in.Frequency)
		}
		g.Frequency = *in.Frequency
		g.LastReset = time.Now()
	}
	if in.Target != nil {
		if g.Type != model.GoalQuantitative {
			return model.Goal{}, fmt.Errorf("binary goals have no target")
		}
		if *in.Target <= 0 {
			return model.Goal{}, fmt.Errorf("target must be > 0")
		}
		g.Target = *in.Target
	}
	if in.Unit != nil {
		g.Unit = strings.TrimSpace(*in.Unit)
	}

	if err := st.Save(state); err != nil {
		return model.Goal{}, err
	}
	return *g, nil
}

// DeleteGoal removes the goal and discards its history irrecoverably.
func DeleteGoal(st *store.Store, id string) error {
	state, err := st.Load()
	if err != nil {
		return err
	}
	g, err := findGoal(state, id)
	if err != nil {
		return err
	}
	kept := state.Goals[:0]
	for i := range state.Goals {
		if state.Goals[i].ID != g.ID {
			kept = append(kept, state.Goals[i])
		}
	}
	state.Goals = kept
	return st.Save(state)
}

func ListGoals(st *store.Store) ([]model.Goal, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}
	return state.Goals, nil
}

func GetGoal(st *store.Store, id string) (model.Goal, error) {
	state, err := st.Load()
	if err != nil {
		return model.Goal{}, err
	}
	g, err := findGoal(state, id)
	if err != nil {
		return model.Goal{}, err
	}
	return *g, nil
}

// LogProgress sets the live progress to an absolute value.
func LogProgress(st *store.Store, id string, value float64) (model.Goal, error) {
	return mutateGoal(st, id, func(g *model.Goal) error {
		habit.SetProgress(g, value)
		return nil
	})
}

// AddProgress applies a bounded relative adjustment to live progress.
func AddProgress(st *store.Store, id string, delta float64) (model.Goal, error) {
	return mutateGoal(st, id, func(g *model.Goal) error {
		habit.AdjustProgress(g, delta)
		return nil
	})
}

// ToggleGoal flips a binary goal's live completion.
func ToggleGoal(st *store.Store, id string) (model.Goal, error) {
	return mutateGoal(st, id, func(g *model.Goal) error {
		if g.Type != model.GoalBinary {
			return fmt.Errorf("goal %q is quantitative; log a value instead", g.Title)
		}
		habit.Toggle(g)
		return nil
	})
}

// CorrectGoalHistory retroactively fixes one archived period. Streaks are
// not recomputed.
func CorrectGoalHistory(st *store.Store, id string, index int, newProgress float64) (model.Goal, error) {
	return mutateGoal(st, id, func(g *model.Goal) error {
		return habit.CorrectHistoryEntry(g, index, newProgress)
	})
}

func mutateGoal(st *store.Store, id string, mutate func(*model.Goal) error) (model.Goal, error) {
	state, err := st.Load()
	if err != nil {
		return model.Goal{}, err
	}
	g, err := findGoal(state, id)
	if err != nil {
		return model.Goal{}, err
	}
	if err := mutate(g); err != nil {
		return model.Goal{}, err
	}
	if err := st.Save(state); err != nil {
		return model.Goal{}, err
	}
	return *g, nil
}

// GoalOverview is the render-ready view of one goal: live progress against
// target plus derived statistics.
type GoalOverview struct {
	Goal            model.Goal  `json:"goal"`
	Stats           habit.Stats `json:"stats"`
	Completed       bool        `json:"completed"`
	PercentOfTarget int         `json:"percent_of_target"`
}

func GoalOverviews(st *store.Store) ([]GoalOverview, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}
	out := make([]GoalOverview, 0, len(state.Goals))
	for i := range state.Goals {
		out = append(out, overviewOf(&state.Goals[i]))
	}
	return out, nil
}

func GoalOverviewByID(st *store.Store, id string) (GoalOverview, error) {
	state, err := st.Load()
	if err != nil {
		return GoalOverview{}, err
	}
	g, err := findGoal(state, id)
	if err != nil {
		return GoalOverview{}, err
	}
	return overviewOf(g), nil
}

func overviewOf(g *model.Goal) GoalOverview {
	target := g.Target
	if g.Type == model.GoalBinary {
		target = 1
	}
	pct := 0
	if target > 0 {
		pct = int(math.Min(math.Round(g.Progress/target*100), 100))
	}
	return GoalOverview{
		Goal:            *g,
		Stats:           habit.ComputeStats(g),
		Completed:       habit.Completed(g),
		PercentOfTarget: pct,
	}
}
