package service

import (
	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

type DoctorReport struct {
	MalformedGoals       int `json:"malformed_goals"`
	NegativeFields       int `json:"negative_fields"`
	MiscomputedHistory   int `json:"miscomputed_history"`
	UnknownMetricTypes   int `json:"unknown_metric_types"`
	UnknownTaskCategories int `json:"unknown_task_categories"`
	FixedHistoryEntries  int `json:"fixed_history_entries,omitempty"`
	FixedNegativeFields  int `json:"fixed_negative_fields,omitempty"`
}

// RunDoctor audits the persisted state against the model invariants. With fix
// set it applies the safe subset: recomputing archived completed flags from
// the completion rule and clamping negative counters. Malformed enums and
// dangling references are reported, never guessed at.
func RunDoctor(st *store.Store, fix bool) (DoctorReport, error) {
	state, err := st.Load()
	if err != nil {
		return DoctorReport{}, err
	}

	var report DoctorReport
	dirty := false

	for i := range state.Goals {
		g := &state.Goals[i]
		if !g.Frequency.Valid() || !g.Type.Valid() {
			report.MalformedGoals++
		}
		if g.Progress < 0 || g.Streak < 0 || g.LongestStreak < 0 {
			report.NegativeFields++
			if fix {
				if g.Progress < 0 {
					g.Progress = 0
				}
				if g.Streak < 0 {
					g.Streak = 0
				}
				if g.LongestStreak < 0 {
					g.LongestStreak = 0
				}
				report.FixedNegativeFields++
				dirty = true
			}
		}
		for j := range g.History {
			entry := &g.History[j]
			want := habit.MeetsTarget(g.Type, entry.Progress, entry.Target)
			if entry.Completed != want {
				report.MiscomputedHistory++
				if fix {
					entry.Completed = want
					report.FixedHistoryEntries++
					dirty = true
				}
			}
		}
	}

	for _, m := range state.Metrics {
		if _, ok := state.MetricTypes[m.Type]; !ok {
			report.UnknownMetricTypes++
		}
	}
	for _, task := range state.Tasks {
		if _, ok := state.TaskCategories[task.Category]; !ok {
			report.UnknownTaskCategories++
		}
	}

	if dirty {
		if err := st.Save(state); err != nil {
			return report, err
		}
	}
	return report, nil
}

// Issues reports whether the audit found anything actionable left in place.
func (r DoctorReport) Issues() bool {
	return r.MalformedGoals > 0 ||
		r.NegativeFields > r.FixedNegativeFields ||
		r.MiscomputedHistory > r.FixedHistoryEntries ||
		r.UnknownMetricTypes > 0 ||
		r.UnknownTaskCategories > 0
}
