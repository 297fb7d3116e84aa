package habit

import (
	"fmt"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
)

// ApplyResets closes the live period of every goal whose boundary has passed
// and returns the number of goals mutated. For each closed period the outcome
// is archived with the target that applied at closing time, the streak rolls
// forward (completed extends it, anything else resets it to zero), and live
// progress starts over from now.
//
// Only one boundary crossing is processed per pass: if several periods went by
// since the last check, they collapse into a single archived entry. See
// DESIGN.md for why this single-catch-up policy is kept.
func ApplyResets(goals []model.Goal, now time.Time) int {
	reset := 0
	for i := range goals {
		g := &goals[i]
		if !PeriodElapsed(g.Frequency, g.LastReset, now) {
			continue
		}
		completed := Completed(g)
		if completed {
			g.Streak++
			if g.Streak > g.LongestStreak {
				g.LongestStreak = g.Streak
			}
		} else {
			g.Streak = 0
		}
		g.History = append(g.History, model.HistoryEntry{
			Date:      g.LastReset,
			Progress:  g.Progress,
			Target:    g.Target,
			Completed: completed,
		})
		g.Progress = 0
		g.LastReset = now
		reset++
	}
	return reset
}

// CorrectHistoryEntry overwrites the progress of one archived entry and
// recomputes its completed flag against the entry's frozen target. Streaks
// are deliberately left alone: correction is for record-keeping accuracy, not
// for replaying streak arithmetic.
func CorrectHistoryEntry(g *model.Goal, index int, newProgress float64) error {
	if index < 0 || index >= len(g.History) {
		return fmt.Errorf("history index %d out of range for %d entries", index, len(g.History))
	}
	entry := &g.History[index]
	entry.Progress = newProgress
	entry.Completed = MeetsTarget(g.Type, newProgress, entry.Target)
	return nil
}
