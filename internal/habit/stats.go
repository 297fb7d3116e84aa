package habit

import (
	"math"

	"github.com/TonyOlaCodes/tracker/internal/model"
)

type Stats struct {
	Streak         int `json:"streak"`
	LongestStreak  int `json:"longest_streak"`
	ConsistencyPct int `json:"consistency_pct"`
}

// ComputeStats derives the streak summary and consistency percentage for a
// goal. The live, not-yet-archived period counts as one provisional period:
// it is in the denominator always, and in the numerator when the live
// progress already meets the target. Read-only, safe to call on every render.
func ComputeStats(g *model.Goal) Stats {
	successful := 0
	for i := range g.History {
		if g.History[i].Completed {
			successful++
		}
	}
	if Completed(g) {
		successful++
	}
	total := len(g.History) + 1
	return Stats{
		Streak:         g.Streak,
		LongestStreak:  g.LongestStreak,
		ConsistencyPct: int(math.Round(float64(successful) / float64(total) * 100)),
	}
}
