// Package habit holds the pure tracking core: period boundaries, completion,
// resets, streaks, and consistency. Nothing here touches persistence or the
// clock; callers pass timestamps in.
package habit

import (
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
)

// PeriodElapsed reports whether the period boundary between periodStart and
// now has been crossed for the given frequency. Comparison is local
// wall-clock; an unknown frequency never elapses.
func PeriodElapsed(freq model.Frequency, periodStart, now time.Time) bool {
	switch freq {
	case model.FrequencyDaily:
		return !sameLocalDay(periodStart, now)
	case model.FrequencyWeekly:
		_, startWeek := periodStart.ISOWeek()
		_, nowWeek := now.ISOWeek()
		// Week numbers repeat across year turns (week 1 of two different
		// years), so a differing calendar year always opens a new period.
		return startWeek != nowWeek || periodStart.Year() != now.Year()
	case model.FrequencyMonthly:
		return periodStart.Month() != now.Month() || periodStart.Year() != now.Year()
	}
	return false
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
