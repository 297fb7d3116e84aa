package habit_test

import (
	"testing"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/habit"
	"github.com/TonyOlaCodes/tracker/internal/model"
)

func localDate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func TestPeriodElapsedSameInstantNeverElapses(t *testing.T) {
	t.Parallel()
	now := localDate(2026, time.March, 14, 9, 26)
	for _, freq := range []model.Frequency{model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly} {
		if habit.PeriodElapsed(freq, now, now) {
			t.Fatalf("%s period elapsed with zero time passing", freq)
		}
	}
}

func TestPeriodElapsedDaily(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		start time.Time
		now   time.Time
		want  bool
	}{
		{"midnight crossing", localDate(2026, time.January, 1, 23, 59), localDate(2026, time.January, 2, 0, 1), true},
		{"same day", localDate(2026, time.January, 1, 0, 1), localDate(2026, time.January, 1, 23, 59), false},
		{"same date a year apart", localDate(2025, time.January, 1, 12, 0), localDate(2026, time.January, 1, 12, 0), true},
	}
	for _, tc := range cases {
		if got := habit.PeriodElapsed(model.FrequencyDaily, tc.start, tc.now); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPeriodElapsedWeekly(t *testing.T) {
	t.Parallel()
	// Monday and Friday of the same ISO week.
	monday := localDate(2026, time.March, 2, 8, 0)
	friday := localDate(2026, time.March, 6, 20, 0)
	if habit.PeriodElapsed(model.FrequencyWeekly, monday, friday) {
		t.Fatalf("same week reported as elapsed")
	}
	nextMonday := localDate(2026, time.March, 9, 8, 0)
	if !habit.PeriodElapsed(model.FrequencyWeekly, friday, nextMonday) {
		t.Fatalf("next week not reported as elapsed")
	}
}

func TestPeriodElapsedWeeklyAcrossYearTurn(t *testing.T) {
	t.Parallel()
	// Week 52 of one year to week 1 of the next: week numbers alone could
	// collide, the year clause must force elapsed.
	late := localDate(2025, time.December, 26, 10, 0)
	early := localDate(2026, time.January, 2, 10, 0)
	if !habit.PeriodElapsed(model.FrequencyWeekly, late, early) {
		t.Fatalf("year turnover not reported as elapsed")
	}
}

func TestPeriodElapsedMonthly(t *testing.T) {
	t.Parallel()
	if !habit.PeriodElapsed(model.FrequencyMonthly, localDate(2026, time.January, 31, 23, 0), localDate(2026, time.February, 1, 1, 0)) {
		t.Fatalf("Jan 31 to Feb 1 not reported as elapsed")
	}
	if habit.PeriodElapsed(model.FrequencyMonthly, localDate(2026, time.February, 1, 0, 0), localDate(2026, time.February, 28, 23, 59)) {
		t.Fatalf("same month reported as elapsed")
	}
	if !habit.PeriodElapsed(model.FrequencyMonthly, localDate(2025, time.June, 15, 12, 0), localDate(2026, time.June, 15, 12, 0)) {
		t.Fatalf("same month a year apart not reported as elapsed")
	}
}
