package habit

import (
	"math"

	"github.com/TonyOlaCodes/tracker/internal/model"
)

// AdjustProgress moves live progress by delta, clamped at zero from below.
// There is no upper clamp; overage past a quantitative target stays visible.
func AdjustProgress(g *model.Goal, delta float64) {
	g.Progress = math.Max(0, g.Progress+delta)
}

// SetProgress replaces live progress with max(0, value).
func SetProgress(g *model.Goal, value float64) {
	g.Progress = math.Max(0, value)
}

// Toggle flips a binary goal between done and not done for the live period.
// It is a pure flip, not an increment, and never touches streaks; completion
// is only evaluated at reset time or on demand.
func Toggle(g *model.Goal) {
	if g.Progress >= 1 {
		g.Progress = 0
	} else {
		g.Progress = 1
	}
}
