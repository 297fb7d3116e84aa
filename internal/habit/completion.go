package habit

import "github.com/TonyOlaCodes/tracker/internal/model"

// MeetsTarget applies the completion rule to an arbitrary progress/target
// pair. Binary goals complete at progress >= 1 regardless of target. The same
// rule evaluates the live period and archived entries (with the entry's own
// snapshot).
func MeetsTarget(goalType model.GoalType, progress, target float64) bool {
	if goalType == model.GoalBinary {
		return progress >= 1
	}
	return progress >= target
}

// Completed evaluates the goal's live progress against its current target.
func Completed(g *model.Goal) bool {
	return MeetsTarget(g.Type, g.Progress, g.Target)
}
