package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
)

// findGoal resolves a goal by full id or unique id prefix.
func findGoal(state *model.State, id string) (*model.Goal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("goal id is required")
	}
	var match *model.Goal
	for i := range state.Goals {
		g := &state.Goals[i]
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("goal id %q is ambiguous", id)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("goal %q not found", id)
	}
	return match, nil
}

func findTask(state *model.State, id string) (*model.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("task id is required")
	}
	var match *model.Task
	for i := range state.Tasks {
		task := &state.Tasks[i]
		if task.ID == id {
			return task, nil
		}
		if strings.HasPrefix(task.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("task id %q is ambiguous", id)
			}
			match = task
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task %q not found", id)
	}
	return match, nil
}

func parseDate(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return t, nil
}
