package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/google/uuid"
)

type AddTaskInput struct {
	Title    string
	Category string
	Notes    string
	DueDate  string
}

func AddTask(st *store.Store, in AddTaskInput) (model.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return model.Task{}, fmt.Errorf("task title is required")
	}
	in.Category = strings.TrimSpace(in.Category)
	if in.DueDate != "" {
		if _, err := parseDate("due date", in.DueDate); err != nil {
			return model.Task{}, err
		}
	}

	state, err := st.Load()
	if err != nil {
		return model.Task{}, err
	}
	if in.Category == "" {
		in.Category = "Personal"
	}
	if _, ok := state.TaskCategories[in.Category]; !ok {
		return model.Task{}, fmt.Errorf("unknown task category %q", in.Category)
	}

	task := model.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Category:  in.Category,
		Notes:     strings.TrimSpace(in.Notes),
		DueDate:   strings.TrimSpace(in.DueDate),
		CreatedAt: time.Now(),
	}
	state.Tasks = append(state.Tasks, task)
	if err := st.Save(state); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

type TaskFilter struct {
	Status   string // pending, completed, all
	Category string
	SortBy   string // due, created
}

func ListTasks(st *store.Store, f TaskFilter) ([]model.Task, error) {
	if f.Status == "" {
		f.Status = "pending"
	}
	switch f.Status {
	case "pending", "completed", "all":
	default:
		return nil, fmt.Errorf("invalid status %q (use pending, completed, all)", f.Status)
	}
	if f.SortBy == "" {
		f.SortBy = "due"
	}
	switch f.SortBy {
	case "due", "created":
	default:
		return nil, fmt.Errorf("invalid sort %q (use due, created)", f.SortBy)
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(state.Tasks))
	for _, task := range state.Tasks {
		if f.Status == "pending" && task.Completed {
			continue
		}
		if f.Status == "completed" && !task.Completed {
			continue
		}
		if f.Category != "" && task.Category != f.Category {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if f.SortBy == "created" {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		// Due-date sort: undated tasks go last.
		di, dj := out[i].DueDate, out[j].DueDate
		if di == "" && dj == "" {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if di == "" || dj == "" {
			return dj == ""
		}
		return di < dj
	})
	return out, nil
}

// ToggleTask flips completion and stamps or clears the completion time.
func ToggleTask(st *store.Store, id string) (model.Task, error) {
	state, err := st.Load()
	if err != nil {
		return model.Task{}, err
	}
	task, err := findTask(state, id)
	if err != nil {
		return model.Task{}, err
	}
	task.Completed = !task.Completed
	if task.Completed {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := st.Save(state); err != nil {
		return model.Task{}, err
	}
	return *task, nil
}

func DeleteTask(st *store.Store, id string) error {
	state, err := st.Load()
	if err != nil {
		return err
	}
	task, err := findTask(state, id)
	if err != nil {
		return err
	}
	kept := state.Tasks[:0]
	for i := range state.Tasks {
		if state.Tasks[i].ID != task.ID {
			kept = append(kept, state.Tasks[i])
		}
	}
	state.Tasks = kept
	return st.Save(state)
}

func AddTaskCategory(st *store.Store, name, color, emoji string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	state, err := st.Load()
	if err != nil {
		return err
	}
	if _, ok := state.TaskCategories[name]; ok {
		return fmt.Errorf("category %q already exists", name)
	}
	if color == "" {
		color = "#6366f1"
	}
	state.TaskCategories[name] = model.TaskCategory{Color: color, Emoji: emoji}
	return st.Save(state)
}

func ListTaskCategories(st *store.Store) (map[string]model.TaskCategory, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}
	return state.TaskCategories, nil
}
