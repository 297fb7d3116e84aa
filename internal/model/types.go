package model

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type GoalType string

const (
	GoalBinary       GoalType = "binary"
	GoalQuantitative GoalType = "quantitative"
)

func (t GoalType) Valid() bool {
	return t == GoalBinary || t == GoalQuantitative
}

// HistoryEntry is an archived, closed tracking period. Date is the start of
// the period being closed, not its end. Target is a snapshot of the goal's
// target at closing time; quantitative targets may change later without
// rewriting history.
type HistoryEntry struct {
	Date      time.Time `json:"date"`
	Progress  float64   `json:"progress"`
	Target    float64   `json:"target"`
	Completed bool      `json:"completed"`
}

// Goal is a recurring tracked objective. Progress accumulates within the live
// period and is archived into History when the period boundary passes.
type Goal struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Frequency     Frequency      `json:"frequency"`
	Type          GoalType       `json:"type"`
	Target        float64        `json:"target,omitempty"`
	Unit          string         `json:"unit,omitempty"`
	Progress      float64        `json:"progress"`
	Streak        int            `json:"streak"`
	LongestStreak int            `json:"longest_streak"`
	History       []HistoryEntry `json:"history"`
	LastReset     time.Time      `json:"last_reset"`
	StartDate     time.Time      `json:"start_date"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Notes       string     `json:"notes,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TaskCategory struct {
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

type Metric struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

type MetricType struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type Settings struct {
	Currency   string `json:"currency"`
	WeightUnit string `json:"weight_unit"`
}

// State is the full persisted application state. Every mutation re-saves the
// whole thing; there is exactly one writer.
type State struct {
	Goals          []Goal                  `json:"goals"`
	Tasks          []Task                  `json:"tasks"`
	Metrics        []Metric                `json:"metrics"`
	MetricTypes    map[string]MetricType   `json:"metric_types"`
	TaskCategories map[string]TaskCategory `json:"task_categories"`
	Settings       Settings                `json:"settings"`
}

// NewState returns an empty state carrying the built-in metric type registry,
// task categories, and default settings.
func NewState() *State {
	return &State{
		Goals:   []Goal{},
		Tasks:   []Task{},
		Metrics: []Metric{},
		MetricTypes: map[string]MetricType{
			"weight":      {Name: "Weight", Unit: "lbs"},
			"bodyFat":     {Name: "Body Fat", Unit: "%"},
			"sleep":       {Name: "Sleep Hours", Unit: "hrs"},
			"mood":        {Name: "Mood", Unit: "/10"},
			"energy":      {Name: "Energy Level", Unit: "/10"},
			"steps":       {Name: "Steps", Unit: "steps"},
			"waterIntake": {Name: "Water Intake", Unit: "L"},
			"calories":    {Name: "Calories", Unit: "cal"},
		},
		TaskCategories: map[string]TaskCategory{
			"Work":     {Color: "#6366f1", Emoji: "💼"},
			"Personal": {Color: "#10b981", Emoji: "🏠"},
			"Health":   {Color: "#f59e0b", Emoji: "🏥"},
			"Grocery":  {Color: "#ec4899", Emoji: "🛒"},
		},
		Settings: Settings{
			Currency:   "USD",
			WeightUnit: "lbs",
		},
	}
}
