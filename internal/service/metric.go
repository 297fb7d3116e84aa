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

type LogMetricInput struct {
	Type       string
	Value      float64
	RecordedAt time.Time
}

func LogMetric(st *store.Store, in LogMetricInput) (model.Metric, error) {
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return model.Metric{}, fmt.Errorf("metric type is required")
	}
	if in.RecordedAt.IsZero() {
		in.RecordedAt = time.Now()
	}

	state, err := st.Load()
	if err != nil {
		return model.Metric{}, err
	}
	if _, ok := state.MetricTypes[in.Type]; !ok {
		return model.Metric{}, fmt.Errorf("unknown metric type %q", in.Type)
	}

	metric := model.Metric{
		ID:         uuid.NewString(),
		Type:       in.Type,
		Value:      in.Value,
		RecordedAt: in.RecordedAt,
	}
	state.Metrics = append(state.Metrics, metric)
	if err := st.Save(state); err != nil {
		return model.Metric{}, err
	}
	return metric, nil
}

type MetricFilter struct {
	Type       string
	WindowDays int // 0 means no window
}

// ListMetrics returns points of one type, newest first, optionally limited to
// a trailing window of days.
func ListMetrics(st *store.Store, f MetricFilter, now time.Time) ([]model.Metric, error) {
	f.Type = strings.TrimSpace(f.Type)
	if f.Type == "" {
		return nil, fmt.Errorf("metric type is required")
	}
	state, err := st.Load()
	if err != nil {
		return nil, err
	}
	if _, ok := state.MetricTypes[f.Type]; !ok {
		return nil, fmt.Errorf("unknown metric type %q", f.Type)
	}

	var cutoff time.Time
	if f.WindowDays > 0 {
		cutoff = now.AddDate(0, 0, -f.WindowDays)
	}

	out := make([]model.Metric, 0)
	for _, m := range state.Metrics {
		if m.Type != f.Type {
			continue
		}
		if f.WindowDays > 0 && m.RecordedAt.Before(cutoff) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

type MetricSummary struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Count  int     `json:"count"`
	Latest float64 `json:"latest"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Delta  float64 `json:"delta"` // latest minus oldest point in the window
}

func SummarizeMetric(st *store.Store, metricType string, windowDays int, now time.Time) (MetricSummary, error) {
	points, err := ListMetrics(st, MetricFilter{Type: metricType, WindowDays: windowDays}, now)
	if err != nil {
		return MetricSummary{}, err
	}
	state, err := st.Load()
	if err != nil {
		return MetricSummary{}, err
	}
	mt := state.MetricTypes[metricType]

	out := MetricSummary{Type: metricType, Name: mt.Name, Unit: mt.Unit, Count: len(points)}
	if len(points) == 0 {
		return out, nil
	}

	out.Latest = points[0].Value
	out.Min = points[0].Value
	out.Max = points[0].Value
	sum := 0.0
	for _, p := range points {
		if p.Value < out.Min {
			out.Min = p.Value
		}
		if p.Value > out.Max {
			out.Max = p.Value
		}
		sum += p.Value
	}
	out.Avg = sum / float64(len(points))
	out.Delta = points[0].Value - points[len(points)-1].Value
	return out, nil
}

func MetricTypes(st *store.Store) (map[string]model.MetricType, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}
	return state.MetricTypes, nil
}
