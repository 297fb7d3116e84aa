package tracker

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var metricCmd = &cobra.Command{
	Use:   "metric",
	Short: "Log and inspect time-series metrics",
}

var metricLogDate string

var metricLogCmd = &cobra.Command{
	Use:   "log <type> <value>",
	Short: "Record a metric data point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}
		var recordedAt time.Time
		if metricLogDate != "" {
			recordedAt, err = parseDateArg("date", metricLogDate)
			if err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store) error {
			m, err := service.LogMetric(st, service.LogMetricInput{
				Type:       args[0],
				Value:      value,
				RecordedAt: recordedAt,
			})
			if err != nil {
				return err
			}
			types, err := service.MetricTypes(st)
			if err != nil {
				return err
			}
			mt := types[m.Type]
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %s %s\n", mt.Name, formatValue(m.Value), mt.Unit)
			return nil
		})
	},
}

var metricListDays int

var metricListCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List data points of one type, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			points, err := service.ListMetrics(st, service.MetricFilter{
				Type:       args[0],
				WindowDays: metricListDays,
			}, time.Now())
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No data points.")
				return nil
			}
			for _, p := range points {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					p.RecordedAt.Format("2006-01-02 15:04"), formatValue(p.Value))
			}
			return nil
		})
	},
}

var metricSummaryDays int

var metricSummaryCmd = &cobra.Command{
	Use:   "summary <type>",
	Short: "Summarize one metric over a trailing window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			s, err := service.SummarizeMetric(st, args[0], metricSummaryDays, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), last %d days\n", s.Name, s.Unit, metricSummaryDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Points: %d\n", s.Count)
			if s.Count == 0 {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Latest: %s\n", formatValue(s.Latest))
			fmt.Fprintf(cmd.OutOrStdout(), "Min/Max: %s / %s\n", formatValue(s.Min), formatValue(s.Max))
			fmt.Fprintf(cmd.OutOrStdout(), "Average: %.1f\n", s.Avg)
			fmt.Fprintf(cmd.OutOrStdout(), "Change: %+.1f\n", s.Delta)
			return nil
		})
	},
}

var metricTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered metric types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			types, err := service.MetricTypes(st)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(types))
			for k := range types {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%s)\n", k, types[k].Name, types[k].Unit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(metricCmd)
	metricCmd.AddCommand(metricLogCmd, metricListCmd, metricSummaryCmd, metricTypesCmd)

	metricLogCmd.Flags().StringVar(&metricLogDate, "date", "", "Record for a past date, YYYY-MM-DD")
	metricListCmd.Flags().IntVar(&metricListDays, "days", 0, "Only show the trailing N days")
	metricSummaryCmd.Flags().IntVar(&metricSummaryDays, "days", 30, "Window size in days")
}
