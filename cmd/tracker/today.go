package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's goals, pending tasks, and latest metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			out := cmd.OutOrStdout()
			now := time.Now()
			fmt.Fprintf(out, "Today, %s\n\n", now.Format("Mon Jan 2 2006"))

			overviews, err := service.GoalOverviews(st)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Goals")
			if len(overviews) == 0 {
				fmt.Fprintln(out, "  none")
			}
			for _, o := range overviews {
				mark := " "
				if o.Completed {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %s (%s) %s, streak %d\n",
					mark, o.Goal.Title, o.Goal.Frequency, formatProgress(o), o.Stats.Streak)
			}

			tasks, err := service.ListTasks(st, service.TaskFilter{Status: "pending", SortBy: "due"})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nTasks")
			if len(tasks) == 0 {
				fmt.Fprintln(out, "  none pending")
			}
			today := now.Format("2006-01-02")
			for _, tk := range tasks {
				flag := ""
				if tk.DueDate != "" && tk.DueDate < today {
					flag = " (overdue)"
				} else if tk.DueDate == today {
					flag = " (due today)"
				}
				fmt.Fprintf(out, "  - %s [%s]%s\n", tk.Title, tk.Category, flag)
			}

			types, err := service.MetricTypes(st)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(types))
			for k := range types {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(out, "\nMetrics")
			logged := false
			for _, k := range keys {
				points, err := service.ListMetrics(st, service.MetricFilter{Type: k}, now)
				if err != nil {
					return err
				}
				if len(points) == 0 {
					continue
				}
				logged = true
				latest := points[0]
				fmt.Fprintf(out, "  %s: %s %s (%s)\n", types[k].Name,
					formatValue(latest.Value), types[k].Unit, latest.RecordedAt.Format("2006-01-02"))
			}
			if !logged {
				fmt.Fprintln(out, "  nothing logged yet")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
