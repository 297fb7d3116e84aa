package tracker

import (
	"fmt"
	"strconv"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage recurring goals and their streaks",
}

var (
	goalTitle       string
	goalDescription string
	goalFrequency   string
	goalType        string
	goalTarget      float64
	goalUnit        string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recurring goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			g, err := service.CreateGoal(st, service.CreateGoalInput{
				Title:       goalTitle,
				Description: goalDescription,
				Frequency:   model.Frequency(goalFrequency),
				Type:        model.GoalType(goalType),
				Target:      goalTarget,
				Unit:        goalUnit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s goal %q (%s)\n", g.Frequency, g.Title, shortID(g.ID))
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with live progress and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			overviews, err := service.GoalOverviews(st)
			if err != nil {
				return err
			}
			if len(overviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet. Add one with: tracker goal add")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tFREQ\tPROGRESS\tSTREAK\tCONSISTENCY")
			for _, o := range overviews {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%d%%\n",
					shortID(o.Goal.ID), o.Goal.Title, o.Goal.Frequency,
					formatProgress(o), o.Stats.Streak, o.Stats.ConsistencyPct)
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one goal with its archived periods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			o, err := service.GoalOverviewByID(st, args[0])
			if err != nil {
				return err
			}
			g := o.Goal
			fmt.Fprintf(cmd.OutOrStdout(), "Title: %s\n", g.Title)
			if g.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", g.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Frequency: %s\nType: %s\n", g.Frequency, g.Type)
			fmt.Fprintf(cmd.OutOrStdout(), "Progress: %s\n", formatProgress(o))
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d (longest %d)\n", o.Stats.Streak, o.Stats.LongestStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Consistency: %d%%\n", o.Stats.ConsistencyPct)
			fmt.Fprintf(cmd.OutOrStdout(), "Tracking since: %s\n", g.StartDate.Format("2006-01-02"))
			if len(g.History) == 0 {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n#\tPERIOD START\tPROGRESS\tTARGET\tDONE")
			for i, entry := range g.History {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%v\n",
					i, entry.Date.Format("2006-01-02"),
					formatValue(entry.Progress), formatValue(entry.Target), entry.Completed)
			}
			return nil
		})
	},
}

var goalLogCmd = &cobra.Command{
	Use:   "log <id> <value>",
	Short: "Set live progress to an absolute value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}
		return withStore(func(st *store.Store) error {
			g, err := service.LogProgress(st, args[0], value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: progress %s\n", g.Title, formatGoalValue(&g, g.Progress))
			return nil
		})
	},
}

var goalBumpBy float64

var goalBumpCmd = &cobra.Command{
	Use:   "bump <id>",
	Short: "Adjust live progress by a relative amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			g, err := service.AddProgress(st, args[0], goalBumpBy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: progress %s\n", g.Title, formatGoalValue(&g, g.Progress))
			return nil
		})
	},
}

var goalToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a binary goal's completion for the live period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			g, err := service.ToggleGoal(st, args[0])
			if err != nil {
				return err
			}
			if g.Progress >= 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: done for this period\n", g.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not done\n", g.Title)
			}
			return nil
		})
	},
}

var (
	goalCorrectIndex int
	goalCorrectValue float64
)

var goalCorrectCmd = &cobra.Command{
	Use:   "correct <id>",
	Short: "Fix the recorded progress of an archived period",
	Long:  "Overwrites one archived period's progress and recomputes its completed flag against the target that applied back then. Streaks are not replayed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			g, err := service.CorrectGoalHistory(st, args[0], goalCorrectIndex, goalCorrectValue)
			if err != nil {
				return err
			}
			entry := g.History[goalCorrectIndex]
			fmt.Fprintf(cmd.OutOrStdout(), "%s: period %s corrected to %s (completed=%v)\n",
				g.Title, entry.Date.Format("2006-01-02"), formatValue(entry.Progress), entry.Completed)
			return nil
		})
	},
}

var (
	goalEditTitle       string
	goalEditDescription string
	goalEditFrequency   string
	goalEditTarget      float64
	goalEditUnit        string
)

var goalEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit goal fields",
	Long:  "Edits goal fields in place. Changing the frequency starts a fresh period baseline.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateGoalInput{ID: args[0]}
		if cmd.Flags().Changed("title") {
			in.Title = &goalEditTitle
		}
		if cmd.Flags().Changed("description") {
			in.Description = &goalEditDescription
		}
		if cmd.Flags().Changed("frequency") {
			freq := model.Frequency(goalEditFrequency)
			in.Frequency = &freq
		}
		if cmd.Flags().Changed("target") {
			in.Target = &goalEditTarget
		}
		if cmd.Flags().Changed("unit") {
			in.Unit = &goalEditUnit
		}
		return withStore(func(st *store.Store) error {
			g, err := service.UpdateGoal(st, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %q\n", g.Title)
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal and all of its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			g, err := service.GetGoal(st, args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteGoal(st, g.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q and %d archived periods\n", g.Title, len(g.History))
			return nil
		})
	},
}

var goalStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show streak and consistency summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			o, err := service.GoalOverviewByID(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", o.Goal.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d\n", o.Stats.Streak)
			fmt.Fprintf(cmd.OutOrStdout(), "Longest streak: %d\n", o.Stats.LongestStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Consistency: %d%% over %d periods\n", o.Stats.ConsistencyPct, len(o.Goal.History)+1)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalShowCmd, goalLogCmd, goalBumpCmd,
		goalToggleCmd, goalCorrectCmd, goalEditCmd, goalDeleteCmd, goalStatsCmd)

	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalDescription, "description", "", "Goal description")
	goalAddCmd.Flags().StringVar(&goalFrequency, "frequency", "daily", "Period granularity: daily, weekly, monthly")
	goalAddCmd.Flags().StringVar(&goalType, "type", "binary", "Goal type: binary, quantitative")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target per period (quantitative goals)")
	goalAddCmd.Flags().StringVar(&goalUnit, "unit", "", "Unit label, e.g. ml, pages")
	_ = goalAddCmd.MarkFlagRequired("title")

	goalBumpCmd.Flags().Float64Var(&goalBumpBy, "by", 1, "Amount to add (negative to subtract)")

	goalCorrectCmd.Flags().IntVar(&goalCorrectIndex, "index", 0, "History index from goal show")
	goalCorrectCmd.Flags().Float64Var(&goalCorrectValue, "value", 0, "Corrected progress value")
	_ = goalCorrectCmd.MarkFlagRequired("value")

	goalEditCmd.Flags().StringVar(&goalEditTitle, "title", "", "New title")
	goalEditCmd.Flags().StringVar(&goalEditDescription, "description", "", "New description")
	goalEditCmd.Flags().StringVar(&goalEditFrequency, "frequency", "", "New frequency (starts a fresh period)")
	goalEditCmd.Flags().Float64Var(&goalEditTarget, "target", 0, "New target")
	goalEditCmd.Flags().StringVar(&goalEditUnit, "unit", "", "New unit label")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatProgress(o service.GoalOverview) string {
	g := o.Goal
	if g.Type == model.GoalBinary {
		if o.Completed {
			return "done"
		}
		return "not done"
	}
	return fmt.Sprintf("%s/%s %s (%d%%)", formatValue(g.Progress), formatValue(g.Target), g.Unit, o.PercentOfTarget)
}

func formatGoalValue(g *model.Goal, v float64) string {
	if g.Unit == "" {
		return formatValue(v)
	}
	return formatValue(v) + " " + g.Unit
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
