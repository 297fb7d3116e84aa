package tracker

import (
	"fmt"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Audit the stored data for inconsistencies",
	Long:  "Audits stored data against the app's invariants: archived completed flags, negative counters, and references to unknown metric types or task categories. With --fix the safe subset is repaired in place.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := service.RunDoctor(st, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !report.Issues() {
				fmt.Fprintln(out, "No issues found.")
				return nil
			}
			if report.MalformedGoals > 0 {
				fmt.Fprintf(out, "malformed goals: %d\n", report.MalformedGoals)
			}
			if report.NegativeFields > 0 {
				fmt.Fprintf(out, "negative counters: %d\n", report.NegativeFields)
			}
			if report.MiscomputedHistory > 0 {
				fmt.Fprintf(out, "miscomputed history entries: %d\n", report.MiscomputedHistory)
			}
			if report.UnknownMetricTypes > 0 {
				fmt.Fprintf(out, "metrics with unknown types: %d\n", report.UnknownMetricTypes)
			}
			if report.UnknownTaskCategories > 0 {
				fmt.Fprintf(out, "tasks with unknown categories: %d\n", report.UnknownTaskCategories)
			}
			if doctorFix {
				fmt.Fprintf(out, "fixed: %d history entries, %d negative counters\n",
					report.FixedHistoryEntries, report.FixedNegativeFields)
				return nil
			}
			return fmt.Errorf("found issues; run with --fix to repair the safe subset")
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair what can be repaired safely")
}
