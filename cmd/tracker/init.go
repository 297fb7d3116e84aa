package tracker

import (
	"fmt"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var initSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and default registries",
	Long:  "Creates the database file, runs migrations, and seeds the default metric types and task categories. Safe to run more than once.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			state, err := st.Load()
			if err != nil {
				return err
			}
			// Persisting the defaults makes the first real write cheap and
			// gives doctor something to audit on a fresh install.
			if err := st.Save(state); err != nil {
				return err
			}
			if initSample {
				seeded, err := service.SeedSampleData(st)
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "Seeded sample goals, tasks, and metrics")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Store is not empty, skipping sample data")
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized tracker database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initSample, "sample", false, "Seed sample data into an empty store")
}
