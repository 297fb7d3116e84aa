package tracker

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	verbose bool
	logger  = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "tracker manages habits, to-dos, and metrics from your terminal",
	Long:  "tracker is a local-first personal tracking CLI: recurring goals with streaks and consistency, to-do items with categories, and time-series metrics.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger().
				Level(zerolog.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides TRACKER_DB)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")
}
