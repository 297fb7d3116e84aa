package tracker

import (
	"fmt"
	"io"
	"os"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON or goal history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			w = f
		}
		return withStore(func(st *store.Store) error {
			switch exportFormat {
			case "json":
				return service.ExportJSON(st, w)
			case "csv":
				return service.ExportCSV(st, w)
			default:
				return fmt.Errorf("unknown format %q (expected json or csv)", exportFormat)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json, csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}
