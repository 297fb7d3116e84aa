package tracker

import (
	"fmt"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change app settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			s, err := service.GetSettings(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "currency: %s\nweight-unit: %s\n", s.Currency, s.WeightUnit)
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (currency, weight-unit)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			var err error
			switch args[0] {
			case "currency":
				err = service.SetCurrency(st, args[1])
			case "weight-unit":
				err = service.SetWeightUnit(st, args[1])
			default:
				return fmt.Errorf("unknown setting %q (expected currency or weight-unit)", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}
