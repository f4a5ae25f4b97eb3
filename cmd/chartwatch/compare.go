package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/chartwatch"
	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		oldCycle string
		newCycle string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "compare <airport>",
		Short: "Compare an airport's snapshots between two cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			if newCycle == "" {
				newCycle = airports.CurrentCycle()
			}
			if oldCycle == "" {
				previous, err := airports.PreviousCycle(newCycle)
				if err != nil {
					return err
				}
				oldCycle = previous
			}

			store := a.store()
			oldSnap, err := store.Load(code, oldCycle)
			if err != nil {
				return err
			}
			newSnap, err := store.Load(code, newCycle)
			if err != nil {
				return err
			}

			result := chartwatch.Compare(oldSnap, newSnap)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"airport_code": result.AirportCode,
					"old_cycle":    result.OldCycle,
					"new_cycle":    result.NewCycle,
					"summary":      result.Summary,
					"changes":      result.Changes,
				})
			}

			report.Render(cmd.OutOrStdout(), *result)
			return nil
		},
	}

	cmd.Flags().StringVar(&oldCycle, "old", "", "older cycle (defaults to the cycle before --new)")
	cmd.Flags().StringVar(&newCycle, "new", "", "newer cycle (defaults to the current cycle)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the comparison as JSON instead of a report")
	return cmd
}
