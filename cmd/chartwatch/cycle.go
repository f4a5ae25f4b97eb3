package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/chartwatch/airports"
)

func newCycleCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Print the current and previous AIRAC cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now().UTC()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				at = parsed
			}

			current := airports.CycleAt(at)
			previous, err := airports.PreviousCycle(current)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current cycle:  %s\n", current)
			fmt.Fprintf(out, "Previous cycle: %s\n", previous)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "compute cycles for a date (YYYY-MM-DD) instead of today")
	return cmd
}
