package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/report"
	"github.com/tsawler/chartwatch/watch"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		fromCycle string
		maxCycles int
	)

	cmd := &cobra.Command{
		Use:   "history <airport>",
		Short: "Find the most recent cycle where an airport's diagram changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			if fromCycle == "" {
				fromCycle = airports.CurrentCycle()
			}

			checker := watch.NewChecker(watch.StoreSource(a.store()), a.log)
			search, err := checker.FindLastChange(cmd.Context(), code, fromCycle, maxCycles)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !search.Found {
				fmt.Fprintf(out, "No changes found for %s in the last %d cycle(s) (~%d days)\n",
					code, search.CyclesSearched, search.CyclesSearched*28)
				return nil
			}

			fmt.Fprintf(out, "Last change for %s: cycle %s (searched %d cycle(s) back from %s)\n",
				code, search.LastChangeCycle, search.CyclesSearched, search.CurrentCycle)
			report.Render(out, *search.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromCycle, "from", "", "cycle to search back from (defaults to the current cycle)")
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 13, "how many cycles back to search")
	return cmd
}
