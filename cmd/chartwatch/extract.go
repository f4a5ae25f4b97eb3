package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/chartwatch"
	"github.com/tsawler/chartwatch/airports"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		airport string
		cycle   string
	)

	cmd := &cobra.Command{
		Use:   "extract <page-dump.json>",
		Short: "Extract a snapshot from a diagram page dump",
		Long: `Run the classifier over a page dump (positioned text spans and line
primitives for one diagram page) and save the extraction snapshot into
the data directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if airport == "" {
				return fmt.Errorf("--airport is required")
			}
			airport = strings.ToUpper(airport)
			if cycle == "" {
				cycle = airports.CurrentCycle()
			}

			snap, err := chartwatch.LoadPage(args[0]).
				Airport(airport).
				Cycle(cycle).
				Snapshot()
			if err != nil {
				return err
			}

			path, err := a.store().Save(snap)
			if err != nil {
				return err
			}

			a.log.Info("extracted snapshot",
				zap.String("airport", airport),
				zap.String("cycle", cycle),
				zap.Int("taxiway_labels", len(snap.TaxiwayLabels)),
				zap.Int("runways", len(snap.Runways)),
				zap.Int("paths", len(snap.Paths)))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&airport, "airport", "", "airport code the page belongs to (required)")
	cmd.Flags().StringVar(&cycle, "cycle", "", "AIRAC cycle of the page (defaults to the current cycle)")
	return cmd
}
