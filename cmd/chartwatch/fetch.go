package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/fetch"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		cycle string
		all   bool
		force bool
		pair  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [airport...]",
		Short: "Download airport diagram PDFs from the FAA",
		Long: `Download airport diagram PDFs for one or more airports. By default the
current and previous cycle are both fetched so a comparison pair is
always on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := args
			if all {
				codes = a.registry.Codes()
			}
			if len(codes) == 0 {
				return errors.New("name at least one airport or pass --all")
			}

			if cycle == "" {
				cycle = airports.CurrentCycle()
			}
			cycles := []string{cycle}
			if pair {
				previous, err := airports.PreviousCycle(cycle)
				if err != nil {
					return err
				}
				cycles = append(cycles, previous)
			}

			f := fetch.New(a.dataDir)
			if a.baseURL != "" {
				f.BaseURL = a.baseURL
			}
			f.Force = force

			var failed int
			for _, code := range codes {
				number, err := a.registry.ChartNumber(code)
				if err != nil {
					return err
				}
				for _, c := range cycles {
					path, err := f.Fetch(cmd.Context(), code, number, c)
					if err != nil {
						failed++
						a.log.Warn("fetch failed",
							zap.String("airport", code),
							zap.String("cycle", c),
							zap.Error(err))
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d download(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cycle, "cycle", "", "AIRAC cycle to fetch (defaults to the current cycle)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every registered airport")
	cmd.Flags().BoolVar(&force, "force", false, "re-download files that already exist")
	cmd.Flags().BoolVar(&pair, "pair", true, "also fetch the previous cycle")
	return cmd
}
