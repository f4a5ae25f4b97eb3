package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/snapshot"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// app carries the pieces every subcommand needs.
type app struct {
	dataDir      string
	registryPath string
	baseURL      string
	verbose      bool

	log      *zap.Logger
	registry *airports.Registry
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log

	if a.registryPath != "" {
		a.registry, err = airports.LoadRegistry(a.registryPath)
		if err != nil {
			return err
		}
	} else {
		a.registry = airports.DefaultRegistry()
	}
	return nil
}

func (a *app) store() *snapshot.Store {
	return snapshot.NewStore(a.dataDir)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "chartwatch",
		Short:             "Track FAA airport diagram changes across AIRAC cycles",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.dataDir, "data", "data", "directory for PDFs and extraction snapshots")
	root.PersistentFlags().StringVar(&a.registryPath, "registry", "", "TOML airport registry file (defaults to the built-in set)")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "override the FAA diagram base URL")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCycleCmd(a),
		newFetchCmd(a),
		newExtractCmd(a),
		newCompareCmd(a),
		newCheckCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chartwatch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "chartwatch", version)
		},
	}
}
