package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/ColonyPlanner_Go/internal/bootstrap"
	"github.com/osse101/ColonyPlanner_Go/internal/config"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/planner"
)

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	catalogPath string
	logLevel    string
	json        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Resolve colony production requirements",
		Long:          "planner loads a recipe catalog and computes the production network, worker counts and creators needed to sustain a target output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(opts.logLevel), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.catalogPath, FlagCatalog, "c", envOr(config.EnvCatalogPath, DefaultCatalogPath), "path to the recipe catalog (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, FlagLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.json, FlagJSON, false, "print JSON instead of a table")

	cmd.AddCommand(newResolveCmd(opts))
	cmd.AddCommand(newItemsCmd(opts))
	cmd.AddCommand(newCreatorsCmd(opts))

	return cmd
}

// loadPlanner wires a planner over the catalog named by --catalog
func loadPlanner(ctx context.Context, opts *rootOptions) (planner.Service, error) {
	components, err := bootstrap.InitPlanner(ctx, &config.Config{
		CatalogPath:      opts.catalogPath,
		ClosureCacheSize: DefaultCacheSize,
		SolverTolerance:  DefaultTolerance,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFmt, err)
	}
	return components.Planner, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
