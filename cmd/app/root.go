package main

import (
	"fmt"

	"DeceptionIndex/internal/di"
	"DeceptionIndex/pkg/config"
	"DeceptionIndex/pkg/server"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	outputDir  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "deception",
		Short:         "Score pitcher deception from Statcast pitch data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScoring(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config/config.yaml", "config file path (optional)")
	root.PersistentFlags().StringVar(&opts.outputDir, "out", "", "output directory, overrides output.dir")

	root.AddCommand(newRunCmd(opts), newServeCmd(opts), newLookupCmd(opts))
	return root
}

// buildApp loads configuration and wires the application.
func buildApp(opts *rootOptions) (*server.App, func(), error) {
	cfg, err := config.LoadWithEnv(opts.configPath, true)
	if err != nil {
		return nil, nil, fmt.Errorf("config load failed: %w", err)
	}
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}
	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("app initialization failed: %w", err)
	}
	return app, cleanup, nil
}
