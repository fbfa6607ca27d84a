package main

import "github.com/spf13/cobra"

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch, score and report the roster once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScoring(cmd, opts)
		},
	}
}

func runScoring(cmd *cobra.Command, opts *rootOptions) error {
	app, cleanup, err := buildApp(opts)
	if err != nil {
		return err
	}
	defer cleanup()
	_, err = app.Run(cmd.Context())
	return err
}
