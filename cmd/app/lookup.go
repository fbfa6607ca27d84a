package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup FIRST LAST",
		Short:   "Print the provider player id for a pitcher",
		Args:    cobra.ExactArgs(2),
		Example: "  deception lookup Pete Fairbanks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			id, err := app.Lookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%d\n", args[0], args[1], id)
			return nil
		},
	}
}
