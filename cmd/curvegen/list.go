package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/curvegen"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alg := range curvegen.Algorithms() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), alg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
