package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xdkit/pkg/datefmt"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tokens",
		Short:   "List date layout tokens",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, token := range datefmt.Tokens() {
				fmt.Fprintln(out, token)
			}
			return nil
		},
	}
}
