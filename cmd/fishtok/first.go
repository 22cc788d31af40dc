package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fish-tools/fishtok/lexer"
)

func newFirstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first <line>",
		Short: "Print the first bareword string token of a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), lexer.TokFirst(args[0]))
			return nil
		},
	}
}
