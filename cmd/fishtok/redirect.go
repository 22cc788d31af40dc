package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fish-tools/fishtok/internal/suggest"
	"github.com/fish-tools/fishtok/lexer"
)

func newRedirectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redirect",
		Short: "Classify a bare redirection or fd-pipe operator string",
	}
	cmd.AddCommand(newRedirectTypeCmd(), newRedirectPipeFDCmd())
	return cmd
}

func newRedirectTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <operator>",
		Short: "Print the redirection kind and fd for an operator like \"2>>\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, fd, ok := lexer.RedirectionType(args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "not a redirection\n")
				if hint := suggest.Redirection(args[0]); hint != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "did you mean %q?\n", hint)
				}
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s fd=%d\n", kind, fd)
			return nil
		},
	}
}

func newRedirectPipeFDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipe-fd <operator>",
		Short: "Print the fd a fd-pipe operator like \"2>|\" routes into the pipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := lexer.FDRedirectedByPipe(args[0])
			if fd < 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "not a fd-pipe operator\n")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", fd)
			return nil
		},
	}
}
