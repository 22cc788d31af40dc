// Command fishtok exposes the tokenizer as a CLI: dumping a token
// stream, extracting the first word of a line, classifying a bare
// redirection operator, watching a file for re-tokenization on save,
// and a raw-mode REPL that exercises interactive "accept unfinished"
// behavior live as you type.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fish-tools/fishtok/internal/config"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "fishtok",
		Short: "Tokenize fish-family shell source",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".fishtok.yaml", "Path to a fishtok config file")

	rootCmd.AddCommand(
		newTokensCmd(&configPath),
		newFirstCmd(),
		newRedirectCmd(),
		newWatchCmd(&configPath),
		newReplCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fishtok: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
