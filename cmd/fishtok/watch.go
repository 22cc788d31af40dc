package main

import (
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/fish-tools/fishtok/internal/fingerprint"
	"github.com/fish-tools/fishtok/lexer"
	"github.com/fish-tools/fishtok/token"
)

func newWatchCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Retokenize a file every time it changes and print its fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return watchFile(cmd.OutOrStdout(), args[0], cfg.Flags())
		},
	}
	return cmd
}

func watchFile(out io.Writer, path string, flags lexer.Flags) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	tokenizeAndReport(out, path, flags)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				tokenizeAndReport(out, path, flags)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "watch error: %v\n", err)
		}
	}
}

func tokenizeAndReport(out io.Writer, path string, flags lexer.Flags) {
	src, err := readSource(path)
	if err != nil {
		fmt.Fprintf(out, "read error: %v\n", err)
		return
	}

	tz := lexer.New([]rune(src), flags)
	var (
		tok  token.Token
		toks []token.Token
	)
	for tz.Next(&tok) {
		toks = append(toks, tok)
	}
	toks = append(toks, tok)

	digest, err := fingerprint.Stream(toks)
	if err != nil {
		fmt.Fprintf(out, "fingerprint error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "%d tokens, fingerprint %s\n", len(toks), digest)
}
