package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fish-tools/fishtok/internal/fingerprint"
	"github.com/fish-tools/fishtok/internal/suggest"
	"github.com/fish-tools/fishtok/lexer"
	"github.com/fish-tools/fishtok/token"
)

func newTokensCmd(configPath *string) *cobra.Command {
	var (
		file            string
		showFingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the token stream for a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			source, err := readSource(file)
			if err != nil {
				return err
			}

			runeSrc := []rune(source)
			tz := lexer.New(runeSrc, cfg.Flags())
			var (
				tok  token.Token
				toks []token.Token
			)
			for tz.Next(&tok) {
				printToken(cmd.OutOrStdout(), tok)
				toks = append(toks, tok)
				if tok.Kind == token.Error && (tok.ErrorKind == token.InvalidRedirect || tok.ErrorKind == token.InvalidPipe) {
					bad := operatorRunAt(runeSrc, tok.Offset)
					if hint := suggest.Redirection(bad); hint != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "  hint: did you mean %q?\n", hint)
					}
				}
			}
			toks = append(toks, tok)

			if showFingerprint {
				digest, err := fingerprint.Stream(toks)
				if err != nil {
					return fmt.Errorf("fingerprinting token stream: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", digest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Path to source file, or - for stdin")
	cmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "Print a content hash of the whole token stream")
	return cmd
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// operatorRunAt slices the offending operator text starting at start,
// since InvalidRedirect/InvalidPipe error tokens are reported without
// advancing the cursor and so carry a zero-length span of their own.
// It runs to the next space, tab, newline, carriage return or ';', or
// to the end of src.
func operatorRunAt(src []rune, start int) string {
	end := start
	for end < len(src) {
		switch src[end] {
		case ' ', '\t', '\n', '\r', ';':
			return string(src[start:end])
		}
		end++
	}
	return string(src[start:end])
}

func printToken(w io.Writer, tok token.Token) {
	if tok.Kind == token.Error {
		fmt.Fprintf(w, "%-16s %-28q @%d+%d  err=%s@%d\n",
			tok.Kind, tok.Text, tok.Offset, tok.Length, tok.ErrorKind, tok.ErrorOffset)
		return
	}
	fmt.Fprintf(w, "%-16s %-28q @%d+%d\n", tok.Kind, tok.Text, tok.Offset, tok.Length)
}
