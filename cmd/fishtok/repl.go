package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fish-tools/fishtok/lexer"
	"github.com/fish-tools/fishtok/token"
)

// newReplCmd exercises AcceptUnfinished interactively: every keystroke
// retokenizes the whole line so far and shows what the tokenizer
// thinks of a possibly-still-open quote, subshell, or escape, the way
// a syntax-highlighting editor would.
func newReplCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively tokenize a line as you type it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Flags()|lexer.AcceptUnfinished)
		},
	}
}

func runRepl(in io.Reader, out io.Writer, flags lexer.Flags) error {
	stdin, ok := in.(*os.File)
	if !ok {
		stdin = os.Stdin
	}

	oldState, err := term.MakeRaw(int(stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(int(stdin.Fd()), oldState)

	var line []rune
	fmt.Fprint(out, "> ")

	buf := make([]byte, 1)
	for {
		n, err := stdin.Read(buf)
		if n == 0 || err != nil {
			return nil
		}
		c := rune(buf[0])

		switch c {
		case '\r', '\n':
			fmt.Fprint(out, "\r\n")
			return nil
		case 3: // Ctrl-C
			fmt.Fprint(out, "\r\n")
			return nil
		case 127, 8: // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		default:
			line = append(line, c)
		}

		renderLine(out, line, flags)
	}
}

func renderLine(out io.Writer, line []rune, flags lexer.Flags) {
	fmt.Fprint(out, "\r\x1b[2K> ", string(line), "  [")

	tz := lexer.New(line, flags)
	var tok token.Token
	first := true
	for tz.Next(&tok) {
		if !first {
			fmt.Fprint(out, " ")
		}
		first = false
		fmt.Fprintf(out, "%s", tok.Kind)
	}
	fmt.Fprint(out, "]")
}
