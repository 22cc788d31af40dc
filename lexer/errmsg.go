package lexer

import "github.com/fish-tools/fishtok/token"

// errorMessage maps an ErrorKind to its canonical, localizable
// diagnostic text. Exact wording is not an API guarantee -- callers
// that need a stable machine-readable signal should switch on
// Token.ErrorKind instead of parsing Token.Text.
var errorMessage = map[token.ErrorKind]string{
	token.UnterminatedQuote:    "Unexpected end of string, quotes are not balanced",
	token.UnterminatedSubshell: "parenthesis do not match",
	token.UnterminatedSlice:    "square brackets do not match",
	token.UnterminatedEscape:   "incomplete escape sequence",
	token.InvalidRedirect:      "Invalid input/output redirection",
	token.InvalidPipe:          "Cannot use stdin (fd 0) as pipe output",
}
