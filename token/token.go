// Package token defines the lexical token vocabulary produced by package
// lexer: kinds, error kinds, and the Token value itself.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	String Kind = iota
	Pipe
	End // newline, ';', or EOF
	RedirectOut
	RedirectAppend
	RedirectIn
	RedirectFD
	RedirectNoClob
	Background
	Comment
	Error
)

var kindNames = [...]string{
	String:         "String",
	Pipe:           "Pipe",
	End:            "End",
	RedirectOut:    "RedirectOut",
	RedirectAppend: "RedirectAppend",
	RedirectIn:     "RedirectIn",
	RedirectFD:     "RedirectFD",
	RedirectNoClob: "RedirectNoClob",
	Background:     "Background",
	Comment:        "Comment",
	Error:          "Error",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsRedirect reports whether k is one of the Redirect* kinds.
func (k Kind) IsRedirect() bool {
	switch k {
	case RedirectOut, RedirectAppend, RedirectIn, RedirectFD, RedirectNoClob:
		return true
	default:
		return false
	}
}

// ErrorKind identifies why an Error token was emitted. It is only
// meaningful when the enclosing Token's Kind is Error.
type ErrorKind int

const (
	NoError ErrorKind = iota
	UnterminatedQuote
	UnterminatedSubshell
	UnterminatedSlice
	UnterminatedEscape
	InvalidRedirect
	InvalidPipe
)

var errorKindNames = [...]string{
	NoError:              "NoError",
	UnterminatedQuote:    "UnterminatedQuote",
	UnterminatedSubshell: "UnterminatedSubshell",
	UnterminatedSlice:    "UnterminatedSlice",
	UnterminatedEscape:   "UnterminatedEscape",
	InvalidRedirect:      "InvalidRedirect",
	InvalidPipe:          "InvalidPipe",
}

func (e ErrorKind) String() string {
	if int(e) >= 0 && int(e) < len(errorKindNames) {
		return errorKindNames[e]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(e))
}

// Token is a single lexical unit. Offset and Length are code-point
// (rune) counts from the start of the source buffer, not byte counts.
type Token struct {
	Kind        Kind
	Text        string
	Offset      int
	Length      int
	ErrorKind   ErrorKind // valid only when Kind == Error
	ErrorOffset int       // code-point offset within the token, valid only when Kind == Error
}

// End returns the code-point offset one past the end of the token.
func (t Token) End() int {
	return t.Offset + t.Length
}

func (t Token) String() string {
	if t.Kind == Error {
		return fmt.Sprintf("%s(%s @%d+%d, err=%s@%d)", t.Kind, t.Text, t.Offset, t.Length, t.ErrorKind, t.ErrorOffset)
	}
	return fmt.Sprintf("%s(%q @%d+%d)", t.Kind, t.Text, t.Offset, t.Length)
}
