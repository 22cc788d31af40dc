package lexer

import "github.com/fish-tools/fishtok/token"

// OFlag mirrors the open(2) flag combinations a redirection kind
// implies, expressed independently of any particular OS package so
// callers can map them onto os.OpenFile themselves.
type OFlag int

const (
	OCreate OFlag = 1 << iota
	OAppend
	OTruncate
	OExclusive
	OReadOnly
	OWriteOnly
)

// RedirectionType classifies a standalone redirection operator string
// (">" , "2>>", "<", "^", "9>?", ...), excluding pipes: a fd-pipe
// string like "2>|" or a bare "|" resolves to (token.Error, 0, false).
// ok is false when s is not a valid redirection or fd-pipe operator at
// all, or when its fd overflowed.
func RedirectionType(s string) (kind token.Kind, fd int, ok bool) {
	src := []rune(s)
	consumed, rk, parsedFD := readRedirectionOrFDPipe(src, 0)
	if consumed != len(src) || rk == redirectAsPipe || parsedFD < 0 {
		return token.Error, 0, false
	}
	return redirectKindToTokenKind(rk), parsedFD, true
}

// FDRedirectedByPipe returns the file descriptor a fd-pipe operator
// string routes into the pipe, or -1 if s is not a fd-pipe operator.
// The bare "|" is short-circuited to stdout (fd 1), matching the
// common case callers hit most often.
func FDRedirectedByPipe(s string) int {
	if s == "|" {
		return 1
	}
	src := []rune(s)
	consumed, rk, fd := readRedirectionOrFDPipe(src, 0)
	if consumed != len(src) || rk != redirectAsPipe || fd < 0 {
		return -1
	}
	return fd
}

// OFlagsForKind maps a redirection token.Kind onto the open(2) flag
// combination it implies. ok is false for kinds with no open(2)
// equivalent (RedirectFD duplicates an existing descriptor instead of
// opening a path, and Pipe and the non-redirection kinds have no
// meaning here).
func OFlagsForKind(kind token.Kind) (flags OFlag, ok bool) {
	switch kind {
	case token.RedirectAppend:
		return OCreate | OAppend | OWriteOnly, true
	case token.RedirectOut:
		return OCreate | OWriteOnly | OTruncate, true
	case token.RedirectNoClob:
		return OCreate | OExclusive | OWriteOnly, true
	case token.RedirectIn:
		return OReadOnly, true
	default:
		return 0, false
	}
}

// TokFirst returns the text of the first String token the tokenizer
// would produce from source, or "" if source doesn't start with one
// (including when the first token is an Error, a redirection, or
// source is empty). Errors are squashed: a malformed tail past the
// first token never surfaces here.
func TokFirst(source string) string {
	tz := NewFromString(source, SquashErrors)
	var tok token.Token
	if tz.Next(&tok) && tok.Kind == token.String {
		return tok.Text
	}
	return ""
}
