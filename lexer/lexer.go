// Package lexer implements the streaming lexical scanner for a
// POSIX-adjacent "fish" family shell language: a tokenizer that turns
// a single immutable rune buffer into strings, redirections, pipes,
// backgrounds, statement terminators, and comments, with precise
// code-point offsets and structured error reporting for partially
// formed input.
//
// The tokenizer is single-threaded and synchronous: Next never
// suspends, and a Tokenizer holds no resources beyond a borrow of the
// caller's rune slice. Two Tokenizers over the same immutable slice
// may run concurrently on separate goroutines.
package lexer

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/fish-tools/fishtok/token"
)

// Flags configure a Tokenizer's leniency and output shape.
type Flags uint8

const (
	// AcceptUnfinished tolerates unterminated quotes, escapes, and
	// subshells/slices, treating them as a best-effort token that
	// ends at EOF instead of as an Error. Intended for interactive
	// editing and syntax highlighting over partial input.
	AcceptUnfinished Flags = 1 << iota
	// ShowComments causes comment runs to be emitted as Comment
	// tokens instead of being silently skipped.
	ShowComments
	// SquashErrors suppresses the canonical human-readable message in
	// an Error token's Text field, leaving it empty so the caller can
	// supply its own localized text.
	SquashErrors
	// ShowBlankLines stops the tokenizer from collapsing runs of
	// consecutive statement terminators into a single End token.
	ShowBlankLines
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Tokenizer is the public streaming interface described in the
// package doc. Zero value is not usable; construct with New.
type Tokenizer struct {
	src   []rune
	start int // always 0; kept for symmetry with the offset math below
	pos   int // current cursor, in code points

	flags Flags

	hasNext                  bool
	continueLineAfterComment bool

	lastPos  int
	lastKind token.Kind

	globalErrorOffset int
	lastErrorKind     token.ErrorKind

	logger *slog.Logger
}

// debugLogger builds the package's debug-diagnostics logger. It is
// silent unless FISHTOK_DEBUG_LEXER is set in the environment, in
// which case every emitted token and error is logged to stderr.
func debugLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("FISHTOK_DEBUG_LEXER") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// New creates a Tokenizer over source. source is borrowed for the
// lifetime of the Tokenizer and must not be mutated while in use.
func New(source []rune, flags Flags) *Tokenizer {
	return &Tokenizer{
		src:     source,
		hasNext: true,
		flags:   flags,
		logger:  debugLogger(),
	}
}

// NewFromString is a convenience constructor for callers who have a
// Go string rather than a pre-decoded []rune buffer.
func NewFromString(source string, flags Flags) *Tokenizer {
	return New([]rune(source), flags)
}

func (t *Tokenizer) acceptUnfinished() bool { return t.flags.has(AcceptUnfinished) }

// Next advances the cursor, fills out, and reports whether a token
// was produced. It returns false at end-of-input or once a fatal
// Error token has already been emitted.
func (t *Tokenizer) Next(out *token.Token) bool {
	if !t.hasNext {
		return false
	}

	// Pre-token phase: consume non-newline whitespace, honoring
	// escaped-newline continuation, then consume comment runs.
	for {
		if t.pos+1 < len(t.src) && t.src[t.pos] == '\\' && t.src[t.pos+1] == '\n' {
			t.pos += 2
			t.continueLineAfterComment = true
		} else if t.pos < len(t.src) && isWhitespaceNotNewline(t.src[t.pos]) {
			t.pos++
		} else {
			break
		}
	}

	for t.pos < len(t.src) && t.src[t.pos] == '#' {
		commentStart := t.pos
		for t.pos < len(t.src) && t.src[t.pos] != '\n' {
			t.pos++
		}
		commentLen := t.pos - commentStart

		if t.pos < len(t.src) && t.src[t.pos] == '\n' && t.continueLineAfterComment {
			t.pos++
		}

		if t.flags.has(ShowComments) {
			t.lastPos = commentStart
			t.lastKind = token.Comment
			*out = token.Token{
				Kind:   token.Comment,
				Text:   string(t.src[commentStart : commentStart+commentLen]),
				Offset: commentStart,
				Length: commentLen,
			}
			t.logger.Debug("token", "kind", t.lastKind.String(), "pos", out.Offset, "len", out.Length)
			return true
		}
		for t.pos < len(t.src) && isWhitespaceNotNewline(t.src[t.pos]) {
			t.pos++
		}
	}

	t.continueLineAfterComment = false
	t.lastPos = t.pos

	if t.pos >= len(t.src) {
		t.lastKind = token.End
		t.hasNext = false
		*out = token.Token{Kind: token.End, Offset: t.lastPos}
		return false
	}

	c := t.src[t.pos]
	switch {
	case c == '\r' || c == '\n' || c == ';':
		t.pos++
		if !t.flags.has(ShowBlankLines) {
			for t.pos < len(t.src) {
				cc := t.src[t.pos]
				if cc == '\n' || cc == '\r' || cc == ' ' || cc == '\t' {
					t.pos++
				} else {
					break
				}
			}
		}
		t.lastKind = token.End
		*out = t.finishToken(token.End, string(c))

	case c == '&':
		t.pos++
		t.lastKind = token.Background
		*out = t.finishToken(token.Background, "")

	case c == '|':
		t.pos++
		t.lastKind = token.Pipe
		*out = t.finishToken(token.Pipe, "1")

	case c == '>' || c == '<' || c == '^':
		consumed, kind, fd := readRedirectionOrFDPipe(t.src, t.pos)
		if consumed == 0 || fd < 0 {
			t.emitError(token.InvalidRedirect, t.pos)
			*out = t.buildErrorToken()
			return true
		}
		t.pos += consumed
		tkKind := redirectKindToTokenKind(kind)
		t.lastKind = tkKind
		*out = t.finishToken(tkKind, strconv.Itoa(fd))

	default:
		consumed := 0
		var kind redirectKind
		fd := -1
		if isDigit(c) {
			consumed, kind, fd = readRedirectionOrFDPipe(t.src, t.pos)
		}

		if consumed > 0 {
			if fd < 0 {
				t.emitError(token.InvalidRedirect, t.pos)
				*out = t.buildErrorToken()
				return true
			}
			if kind == redirectAsPipe && fd == 0 {
				t.emitError(token.InvalidPipe, t.pos)
				*out = t.buildErrorToken()
				return true
			}
			t.pos += consumed
			tkKind := redirectKindToTokenKind(kind)
			t.lastKind = tkKind
			*out = t.finishToken(tkKind, strconv.Itoa(fd))
		} else {
			res := scanString(t.src, t.pos, t.acceptUnfinished())
			if res.errKind != token.NoError {
				t.pos = res.end
				t.emitError(res.errKind, res.errOffset)
				*out = t.buildErrorToken()
				return true
			}
			start := t.pos
			t.pos = res.end
			t.lastKind = token.String
			*out = t.finishToken(token.String, string(t.src[start:t.pos]))
		}
	}

	t.logger.Debug("token", "kind", t.lastKind.String(), "pos", out.Offset, "len", out.Length)
	return true
}

// finishToken builds the Token for the non-error, non-comment cases,
// where length is simply how far the cursor moved for this token.
func (t *Tokenizer) finishToken(kind token.Kind, text string) token.Token {
	return token.Token{
		Kind:   kind,
		Text:   text,
		Offset: t.lastPos,
		Length: t.pos - t.lastPos,
	}
}

// emitError records a fatal error: has_next becomes false and every
// subsequent Next call returns false, as Next's doc comment states.
func (t *Tokenizer) emitError(kind token.ErrorKind, where int) {
	t.lastKind = token.Error
	t.lastErrorKind = kind
	t.hasNext = false
	t.globalErrorOffset = where
	t.logger.Debug("lexer error", "kind", kind.String(), "pos", where)
}

func (t *Tokenizer) buildErrorToken() token.Token {
	text := errorMessage[t.lastErrorKind]
	if t.flags.has(SquashErrors) {
		text = ""
	}
	errOffset := 0
	if t.globalErrorOffset >= t.lastPos && t.globalErrorOffset < t.pos {
		errOffset = t.globalErrorOffset - t.lastPos
	}
	length := t.pos - t.lastPos
	if length < 0 {
		length = 0
	}
	return token.Token{
		Kind:        token.Error,
		Text:        text,
		Offset:      t.lastPos,
		Length:      length,
		ErrorKind:   t.lastErrorKind,
		ErrorOffset: errOffset,
	}
}

func redirectKindToTokenKind(k redirectKind) token.Kind {
	switch k {
	case redirectOut:
		return token.RedirectOut
	case redirectAppend:
		return token.RedirectAppend
	case redirectIn:
		return token.RedirectIn
	case redirectFD:
		return token.RedirectFD
	case redirectNoClob:
		return token.RedirectNoClob
	case redirectAsPipe:
		return token.Pipe
	default:
		return token.Error
	}
}
