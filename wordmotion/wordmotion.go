// Package wordmotion implements three independent finite automata used
// by cursor-motion commands (ctrl-left/ctrl-right style word jumps) to
// decide whether the next character extends the "word" under the
// cursor or starts a new one. Each automaton is a strict linear state
// descent: states only ever move forward, never back, until Reset.
package wordmotion

import "unicode"

// Machine is the common shape of all three word-motion automata.
type Machine interface {
	// Consume reports whether c extends the current word. Once it
	// returns false, it keeps returning false until Reset.
	Consume(c rune) bool
	Reset()
}

// isPathComponentCharacter mirrors the lexer's redirect-aware
// classifier but is intentionally self-contained here: word motion is
// a cursor-movement concern, not a lexical one, and duplicating the
// handful of excluded runes keeps this package import-free of lexer.
func isPathComponentCharacter(c rune) bool {
	switch c {
	case 0, ' ', '\n', '|', '\t', ';', '\r', '<', '>', '&', '^':
		return false
	}
	switch c {
	case '/', '=', '{', ',', '}', '\'', '"':
		return false
	}
	return true
}

type punctuationState int

const (
	punctAlwaysOne punctuationState = iota
	punctWhitespace
	punctAlphanumeric
	punctEnd
)

// Punctuation always consumes one character, then a run of whitespace,
// then a run of alphanumerics, then stops.
type Punctuation struct {
	state punctuationState
}

func NewPunctuation() *Punctuation { return &Punctuation{} }

func (m *Punctuation) Reset() { m.state = punctAlwaysOne }

func (m *Punctuation) Consume(c rune) bool {
	for m.state != punctEnd {
		switch m.state {
		case punctAlwaysOne:
			m.state = punctWhitespace
			return true
		case punctWhitespace:
			if unicode.IsSpace(c) {
				return true
			}
			m.state = punctAlphanumeric
		case punctAlphanumeric:
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				return true
			}
			m.state = punctEnd
		}
	}
	return false
}

type pathComponentsState int

const (
	pathInitialPunctuation pathComponentsState = iota
	pathWhitespace
	pathSeparator
	pathSlash
	pathComponentCharacters
	pathEnd
)

// PathComponents treats leading punctuation, a path separator run, and
// a run of slash-then-path-characters as distinct word shapes, so that
// motion over "/usr/local/bin" stops at each component instead of
// jumping the whole path at once.
type PathComponents struct {
	state pathComponentsState
}

func NewPathComponents() *PathComponents { return &PathComponents{} }

func (m *PathComponents) Reset() { m.state = pathInitialPunctuation }

func (m *PathComponents) Consume(c rune) bool {
	for m.state != pathEnd {
		switch m.state {
		case pathInitialPunctuation:
			// Leading punctuation is consumed, and the following
			// characters go to the whitespace state. A path character
			// here means there's no punctuation to skip, so fall through
			// and let the whitespace state examine the same character
			// instead of returning.
			if !isPathComponentCharacter(c) {
				m.state = pathWhitespace
				return true
			}
			m.state = pathWhitespace
		case pathWhitespace:
			if unicode.IsSpace(c) {
				return true
			}
			if c == '/' || isPathComponentCharacter(c) {
				m.state = pathSlash
			} else {
				m.state = pathSeparator
			}
		case pathSeparator:
			if !unicode.IsSpace(c) && !isPathComponentCharacter(c) {
				return true
			}
			m.state = pathEnd
		case pathSlash:
			if c == '/' {
				return true
			}
			m.state = pathComponentCharacters
		case pathComponentCharacters:
			if isPathComponentCharacter(c) {
				return true
			}
			m.state = pathEnd
		}
	}
	return false
}

type whitespaceState int

const (
	wsAlwaysOne whitespaceState = iota
	wsBlank
	wsGraph
	wsEnd
)

// Whitespace always consumes one character, then a run of blanks, then
// a run of printable non-blank characters.
type Whitespace struct {
	state whitespaceState
}

func NewWhitespace() *Whitespace { return &Whitespace{} }

func (m *Whitespace) Reset() { m.state = wsAlwaysOne }

func (m *Whitespace) Consume(c rune) bool {
	for m.state != wsEnd {
		switch m.state {
		case wsAlwaysOne:
			m.state = wsBlank
			return true
		case wsBlank:
			if c == ' ' || c == '\t' {
				return true
			}
			m.state = wsGraph
		case wsGraph:
			if unicode.IsGraphic(c) && !unicode.IsSpace(c) {
				return true
			}
			m.state = wsEnd
		}
	}
	return false
}
