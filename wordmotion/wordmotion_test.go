package wordmotion

import "testing"

func consumeAll(t *testing.T, m Machine, input string) int {
	t.Helper()
	consumed := 0
	for _, c := range input {
		if !m.Consume(c) {
			break
		}
		consumed++
	}
	return consumed
}

func TestPunctuationAlwaysConsumesFirstCharacter(t *testing.T) {
	m := NewPunctuation()
	if !m.Consume('!') {
		t.Fatal("Punctuation must always consume the first character")
	}
}

func TestPunctuationStopsAtAlphanumericBoundary(t *testing.T) {
	m := NewPunctuation()
	n := consumeAll(t, m, "!  hello world")
	// "!" (always-one) + "  " (whitespace run) + "hello" (alnum run), stops at the space before "world".
	if n != len("!  hello") {
		t.Errorf("consumed %d characters, want %d", n, len("!  hello"))
	}
}

func TestPunctuationResetRestartsMachine(t *testing.T) {
	m := NewPunctuation()
	consumeAll(t, m, "abc def")
	m.Reset()
	if !m.Consume('x') {
		t.Fatal("Consume after Reset must behave like a fresh machine")
	}
}

func TestWhitespaceStyle(t *testing.T) {
	m := NewWhitespace()
	n := consumeAll(t, m, "x   hello world")
	// "x" (always-one) + "   " (blanks) + "hello" (graph run), stops at the space before "world".
	if n != len("x   hello") {
		t.Errorf("consumed %d characters, want %d", n, len("x   hello"))
	}
}

func TestPathComponentsStopsAtASlashAfterAComponent(t *testing.T) {
	m := NewPathComponents()
	// Starting on an ordinary path character skips the leading-punctuation
	// state without consuming anything there, then the whitespace state
	// routes into the path-characters run; the word ends at the next '/'.
	n := consumeAll(t, m, "ab/cd")
	if n != len("ab") {
		t.Errorf("consumed %d characters, want %d (stop before the slash)", n, len("ab"))
	}
}

func TestPathComponentsLeadingPunctuationThenSeparatorStops(t *testing.T) {
	m := NewPathComponents()
	// '=' is leading punctuation and gets consumed first; ',' is a
	// non-path, non-whitespace separator character that also gets
	// absorbed into that same word, but the word ends at the space.
	n := consumeAll(t, m, "=, next")
	if n != len("=,") {
		t.Errorf("consumed %d characters, want %d", n, len("=,"))
	}
}
