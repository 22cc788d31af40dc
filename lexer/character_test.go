package lexer

import "testing"

func TestIsStringCharacter(t *testing.T) {
	cases := []struct {
		c       rune
		isFirst bool
		want    bool
	}{
		{'a', true, true},
		{' ', true, false},
		{'\n', false, false},
		{'|', false, false},
		{';', false, false},
		{'<', false, false},
		{'>', false, false},
		{'&', false, false},
		{'^', true, false},
		{'^', false, true},
		{'#', true, true},
	}
	for _, c := range cases {
		if got := isStringCharacter(c.c, c.isFirst); got != c.want {
			t.Errorf("isStringCharacter(%q, %v) = %v, want %v", c.c, c.isFirst, got, c.want)
		}
	}
}

func TestIsWhitespaceNotNewline(t *testing.T) {
	for _, c := range []rune{' ', '\t', '\r'} {
		if !isWhitespaceNotNewline(c) {
			t.Errorf("isWhitespaceNotNewline(%q) = false, want true", c)
		}
	}
	if isWhitespaceNotNewline('\n') {
		t.Error("isWhitespaceNotNewline('\\n') = true, want false")
	}
}

func TestIsPathComponentCharacter(t *testing.T) {
	for _, c := range []rune{'/', '=', '{', ',', '}', '\'', '"'} {
		if isPathComponentCharacter(c) {
			t.Errorf("isPathComponentCharacter(%q) = true, want false", c)
		}
	}
	if !isPathComponentCharacter('a') {
		t.Error("isPathComponentCharacter('a') = false, want true")
	}
}

func TestIsDigit(t *testing.T) {
	for _, c := range []rune{'0', '5', '9'} {
		if !isDigit(c) {
			t.Errorf("isDigit(%q) = false, want true", c)
		}
	}
	if isDigit('a') {
		t.Error("isDigit('a') = true, want false")
	}
}
