package lexer

import "unicode"

// isStringCharacter tests whether c can be part of a bareword string
// token. The redirect sigil '^' is allowed unless it's the first
// character of the token; '#' is handled separately by the driver
// (it only starts a comment when it is the first character of a
// token, so it is never excluded here).
func isStringCharacter(c rune, isFirst bool) bool {
	switch c {
	case 0, ' ', '\n', '|', '\t', ';', '\r', '<', '>', '&':
		return false
	case '^':
		return !isFirst
	default:
		return true
	}
}

// isWhitespaceNotNewline differs from unicode.IsSpace in that it does
// not consider a newline to be whitespace: newlines are meaningful
// token boundaries, not filler.
func isWhitespaceNotNewline(c rune) bool {
	switch c {
	case ' ', '\t', '\r':
		return true
	case '\n':
		return false
	default:
		return unicode.IsSpace(c)
	}
}

// isPathComponentCharacter always classifies c as if it were the first
// character of a token, so '^' (the stderr redirection sigil in that
// position) is never a path component character.
func isPathComponentCharacter(c rune) bool {
	switch c {
	case '/', '=', '{', ',', '}', '\'', '"':
		return false
	default:
		return isStringCharacter(c, true)
	}
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isFastAlpha is a quick check for the common "not magical" case used
// by the string scanner's inner loop; it is not a substitute for
// unicode.IsLetter, only a fast path that lets the scanner skip the
// heavier switch below for ordinary identifier-ish text.
func isFastAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
