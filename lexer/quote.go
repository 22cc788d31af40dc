package lexer

// quoteEnd scans forward from src[pos], where src[pos] is '\'' or '"',
// for the matching closing quote. A backslash escapes exactly one
// following code point inside the quoted span and never terminates
// it. It returns the index of the closing quote, or -1 if the span
// runs off the end of src unterminated.
func quoteEnd(src []rune, pos int) int {
	quote := src[pos]
	pos++
	for pos < len(src) {
		c := src[pos]
		if c == '\\' {
			pos++
			if pos >= len(src) {
				return -1
			}
			pos++
			continue
		}
		if c == quote {
			return pos
		}
		pos++
	}
	return -1
}
