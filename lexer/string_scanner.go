package lexer

import "github.com/fish-tools/fishtok/token"

// stringMode is the 4-state mode machine the string scanner runs over
// regular text vs. subshell vs. array-subscript vs. a subshell nested
// inside an array subscript (e.g. the "(ech" in '$foo[(ech...').
type stringMode int

const (
	modeRegular stringMode = iota
	modeSubshell
	modeArrayBrackets
	modeArrayBracketsAndSubshell
)

// maxParenOffsets bounds how many nested open-paren offsets the
// string scanner remembers for diagnostics. Parens past this depth
// still count toward the paren balance, they just aren't individually
// recorded -- an unterminated-subshell error left open beyond this
// depth is reported at offset 0 (the start of the source) instead of
// at the innermost paren.
const maxParenOffsets = 96

// scanStringResult carries everything the driver needs to build either
// a String token or an Error token out of a read_string-style scan.
// end is always meaningful, even on error: it is where the cursor
// came to rest while scanning, which the driver needs as current_pos
// when it turns the global error offset into a token-relative one.
type scanStringResult struct {
	end       int // code-point offset the cursor stopped at
	errKind   token.ErrorKind
	errOffset int // absolute code-point offset, valid when errKind != token.NoError
}

// scanString consumes a single bareword token starting at pos (which
// must not be whitespace or a separator) and returns the offset one
// past its end, plus an error outcome when the scan encountered an
// unterminated quote, subshell, or array-slice in strict mode.
//
// acceptUnfinished selects between strict mode (unterminated
// structures are errors) and interactive/unfinished mode (the scan
// ends cleanly at EOF instead).
func scanString(src []rune, pos int, acceptUnfinished bool) scanStringResult {
	start := pos
	isFirst := true

	var parenOffsets [maxParenOffsets]int
	parenCount := 0
	bracketOffset := 0

	mode := modeRegular
	doLoop := true

	for doLoop {
		if pos >= len(src) {
			break
		}
		c := src[pos]

		if !isFastAlpha(c) {
			if c == '\\' {
				errLoc := pos
				pos++
				if pos >= len(src) {
					if !acceptUnfinished {
						return scanStringResult{end: pos, errKind: token.UnterminatedEscape, errOffset: errLoc}
					}
					pos--
					doLoop = false
				}
				pos++
				isFirst = false
				continue
			}

			switch mode {
			case modeRegular:
				switch c {
				case '(':
					parenCount = 1
					parenOffsets[0] = pos
					mode = modeSubshell
				case '[':
					if pos != start {
						mode = modeArrayBrackets
						bracketOffset = pos
					}
				case '\'', '"':
					end := quoteEnd(src, pos)
					if end >= 0 {
						pos = end
					} else {
						errLoc := pos
						pos = len(src)
						if !acceptUnfinished {
							return scanStringResult{end: pos, errKind: token.UnterminatedQuote, errOffset: errLoc}
						}
						doLoop = false
					}
				default:
					if !isStringCharacter(c, isFirst) {
						doLoop = false
					}
				}

			case modeSubshell, modeArrayBracketsAndSubshell:
				switch c {
				case '\'', '"':
					end := quoteEnd(src, pos)
					if end >= 0 {
						pos = end
					} else {
						errLoc := pos
						pos = len(src)
						if !acceptUnfinished {
							return scanStringResult{end: pos, errKind: token.UnterminatedQuote, errOffset: errLoc}
						}
						doLoop = false
					}
				case '(':
					if parenCount < maxParenOffsets {
						parenOffsets[parenCount] = pos
					}
					parenCount++
				case ')':
					parenCount--
					if parenCount == 0 {
						if mode == modeArrayBracketsAndSubshell {
							mode = modeArrayBrackets
						} else {
							mode = modeRegular
						}
					}
				case 0:
					doLoop = false
				default:
					// ignore other characters
				}

			case modeArrayBrackets:
				switch c {
				case '(':
					parenCount = 1
					parenOffsets[0] = pos
					mode = modeArrayBracketsAndSubshell
				case ']':
					mode = modeRegular
				case 0:
					doLoop = false
				default:
					// ignore other characters
				}
			}
		}

		if !doLoop {
			break
		}
		pos++
		isFirst = false
	}

	if !acceptUnfinished && mode != modeRegular {
		switch mode {
		case modeSubshell:
			offset := 0
			if parenCount > 0 && parenCount <= maxParenOffsets {
				offset = parenOffsets[parenCount-1]
			}
			return scanStringResult{end: pos, errKind: token.UnterminatedSubshell, errOffset: offset}
		case modeArrayBrackets, modeArrayBracketsAndSubshell:
			return scanStringResult{end: pos, errKind: token.UnterminatedSlice, errOffset: bracketOffset}
		}
	}

	return scanStringResult{end: pos}
}
