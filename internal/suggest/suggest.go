// Package suggest offers "did you mean" hints for operator text the
// tokenizer rejected as InvalidRedirect or InvalidPipe, so a CLI or
// editor integration can surface something more useful than a bare
// error code.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// knownOperators lists redirection and pipe spellings the tokenizer
// recognizes, plus the "&1"/"&2" fd-duplication targets, used as the
// candidate set for fuzzy-matching whatever malformed text a user typed.
var knownOperators = []string{
	">", ">>", "<", "^", "^^",
	"2>", "2>>", "0<", "9>?",
	"2>&1", "1>&2", "&1", "&2",
	"|", "2>|", "9>|",
	"&",
}

// Redirection returns the known operator spelling closest to bad, or
// "" if bad is empty or there is nothing to rank against.
func Redirection(bad string) string {
	if bad == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(bad, knownOperators)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
