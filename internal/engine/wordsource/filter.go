package wordsource

import "strings"

// Quality bounds for individual words. Anything outside this range reads
// badly in a short name.
const (
	minWordLen = 2
	maxWordLen = 14
)

// excludedWords are dropped from filtered pools: profanity-adjacent terms,
// filler, and technical jargon that external lexical APIs tend to return.
var excludedWords = map[string]bool{
	"thing":     true,
	"stuff":     true,
	"item":      true,
	"object":    true,
	"entity":    true,
	"instance":  true,
	"etc":       true,
	"misc":      true,
	"unknown":   true,
	"undefined": true,
	"null":      true,
	"nil":       true,
	"damn":      true,
	"hell":      true,
	"crap":      true,
	"sucks":     true,
	"hate":      true,
	"kill":      true,
	"dead":      true,
	"murder":    true,
}

// excludedSubstrings disqualify a word wherever they appear.
var excludedSubstrings = []string{
	"http",
	"www",
	".com",
	"_",
	"#",
}

// filterList applies the quality filter to an already-normalized list. The
// result is always a subset of the input, order preserved.
func filterList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if acceptable(w) {
			out = append(out, w)
		}
	}
	return out
}

// acceptable reports whether a single normalized word survives filtering.
func acceptable(w string) bool {
	if len(w) < minWordLen || len(w) > maxWordLen {
		return false
	}
	if excludedWords[w] {
		return false
	}
	for _, sub := range excludedSubstrings {
		if strings.Contains(w, sub) {
			return false
		}
	}
	// Reject words with digits or non-alphabetic noise; apostrophes and
	// hyphens are fine in names.
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '\'' || r == '-':
		default:
			return false
		}
	}
	return true
}
