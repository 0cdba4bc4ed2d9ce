package selection

import (
	"math/rand"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// DynamicPhrase assembles a phrase of exactly n words without a catalog
// template. It is the generic fallback for shapes the eligibility filter
// cannot serve; callers may use it for any word count.
func DynamicPhrase(src *wordsource.Source, n int, rng *rand.Rand) string {
	if n < 1 {
		n = 1
	}

	words := make([]string, 0, n)
	switch n {
	case 1:
		words = append(words, src.Pick(wordsource.CategoryNouns, rng))
	case 2:
		words = append(words,
			src.Pick(wordsource.CategoryAdjectives, rng),
			src.Pick(wordsource.CategoryNouns, rng))
	case 3:
		words = append(words,
			"the",
			src.Pick(wordsource.CategoryAdjectives, rng),
			src.Pick(wordsource.CategoryNouns, rng))
	default:
		// Longer shapes alternate descriptors and nouns around a pivot.
		words = append(words,
			src.Pick(wordsource.CategoryNouns, rng),
			"of",
			"the")
		for len(words) < n-1 {
			words = append(words, src.Pick(wordsource.CategoryAdjectives, rng))
		}
		words = append(words, src.Pick(wordsource.CategoryNouns, rng))
	}

	for i, w := range words {
		if i > 0 && (w == "the" || w == "of") {
			continue
		}
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
