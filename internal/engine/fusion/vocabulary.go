package fusion

import (
	"math/rand"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// Strategy names how the two genre vocabularies are combined.
type Strategy string

const (
	StrategyMerge      Strategy = "merge"      // equal parts of both genres
	StrategyAlternate  Strategy = "alternate"  // interleaved, order preserved
	StrategyDominant   Strategy = "dominant"   // primary genre favored
	StrategySynthesize Strategy = "synthesize" // hybrid and blend terms lead
)

// Strategy selection thresholds over compatibility score and creativity.
const (
	synthesizeCompatibility = 0.75
	synthesizeCreativity    = 0.6
	dominantCompatibility   = 0.65
	dominantShare           = 3 // primary terms per secondary term
)

// Vocabulary is the fused word pool one fusion run draws from.
type Vocabulary struct {
	Primary   []string // primary-genre terms
	Secondary []string // secondary-genre terms
	Pool      []string // strategy-combined working pool
	Hybrid    []string
	Blends    []string
	Synergies []string
	Strategy  Strategy
}

// chooseStrategy maps compatibility and creativity onto a combination
// strategy. Weak pairs stay primary-dominant so the result does not sound
// forced; strong pairs with a creative caller get full synthesis.
func chooseStrategy(compatibility, creativity float64) Strategy {
	switch {
	case compatibility >= synthesizeCompatibility && creativity >= synthesizeCreativity:
		return StrategySynthesize
	case compatibility < dominantCompatibility:
		return StrategyDominant
	case creativity >= synthesizeCreativity:
		return StrategyAlternate
	default:
		return StrategyMerge
	}
}

// buildVocabulary derives the fused pool for a request. Genre terms come
// from the word source first and the built-in per-genre defaults as
// backstop, so a partial source still yields a workable pool.
func buildVocabulary(req Request, entry genre.CompatibilityEntry, src *wordsource.Source) *Vocabulary {
	primary := genreWords(src, req.PrimaryGenre)
	secondary := genreWords(src, req.SecondaryGenre)

	v := &Vocabulary{
		Primary:   primary,
		Secondary: secondary,
		Hybrid:    entry.HybridTerms,
		Blends:    entry.ConceptualBlends,
		Synergies: entry.Synergies,
		Strategy:  chooseStrategy(entry.Score, req.CreativityLevel),
	}
	v.Pool = combine(v)
	return v
}

// genreWords collects the usable terms for one genre: source genre terms
// plus the curated per-genre defaults, deduplicated.
func genreWords(src *wordsource.Source, genreName string) []string {
	seen := make(map[string]bool)
	out := []string{}
	add := func(words []string) {
		for _, w := range words {
			if w != "" && !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	if src != nil {
		add(src.Filtered(wordsource.CategoryGenreTerms))
	}
	add(wordsource.GenreTerms(strings.ToLower(genreName)))
	return out
}

// combine materializes the working pool under the chosen strategy.
func combine(v *Vocabulary) []string {
	switch v.Strategy {
	case StrategySynthesize:
		pool := make([]string, 0, len(v.Hybrid)+len(v.Synergies)+len(v.Primary)+len(v.Secondary))
		pool = append(pool, v.Hybrid...)
		pool = append(pool, v.Synergies...)
		pool = append(pool, v.Primary...)
		pool = append(pool, v.Secondary...)
		return pool
	case StrategyDominant:
		pool := make([]string, 0, len(v.Primary)+len(v.Secondary))
		for i, w := range v.Primary {
			pool = append(pool, w)
			if i%dominantShare == dominantShare-1 && i/dominantShare < len(v.Secondary) {
				pool = append(pool, v.Secondary[i/dominantShare])
			}
		}
		if len(pool) == 0 {
			pool = append(pool, v.Secondary...)
		}
		return pool
	case StrategyAlternate:
		pool := make([]string, 0, len(v.Primary)+len(v.Secondary))
		for i := 0; i < len(v.Primary) || i < len(v.Secondary); i++ {
			if i < len(v.Primary) {
				pool = append(pool, v.Primary[i])
			}
			if i < len(v.Secondary) {
				pool = append(pool, v.Secondary[i])
			}
		}
		return pool
	default: // merge
		pool := make([]string, 0, len(v.Primary)+len(v.Secondary)+len(v.Hybrid))
		pool = append(pool, v.Primary...)
		pool = append(pool, v.Secondary...)
		pool = append(pool, v.Hybrid...)
		return pool
	}
}

// pick draws one word from the working pool, falling back to the hybrid
// terms and then a fixed anchor so callers never receive an empty string.
func (v *Vocabulary) pick(rng *rand.Rand) string {
	if len(v.Pool) > 0 {
		return v.Pool[rng.Intn(len(v.Pool))]
	}
	if len(v.Hybrid) > 0 {
		return v.Hybrid[rng.Intn(len(v.Hybrid))]
	}
	return "echo"
}

// pickDistinct draws n distinct words from the pool where possible.
func (v *Vocabulary) pickDistinct(n int, rng *rand.Rand) []string {
	out := make([]string, 0, n)
	used := make(map[string]bool, n)
	for tries := 0; len(out) < n && tries < n*8; tries++ {
		w := v.pick(rng)
		if used[w] {
			continue
		}
		used[w] = true
		out = append(out, w)
	}
	for len(out) < n {
		out = append(out, v.pick(rng))
	}
	return out
}

func (v *Vocabulary) hybridTerm(rng *rand.Rand) string {
	if len(v.Hybrid) == 0 {
		return ""
	}
	return v.Hybrid[rng.Intn(len(v.Hybrid))]
}

func (v *Vocabulary) synergy(rng *rand.Rand) string {
	if len(v.Synergies) == 0 {
		return ""
	}
	return v.Synergies[rng.Intn(len(v.Synergies))]
}

func (v *Vocabulary) blend(rng *rand.Rand) string {
	if len(v.Blends) == 0 {
		return ""
	}
	return v.Blends[rng.Intn(len(v.Blends))]
}

func (v *Vocabulary) primaryTerm(rng *rand.Rand) string {
	if len(v.Primary) == 0 {
		return v.pick(rng)
	}
	return v.Primary[rng.Intn(len(v.Primary))]
}

func (v *Vocabulary) secondaryTerm(rng *rand.Rand) string {
	if len(v.Secondary) == 0 {
		return v.pick(rng)
	}
	return v.Secondary[rng.Intn(len(v.Secondary))]
}
