package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

func TestGenerateReturnsRequestedCount(t *testing.T) {
	g := New()
	req := Request{Type: "band", Genre: "rock", WordCount: 2, Count: 5}

	results := g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(1)))
	require.Len(t, results, 5)

	seen := make(map[string]bool)
	for _, r := range results {
		assert.NotEmpty(t, r.Name)
		assert.GreaterOrEqual(t, r.QualityScore, 0.0)
		assert.LessOrEqual(t, r.QualityScore, 1.0)
		assert.False(t, seen[strings.ToLower(r.Name)], "duplicate %q in one call", r.Name)
		seen[strings.ToLower(r.Name)] = true
	}
}

func TestGenerateBatchAvoidsSharedWords(t *testing.T) {
	g := New()

	for seed := int64(0); seed < 20; seed++ {
		req := Request{Type: "band", Genre: "rock", WordCount: 2, Count: 4}
		results := g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(seed)))
		require.Len(t, results, 4)

		// A fresh guard arbitrates each accept against the batch so far, so
		// no two generated names may reuse a significant word.
		seen := make(map[string]string)
		for _, r := range results {
			if r.Source == SourceFallback {
				continue
			}
			for _, w := range strings.Fields(strings.ToLower(r.Name)) {
				if len(w) < 4 {
					continue
				}
				other, dup := seen[w]
				require.False(t, dup, "seed %d: %q and %q share the word %q", seed, other, r.Name, w)
				seen[w] = r.Name
			}
		}
	}
}

func TestGenerateExactWordCount(t *testing.T) {
	g := New()
	req := Request{Type: "band", Genre: "metal", WordCount: 2, Count: 4}

	for _, r := range g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(9))) {
		if r.Source == SourceFallback {
			continue
		}
		assert.Len(t, strings.Fields(r.Name), 2, "name %q", r.Name)
	}
}

func TestGenerateOpenRange(t *testing.T) {
	g := New()
	req := Request{Type: "song", Genre: "folk", OpenRange: true, Count: 4}

	for _, r := range g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(21))) {
		if r.Source == SourceFallback {
			continue
		}
		words := len(strings.Fields(r.Name))
		assert.GreaterOrEqual(t, words, openRangeMin, "name %q", r.Name)
		assert.LessOrEqual(t, words, openRangeMin+openRangeSpan-1, "name %q", r.Name)
	}
}

func TestGenerateDefaults(t *testing.T) {
	g := New()

	results := g.Generate(Request{}, nil, guard.New(), rand.New(rand.NewSource(2)))
	assert.Len(t, results, defaultCount)
}

func TestGenerateFusionPath(t *testing.T) {
	g := New()
	req := Request{
		Type:           "band",
		Genre:          "electronic",
		SecondaryGenre: "jazz",
		WordCount:      2,
		Count:          3,
	}

	results := g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(4)))
	require.Len(t, results, 3)

	for _, r := range results {
		if r.Source == SourceFallback {
			continue
		}
		assert.Equal(t, SourceFusion, r.Source)
		require.NotNil(t, r.Fusion)
		assert.Equal(t, "electronic", r.Fusion.PrimaryGenre)
		assert.Equal(t, "jazz", r.Fusion.SecondaryGenre)
	}
}

func TestGenerateIncompatiblePairFallsBack(t *testing.T) {
	g := New()
	req := Request{
		Type:           "band",
		Genre:          "polka",
		SecondaryGenre: "dubstep",
		Count:          3,
	}

	results := g.Generate(req, nil, guard.New(), rand.New(rand.NewSource(6)))
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, SourceFallback, r.Source)
		assert.Equal(t, fallbackQuality, r.QualityScore)
	}
}

func TestGenerateAvoidsRepeatsAcrossCalls(t *testing.T) {
	g := New()
	gd := guard.New()
	rng := rand.New(rand.NewSource(8))
	req := Request{Type: "band", Genre: "rock", WordCount: 2, Count: 3}

	first := g.Generate(req, nil, gd, rng)
	second := g.Generate(req, nil, gd, rng)

	names := make(map[string]bool)
	for _, r := range first {
		names[strings.ToLower(r.Name)] = true
	}
	for _, r := range second {
		assert.False(t, names[strings.ToLower(r.Name)], "name %q repeated across calls", r.Name)
	}
}

func TestFallbackGuarantee(t *testing.T) {
	gd := guard.New()
	req := Request{Type: "band", Count: 5}

	results := fallbackResults(req, gd)
	assert.Len(t, results, 5)

	// A saturated guard cannot starve the pool either.
	results = fallbackResults(req, gd)
	assert.Len(t, results, 5)
}

func TestFallbackPoolByType(t *testing.T) {
	assert.Equal(t, bandFallbacks, fallbackPool("band"))
	assert.Equal(t, songFallbacks, fallbackPool("song"))
}

func TestBuildSourceMalformedPayload(t *testing.T) {
	g := New()

	src := g.BuildSource("client", map[string]any{"nouns": 42}, "rock")
	require.NotNil(t, src)
	assert.NotEmpty(t, src.Filtered(wordsource.CategoryNouns), "malformed payload falls back to built-in pools")
}

func TestBuildSourceMergesClientWords(t *testing.T) {
	g := New()

	src := g.BuildSource("client", map[string]any{
		"nouns": []any{"glacier", "lantern"},
	}, "rock")
	require.NotNil(t, src)
	assert.Contains(t, src.Filtered(wordsource.CategoryNouns), "glacier")
}

func TestScoreNamePrefersExactShape(t *testing.T) {
	req := Request{WordCount: 2, Genre: "rock"}

	exact := scoreName("Velvet Thunder", req, nil)
	long := scoreName("The Velvet Thunder Parade", req, nil)
	assert.Greater(t, exact, long)
}

func TestScoreNameRewardsMusicalVocabulary(t *testing.T) {
	req := Request{WordCount: 2}

	musical := scoreName("Rhythm Ghost", req, nil)
	plain := scoreName("Stone Garden", req, nil)
	assert.Greater(t, musical, plain)
}

func TestNormalizeClampsInput(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(1))

	req := g.normalize(Request{Type: "ORCHESTRA", CreativityLevel: 2.5}, rng)
	assert.Equal(t, "band", req.Type)
	assert.Equal(t, defaultCount, req.Count)
	assert.Equal(t, 1.0, req.CreativityLevel)
	assert.GreaterOrEqual(t, req.WordCount, 2)
	assert.LessOrEqual(t, req.WordCount, 3)
}
