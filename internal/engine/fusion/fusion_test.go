package fusion

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

func TestFuseUnknownPair(t *testing.T) {
	e := NewEngine()
	req := Request{PrimaryGenre: "polka", SecondaryGenre: "dubstep"}

	_, err := e.Fuse(req, nil, guard.New(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrIncompatibleGenres)
}

func TestFuseReturnsRequestedCount(t *testing.T) {
	e := NewEngine()
	req := Request{
		PrimaryGenre:   "electronic",
		SecondaryGenre: "jazz",
		WordCount:      2,
		Count:          3,
	}

	results, err := e.Fuse(req, wordsource.Default("electronic"), guard.New(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Len(t, results, 3)

	entry, ok := genre.Compatibility("electronic", "jazz")
	require.True(t, ok)

	seen := make(map[string]bool)
	for _, r := range results {
		assert.Equal(t, entry.Score, r.Metadata.CompatibilityScore)
		assert.Equal(t, entry.Style, r.Metadata.FusionStyle)

		words := len(strings.Fields(r.Name))
		assert.InDelta(t, req.WordCount, words, 1, "name %q", r.Name)

		assert.False(t, seen[strings.ToLower(r.Name)], "duplicate %q within one call", r.Name)
		seen[strings.ToLower(r.Name)] = true

		assert.GreaterOrEqual(t, r.QualityScore, minQuality)
		assert.LessOrEqual(t, r.QualityScore, 1.0)
		assert.NotEmpty(t, r.Explanations)
	}
}

func TestFuseSymmetry(t *testing.T) {
	e := NewEngine()
	base := Request{WordCount: 2, Count: 2}

	forward := base
	forward.PrimaryGenre, forward.SecondaryGenre = "blues", "rock"
	reverse := base
	reverse.PrimaryGenre, reverse.SecondaryGenre = "rock", "blues"

	a, err := e.Fuse(forward, nil, guard.New(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := e.Fuse(reverse, nil, guard.New(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.Equal(t, a[0].Metadata.CompatibilityScore, b[0].Metadata.CompatibilityScore)
}

func TestFuseResultsSortedByQuality(t *testing.T) {
	e := NewEngine()
	req := Request{PrimaryGenre: "ambient", SecondaryGenre: "electronic", WordCount: 2, Count: 4}

	results, err := e.Fuse(req, nil, guard.New(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].QualityScore, results[i].QualityScore)
	}
}

func TestChooseStrategy(t *testing.T) {
	tests := []struct {
		name          string
		compatibility float64
		creativity    float64
		want          Strategy
	}{
		{"strong pair, creative caller", 0.85, 0.8, StrategySynthesize},
		{"strong pair, cautious caller", 0.85, 0.2, StrategyMerge},
		{"weak pair", 0.55, 0.9, StrategyDominant},
		{"middling pair, creative caller", 0.70, 0.8, StrategyAlternate},
		{"middling pair, cautious caller", 0.70, 0.3, StrategyMerge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseStrategy(tt.compatibility, tt.creativity))
		})
	}
}

func TestMethodOrderByIntensity(t *testing.T) {
	assert.Equal(t, methodPatternSynthesis, methodOrder("experimental")[0])
	assert.Equal(t, methodComplementary, methodOrder("subtle")[0])
	assert.Equal(t, methodInterweave, methodOrder("")[0])

	for _, intensity := range []string{"subtle", "moderate", "bold", "experimental"} {
		chain := methodOrder(intensity)
		assert.Equal(t, methodDefault, chain[len(chain)-1], "%s chain must end with the concat fallback", intensity)
	}
}

func TestPatternSynthesisFillsEverySlot(t *testing.T) {
	e := NewEngine()
	entry, ok := genre.Compatibility("electronic", "jazz")
	require.True(t, ok)

	req := Request{PrimaryGenre: "electronic", SecondaryGenre: "jazz", WordCount: 2}
	vocab := buildVocabulary(req, entry, wordsource.Default("electronic"))
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		name := e.patternSynthesis(vocab, req, wordsource.Default("electronic"), rng)
		require.NotEmpty(t, name)
		assert.NotContains(t, name, "{")
		assert.NotContains(t, name, "}")
	}
}

func TestPatternSynthesisUnknownPair(t *testing.T) {
	e := NewEngine()
	entry, ok := genre.Compatibility("metal", "folk")
	require.True(t, ok)

	req := Request{PrimaryGenre: "metal", SecondaryGenre: "folk", WordCount: 2}
	vocab := buildVocabulary(req, entry, nil)

	// metal|folk carries no pre-authored patterns, so the method yields
	// nothing and the chain moves on.
	assert.Empty(t, e.patternSynthesis(vocab, req, wordsource.Default("metal"), rand.New(rand.NewSource(1))))
}

func TestInterweaveHitsWordCountWindow(t *testing.T) {
	e := NewEngine()
	entry, ok := genre.Compatibility("blues", "rock")
	require.True(t, ok)

	req := Request{PrimaryGenre: "blues", SecondaryGenre: "rock", WordCount: 3}
	vocab := buildVocabulary(req, entry, wordsource.Default("blues"))
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 20; i++ {
		name := e.patternInterweave(vocab, req, wordsource.Default("blues"), guard.New(), rng)
		words := len(strings.Fields(name))
		assert.InDelta(t, req.WordCount, words, 1, "name %q", name)
	}
}

func TestVocabularyPools(t *testing.T) {
	entry, ok := genre.Compatibility("pop", "synthwave")
	require.True(t, ok)

	req := Request{PrimaryGenre: "pop", SecondaryGenre: "synthwave", CreativityLevel: 0.9}
	vocab := buildVocabulary(req, entry, nil)

	assert.Equal(t, StrategySynthesize, vocab.Strategy)
	assert.NotEmpty(t, vocab.Primary)
	assert.NotEmpty(t, vocab.Secondary)
	assert.NotEmpty(t, vocab.Pool)

	// Synthesis leads with the hybrid vocabulary.
	assert.Equal(t, entry.HybridTerms[0], vocab.Pool[0])
}

func TestAuthenticityHeuristic(t *testing.T) {
	assert.Less(t, authenticity("Cyber Neo Machine"), minAuthenticity)
	assert.GreaterOrEqual(t, authenticity("Velvet Rhythm"), minAuthenticity)
	assert.Greater(t, authenticity("Rhythm Cadence"), authenticity("Stone Garden"))
}

func TestValidateWordCountTolerance(t *testing.T) {
	req := Request{WordCount: 2}

	assert.True(t, validate("Velvet Thunder", req, 0.8))
	assert.True(t, validate("Thunder", req, 0.8))
	assert.True(t, validate("The Velvet Thunder", req, 0.8))
	assert.False(t, validate("One Two Three Four", req, 0.8))
	assert.False(t, validate("ab", req, 0.8))
	assert.False(t, validate("Velvet Thunder", req, 0.1))
}

func TestPreserveAuthenticityGatesSyntheticNames(t *testing.T) {
	req := Request{WordCount: 2, PreserveAuthenticity: true}
	assert.False(t, validate("Cyber Neo", req, 0.9))

	req.PreserveAuthenticity = false
	assert.True(t, validate("Cyber Neo", req, 0.9))
}

func TestScoreQualityRewardsHybridTerms(t *testing.T) {
	entry, ok := genre.Compatibility("electronic", "jazz")
	require.True(t, ok)

	req := Request{PrimaryGenre: "electronic", SecondaryGenre: "jazz", WordCount: 2}
	vocab := buildVocabulary(req, entry, nil)

	withHybrid := scoreQuality("Nujazz Midnight", req, entry, vocab)
	without := scoreQuality("Stone Garden", req, entry, vocab)
	assert.Greater(t, withHybrid, without)
}

func TestTitleKeepsConnectivesLower(t *testing.T) {
	assert.Equal(t, "The Velvet Sound of Rain", title([]string{"the", "velvet", "sound", "of", "rain"}))
}

func TestDedupeAdjacent(t *testing.T) {
	got := dedupeAdjacent([]string{"echo", "Echo", "chamber", "chamber", "echo"})
	assert.Equal(t, []string{"echo", "chamber", "echo"}, got)
}
