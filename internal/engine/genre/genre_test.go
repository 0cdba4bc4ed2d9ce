package genre

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityIsSymmetric(t *testing.T) {
	forward, ok := Compatibility("electronic", "jazz")
	require.True(t, ok)
	backward, ok := Compatibility("jazz", "electronic")
	require.True(t, ok)
	assert.Equal(t, forward, backward)
}

func TestCompatibilityUnknownPair(t *testing.T) {
	_, ok := Compatibility("reggae", "metal")
	assert.False(t, ok)
}

func TestCompatibilityIsCaseInsensitive(t *testing.T) {
	_, ok := Compatibility("Electronic", "JAZZ")
	assert.True(t, ok)
}

func TestCompatibilityScoresInRange(t *testing.T) {
	for _, key := range Pairs() {
		parts := strings.SplitN(key, "|", 2)
		entry, ok := Compatibility(parts[0], parts[1])
		require.True(t, ok, key)
		assert.GreaterOrEqual(t, entry.Score, 0.0, key)
		assert.LessOrEqual(t, entry.Score, 1.0, key)
		assert.NotEmpty(t, entry.Style, key)
		assert.NotEmpty(t, entry.HybridTerms, key)
	}
}

func TestCompatibilityPairsReferToKnownGenres(t *testing.T) {
	for _, key := range Pairs() {
		parts := strings.SplitN(key, "|", 2)
		assert.True(t, Known(parts[0]), "unknown genre %q in pair %q", parts[0], key)
		assert.True(t, Known(parts[1]), "unknown genre %q in pair %q", parts[1], key)
	}
}

func TestCategoriesForAndAvoids(t *testing.T) {
	cats := CategoriesFor("metal")
	require.NotEmpty(t, cats)
	assert.Contains(t, cats, "aggressive")

	assert.True(t, Avoids("metal", "romantic"))
	assert.False(t, Avoids("metal", "aggressive"))
	assert.False(t, Avoids("not-a-genre", "romantic"))
	assert.Nil(t, CategoriesFor("not-a-genre"))
}

func TestFusionPatternsLookup(t *testing.T) {
	patterns := FusionPatterns("jazz", "electronic")
	require.NotEmpty(t, patterns, "pattern lookup must work in either order")
	assert.Empty(t, FusionPatterns("reggae", "metal"))
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	require.Len(t, names, len(Catalog))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
