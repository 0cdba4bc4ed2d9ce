package wordsource

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDeduplicates(t *testing.T) {
	src := New("test", map[Category][]string{
		CategoryNouns: {"Echo", "echo", "  RIVER ", "", "river", "storm"},
	})

	assert.Equal(t, []string{"echo", "river", "storm"}, src.Raw(CategoryNouns))
}

func TestFilteredIsSubsetOfRaw(t *testing.T) {
	src := New("test", map[Category][]string{
		CategoryAdjectives: {"electric", "x", "thing", "www.spam", "velvet", "abc123", "extraordinarily-long-word"},
	})

	raw := src.Raw(CategoryAdjectives)
	rawSet := make(map[string]bool, len(raw))
	for _, w := range raw {
		rawSet[w] = true
	}
	for _, w := range src.Filtered(CategoryAdjectives) {
		assert.True(t, rawSet[w], "filtered word %q missing from raw list", w)
	}
	assert.Equal(t, []string{"electric", "velvet"}, src.Filtered(CategoryAdjectives))
}

func TestAbsentCategoryIsEmptyNotNil(t *testing.T) {
	src := New("test", nil)

	assert.NotNil(t, src.Raw(CategoryVerbs))
	assert.NotNil(t, src.Filtered(CategoryVerbs))
	assert.Empty(t, src.Raw(CategoryVerbs))
}

func TestPickFallsBackToDefaults(t *testing.T) {
	src := New("empty", nil)
	rng := rand.New(rand.NewSource(1))

	word := src.Pick(CategoryNouns, rng)
	assert.NotEmpty(t, word, "Pick on empty source should use default pool")
}

func TestPickNReturnsDistinctWords(t *testing.T) {
	src := Default("rock")
	rng := rand.New(rand.NewSource(42))

	words := src.PickN(CategoryAdjectives, 5, rng)
	require.Len(t, words, 5)
	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
	}
}

func TestFromUntyped(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr bool
	}{
		{
			name: "valid lists",
			payload: map[string]any{
				"nouns": []any{"echo", "river"},
			},
		},
		{
			name:    "nil category defaults to empty",
			payload: map[string]any{"nouns": nil},
		},
		{
			name:    "non-list value",
			payload: map[string]any{"nouns": "echo"},
			wantErr: true,
		},
		{
			name:    "non-string entry",
			payload: map[string]any{"nouns": []any{"echo", 42}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := FromUntyped("test", tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedSource)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, src.Raw(CategoryNouns))
		})
	}
}

func TestDefaultSourceCarriesGenreTerms(t *testing.T) {
	src := Default("jazz")
	assert.NotEmpty(t, src.Filtered(CategoryGenreTerms))

	unknown := Default("polka-fusion-revival")
	assert.Empty(t, unknown.Filtered(CategoryGenreTerms))
}

func TestMergeKeepsReceiverFirst(t *testing.T) {
	a := New("a", map[Category][]string{CategoryNouns: {"echo"}})
	b := New("b", map[Category][]string{CategoryNouns: {"river"}})

	merged := a.Merge(b, "ab")
	assert.Equal(t, []string{"echo", "river"}, merged.Raw(CategoryNouns))
}
