package wordsource

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Category identifies one vocabulary pool inside a Source.
type Category string

const (
	CategoryAdjectives   Category = "adjectives"
	CategoryNouns        Category = "nouns"
	CategoryVerbs        Category = "verbs"
	CategoryMusicalTerms Category = "musical_terms"
	CategoryGenreTerms   Category = "genre_terms"
	CategoryContextual   Category = "contextual"
	CategoryPlaces       Category = "places"
)

// AllCategories lists every category a Source can hold, in stable order.
var AllCategories = []Category{
	CategoryAdjectives,
	CategoryNouns,
	CategoryVerbs,
	CategoryMusicalTerms,
	CategoryGenreTerms,
	CategoryContextual,
	CategoryPlaces,
}

// ErrMalformedSource is returned when an external word-source payload does
// not map category names to lists of strings.
var ErrMalformedSource = errors.New("malformed word source")

// Source is a named collection of categorized word lists. Each category keeps
// the raw list as received and a quality-filtered variant; the filtered list
// is always a subset of the raw list. Sources are read-only after
// construction and safe for concurrent use.
type Source struct {
	Name     string
	raw      map[Category][]string
	filtered map[Category][]string
}

// New builds a Source from categorized lists. Entries are case-normalized
// and deduplicated; absent categories behave as empty lists, never nil.
func New(name string, lists map[Category][]string) *Source {
	s := &Source{
		Name:     name,
		raw:      make(map[Category][]string, len(lists)),
		filtered: make(map[Category][]string, len(lists)),
	}
	for cat, words := range lists {
		raw := normalizeList(words)
		s.raw[cat] = raw
		s.filtered[cat] = filterList(raw)
	}
	return s
}

// FromUntyped builds a Source from an untyped payload such as a decoded JSON
// object. Every value must be a list of strings (or nil); anything else
// fails with ErrMalformedSource.
func FromUntyped(name string, payload map[string]any) (*Source, error) {
	lists := make(map[Category][]string, len(payload))
	for key, value := range payload {
		if value == nil {
			lists[Category(key)] = nil
			continue
		}
		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: category %q is not a list", ErrMalformedSource, key)
		}
		words := make([]string, 0, len(items))
		for _, item := range items {
			word, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: category %q contains a non-string entry", ErrMalformedSource, key)
			}
			words = append(words, word)
		}
		lists[Category(key)] = words
	}
	return New(name, lists), nil
}

// Raw returns the unfiltered list for a category. Never nil.
func (s *Source) Raw(cat Category) []string {
	if words, ok := s.raw[cat]; ok {
		return words
	}
	return []string{}
}

// Filtered returns the quality-filtered list for a category. Never nil.
func (s *Source) Filtered(cat Category) []string {
	if words, ok := s.filtered[cat]; ok {
		return words
	}
	return []string{}
}

// Pick returns one random word from the filtered pool for a category,
// falling back to the built-in default pool when the category is empty or
// missing. This is what keeps generation alive on an empty or partial
// source.
func (s *Source) Pick(cat Category, rng *rand.Rand) string {
	pool := s.Filtered(cat)
	if len(pool) == 0 {
		pool = DefaultPool(cat)
	}
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// PickN returns up to n distinct words from a category's filtered pool,
// padded from the defaults when the pool is short.
func (s *Source) PickN(cat Category, n int, rng *rand.Rand) []string {
	pool := s.Filtered(cat)
	if len(pool) < n {
		merged := make([]string, len(pool))
		copy(merged, pool)
		seen := make(map[string]bool, len(pool))
		for _, w := range pool {
			seen[w] = true
		}
		for _, w := range DefaultPool(cat) {
			if !seen[w] {
				merged = append(merged, w)
				seen[w] = true
			}
		}
		pool = merged
	}
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

// Merge combines two sources into a new one, list by list. The receiver's
// words come first so callers can favor a primary vocabulary.
func (s *Source) Merge(other *Source, name string) *Source {
	lists := make(map[Category][]string)
	for cat, words := range s.raw {
		lists[cat] = append(lists[cat], words...)
	}
	if other != nil {
		for cat, words := range other.raw {
			lists[cat] = append(lists[cat], words...)
		}
	}
	return New(name, lists)
}

// Categories returns the categories present in the source, sorted.
func (s *Source) Categories() []Category {
	cats := make([]Category, 0, len(s.raw))
	for cat := range s.raw {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// normalizeList lowercases, trims and deduplicates while preserving order.
func normalizeList(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
