package templates

import (
	"math/rand"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// Generate renders one phrase from a template. It is a pure function of its
// inputs: identical source, context and rng seed produce identical output,
// and nothing shared is mutated. Unknown template ids return "".
func Generate(tpl Template, src *wordsource.Source, ctx Context, rng *rand.Rand) string {
	switch tpl.ID {
	// one word
	case "single-noun":
		return title(src.Pick(wordsource.CategoryNouns, rng))
	case "single-adjective":
		return title(src.Pick(wordsource.CategoryAdjectives, rng))
	case "single-musical":
		return title(src.Pick(wordsource.CategoryMusicalTerms, rng))
	case "single-contextual":
		return title(src.Pick(wordsource.CategoryContextual, rng))
	case "single-genre-term":
		return title(pickGenre(src, ctx, rng))
	case "compound-fuse":
		return title(compound(src.Pick(wordsource.CategoryNouns, rng), src.Pick(wordsource.CategoryNouns, rng)))

	// two words
	case "the-plural-noun":
		return title("the", pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "adjective-noun":
		return title(src.Pick(wordsource.CategoryAdjectives, rng), src.Pick(wordsource.CategoryNouns, rng))
	case "noun-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(pair...)
	case "gerund-noun":
		return title(gerund(src.Pick(wordsource.CategoryVerbs, rng)), pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "musical-noun":
		return title(src.Pick(wordsource.CategoryMusicalTerms, rng), src.Pick(wordsource.CategoryNouns, rng))
	case "place-noun":
		return title(src.Pick(wordsource.CategoryPlaces, rng), pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "genre-adjective-pair":
		return title(pickGenre(src, ctx, rng), src.Pick(wordsource.CategoryNouns, rng))
	case "iron-pair", "neon-pair", "noir-pair", "pastoral-pair":
		return title(pickGenre(src, ctx, rng), src.Pick(wordsource.CategoryNouns, rng))

	// three words
	case "the-adjective-noun":
		return title("the", src.Pick(wordsource.CategoryAdjectives, rng), src.Pick(wordsource.CategoryNouns, rng))
	case "noun-of-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(pair[0], "of", pluralize(pair[1]))
	case "noun-and-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(pluralize(pair[0]), "and", pluralize(pair[1]))
	case "gerund-the-noun":
		return title(gerund(src.Pick(wordsource.CategoryVerbs, rng)), "the", src.Pick(wordsource.CategoryNouns, rng))
	case "adjective-noun-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(src.Pick(wordsource.CategoryAdjectives, rng), pair[0], pair[1])
	case "preposition-the-noun":
		return title(preposition(rng), "the", pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "the-noun-plural":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title("the", pair[0], pluralize(pair[1]))
	case "number-adjective-noun":
		return title(numberWord(rng), src.Pick(wordsource.CategoryAdjectives, rng), pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "mystic-trio":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(pair[0], "of", pluralize(pair[1]))

	// four and up
	case "the-noun-of-the-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		if want(ctx, tpl) == 5 {
			return title("the", pair[0], "of", "the", pluralize(pair[1]))
		}
		return title(pair[0], "of", "the", pluralize(pair[1]))
	case "gerund-in-the-noun":
		return title(gerund(src.Pick(wordsource.CategoryVerbs, rng)), "in", "the", src.Pick(wordsource.CategoryNouns, rng))
	case "all-the-adjective-nouns":
		return title("all", "the", src.Pick(wordsource.CategoryAdjectives, rng), pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	case "when-the-noun-verbs":
		if want(ctx, tpl) == 5 {
			return title("when", "the", src.Pick(wordsource.CategoryAdjectives, rng), src.Pick(wordsource.CategoryNouns, rng), thirdPerson(src.Pick(wordsource.CategoryVerbs, rng)))
		}
		return title("when", "the", src.Pick(wordsource.CategoryNouns, rng), thirdPerson(src.Pick(wordsource.CategoryVerbs, rng)))
	case "noun-of-the-adjective-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(pluralize(pair[0]), "of", "the", src.Pick(wordsource.CategoryAdjectives, rng), pair[1])
	case "adjective-noun-and-the-noun":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		return title(src.Pick(wordsource.CategoryAdjectives, rng), pair[0], "and", "the", pluralize(pair[1]))
	case "preposition-phrase-long":
		pair := src.PickN(wordsource.CategoryNouns, 2, rng)
		switch want(ctx, tpl) {
		case 4:
			return title(preposition(rng), "the", src.Pick(wordsource.CategoryAdjectives, rng), pluralize(pair[0]))
		case 6:
			return title(preposition(rng), "the", pluralize(pair[0]), "and", "the", pluralize(pair[1]))
		default:
			return title(preposition(rng), "a", src.Pick(wordsource.CategoryNouns, rng), "of", pluralize(pair[0]))
		}
	case "statement-long":
		switch want(ctx, tpl) {
		case 4:
			return title("we", "were", "never", pluralize(src.Pick(wordsource.CategoryNouns, rng)))
		case 6:
			return title("i", "dreamed", "the", src.Pick(wordsource.CategoryAdjectives, rng), src.Pick(wordsource.CategoryNouns, rng), "twice")
		default:
			return title("she", "sold", "the", src.Pick(wordsource.CategoryAdjectives, rng), src.Pick(wordsource.CategoryNouns, rng))
		}
	case "cosmic-long":
		if want(ctx, tpl) == 5 {
			return title(pluralize(src.Pick(wordsource.CategoryNouns, rng)), "from", "the", "outer", src.Pick(wordsource.CategoryContextual, rng))
		}
		return title("orbit", "of", src.Pick(wordsource.CategoryAdjectives, rng), pluralize(src.Pick(wordsource.CategoryNouns, rng)))
	}

	return ""
}

// want resolves the target word count for a ranged template, clamped to the
// template's own range.
func want(ctx Context, tpl Template) int {
	n := ctx.WordCount
	if n < tpl.MinWords {
		n = tpl.MinWords
	}
	if n > tpl.MaxWords {
		n = tpl.MaxWords
	}
	return n
}

// pickGenre prefers genre vocabulary, falling back to adjectives when the
// source has no genre terms.
func pickGenre(src *wordsource.Source, ctx Context, rng *rand.Rand) string {
	if w := src.Pick(wordsource.CategoryGenreTerms, rng); w != "" {
		return w
	}
	if terms := wordsource.GenreTerms(ctx.Genre); len(terms) > 0 {
		return terms[rng.Intn(len(terms))]
	}
	return src.Pick(wordsource.CategoryAdjectives, rng)
}

// smallWords stay lowercase inside a title unless they open the phrase.
var smallWords = map[string]bool{
	"of": true, "the": true, "and": true, "in": true, "a": true,
	"from": true, "to": true, "at": true,
}

// title joins words into a display name with title casing.
func title(words ...string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		parts = append(parts, w)
	}
	for i, w := range parts {
		if i > 0 && smallWords[w] {
			continue
		}
		parts[i] = capitalize(w)
	}
	return strings.Join(parts, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// compound glues two words into an invented single word, trimming a doubled
// boundary letter ("storm"+"moon" -> "stormoon").
func compound(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	if a[len(a)-1] == b[0] {
		return a + b[1:]
	}
	return a + b
}

// irregularPlurals covers the handful the default pools contain; everything
// else gets suffix heuristics.
var irregularPlurals = map[string]string{
	"wolf":  "wolves",
	"leaf":  "leaves",
	"life":  "lives",
	"knife": "knives",
	"man":   "men",
	"woman": "women",
	"child": "children",
	"foot":  "feet",
	"tooth": "teeth",
}

func pluralize(noun string) string {
	if noun == "" {
		return noun
	}
	if p, ok := irregularPlurals[noun]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(noun, "s"), strings.HasSuffix(noun, "x"),
		strings.HasSuffix(noun, "z"), strings.HasSuffix(noun, "ch"),
		strings.HasSuffix(noun, "sh"):
		return noun + "es"
	case strings.HasSuffix(noun, "y") && len(noun) > 1 && !isVowel(noun[len(noun)-2]):
		return noun[:len(noun)-1] + "ies"
	case strings.HasSuffix(noun, "o") && len(noun) > 1 && !isVowel(noun[len(noun)-2]):
		return noun + "es"
	default:
		return noun + "s"
	}
}

// gerund applies suffix heuristics only; no dictionary lookup.
func gerund(verb string) string {
	if verb == "" {
		return verb
	}
	switch {
	// Already a gerund only when "ing" follows a real stem; "sing" and
	// "swing" still need inflecting.
	case strings.HasSuffix(verb, "ing") && len(verb) > 4 && hasVowel(verb[:len(verb)-3]):
		return verb
	case strings.HasSuffix(verb, "ie"):
		return verb[:len(verb)-2] + "ying"
	case strings.HasSuffix(verb, "e") && !strings.HasSuffix(verb, "ee"):
		return verb[:len(verb)-1] + "ing"
	case len(verb) >= 3 && !isVowel(verb[len(verb)-1]) && isVowel(verb[len(verb)-2]) && !isVowel(verb[len(verb)-3]) &&
		verb[len(verb)-1] != 'w' && verb[len(verb)-1] != 'x' && verb[len(verb)-1] != 'y':
		return verb + string(verb[len(verb)-1]) + "ing"
	default:
		return verb + "ing"
	}
}

func thirdPerson(verb string) string {
	if verb == "" {
		return verb
	}
	switch {
	case strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "x"),
		strings.HasSuffix(verb, "ch"), strings.HasSuffix(verb, "sh"):
		return verb + "es"
	case strings.HasSuffix(verb, "y") && len(verb) > 1 && !isVowel(verb[len(verb)-2]):
		return verb[:len(verb)-1] + "ies"
	default:
		return verb + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			return true
		}
	}
	return false
}

var prepositions = []string{"under", "beyond", "against", "beneath", "between", "through"}

func preposition(rng *rand.Rand) string {
	return prepositions[rng.Intn(len(prepositions))]
}

var numberWords = []string{"two", "three", "seven", "nine", "eleven", "thousand"}

func numberWord(rng *rand.Rand) string {
	return numberWords[rng.Intn(len(numberWords))]
}
