package fusion

import (
	"math/rand"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/selection"
	"github.com/soundhatch/namesmith-api/internal/engine/templates"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// Generation method names, also reported in result metadata.
const (
	methodPatternSynthesis = "pattern_synthesis"
	methodInterweave       = "pattern_interweaving"
	methodVocabulary       = "vocabulary_fusion"
	methodComplementary    = "complementary_fusion"
	methodContrasting      = "contrasting_fusion"
	methodDefault          = "default_concatenation"
)

// methodOrder maps requested intensity to the strategy chain. Each entry
// is tried in order until one produces a usable name.
func methodOrder(intensity string) []string {
	switch intensity {
	case "experimental":
		return []string{methodPatternSynthesis, methodVocabulary, methodContrasting, methodInterweave, methodDefault}
	case "bold":
		return []string{methodPatternSynthesis, methodInterweave, methodVocabulary, methodComplementary, methodDefault}
	case "subtle":
		return []string{methodComplementary, methodInterweave, methodVocabulary, methodDefault}
	default: // moderate
		return []string{methodInterweave, methodPatternSynthesis, methodComplementary, methodVocabulary, methodDefault}
	}
}

func methodDescription(method string) string {
	switch method {
	case methodPatternSynthesis:
		return "pre-authored fusion pattern for this genre pair"
	case methodInterweave:
		return "interleaved words from one template per genre"
	case methodVocabulary:
		return "assembled directly from the fused vocabulary"
	case methodComplementary:
		return "built around shared synergy keywords"
	case methodContrasting:
		return "built from opposing semantic poles"
	default:
		return "plain concatenation from the fused vocabulary"
	}
}

func (e *Engine) runMethod(method string, vocab *Vocabulary, req Request, src *wordsource.Source, g *guard.Guard, rng *rand.Rand) string {
	switch method {
	case methodPatternSynthesis:
		return e.patternSynthesis(vocab, req, src, rng)
	case methodInterweave:
		return e.patternInterweave(vocab, req, src, g, rng)
	case methodVocabulary:
		return e.vocabularyFusion(vocab, req, rng)
	case methodComplementary:
		return e.complementaryFusion(vocab, req, rng)
	case methodContrasting:
		return e.contrastingFusion(vocab, req, rng)
	default:
		return e.defaultConcat(vocab, rng)
	}
}

// patternSynthesis fills a pre-authored per-pair pattern. Slots: {p}
// primary term, {s} secondary term, {h} hybrid term, {n} noun, {a}
// adjective. Pairs without patterns yield nothing so the chain moves on.
func (e *Engine) patternSynthesis(vocab *Vocabulary, req Request, src *wordsource.Source, rng *rand.Rand) string {
	patterns := genre.FusionPatterns(req.PrimaryGenre, req.SecondaryGenre)
	if len(patterns) == 0 {
		return ""
	}
	pattern := patterns[rng.Intn(len(patterns))]

	fill := strings.NewReplacer(
		"{p}", vocab.primaryTerm(rng),
		"{s}", vocab.secondaryTerm(rng),
		"{h}", vocab.hybridTerm(rng),
		"{n}", src.Pick(wordsource.CategoryNouns, rng),
		"{a}", src.Pick(wordsource.CategoryAdjectives, rng),
	).Replace(pattern)

	return title(strings.Fields(fill))
}

// patternInterweave generates one phrase per genre through the selection
// engine and interleaves their words positionally, trimmed or padded to
// the requested count.
func (e *Engine) patternInterweave(vocab *Vocabulary, req Request, src *wordsource.Source, g *guard.Guard, rng *rand.Rand) string {
	primary := e.genrePhrase(req.PrimaryGenre, req, src, g, rng)
	secondary := e.genrePhrase(req.SecondaryGenre, req, src, g, rng)

	a := strings.Fields(strings.ToLower(primary))
	b := strings.Fields(strings.ToLower(secondary))

	words := make([]string, 0, req.WordCount)
	for i := 0; len(words) < req.WordCount && (i < len(a) || i < len(b)); i++ {
		if i < len(a) {
			words = append(words, a[i])
		}
		if len(words) < req.WordCount && i < len(b) {
			words = append(words, b[i])
		}
	}
	for len(words) < req.WordCount {
		words = append(words, vocab.pick(rng))
	}
	return title(dedupeAdjacent(words))
}

// genrePhrase produces a single-genre phrase for interweaving, falling
// back to the dynamic assembler when no template is eligible.
func (e *Engine) genrePhrase(genreName string, req Request, src *wordsource.Source, g *guard.Guard, rng *rand.Rand) string {
	criteria := selection.Criteria{
		WordCount:       req.WordCount,
		Genre:           strings.ToLower(genreName),
		Mood:            req.Mood,
		CreativityLevel: req.CreativityLevel,
	}
	session := selection.NewSession(criteria, g, rng)

	tpl, err := e.selector.Select(session)
	if err != nil {
		return selection.DynamicPhrase(src, req.WordCount, rng)
	}
	ctx := templates.Context{
		Genre:     criteria.Genre,
		Mood:      req.Mood,
		WordCount: req.WordCount,
	}
	return templates.Generate(tpl, src, ctx, rng)
}

// vocabularyFusion assembles a name straight from the fused pool, seeding
// with a hybrid term when one exists. A curated conceptual blend is used
// verbatim now and then when its shape already fits the target.
func (e *Engine) vocabularyFusion(vocab *Vocabulary, req Request, rng *rand.Rand) string {
	if blend := vocab.blend(rng); blend != "" && rng.Intn(3) == 0 {
		words := strings.Fields(blend)
		if diff := len(words) - req.WordCount; diff >= -1 && diff <= 1 {
			return title(words)
		}
	}

	words := make([]string, 0, req.WordCount)
	if h := vocab.hybridTerm(rng); h != "" {
		words = append(words, h)
	}
	if remaining := req.WordCount - len(words); remaining > 0 {
		words = append(words, vocab.pickDistinct(remaining, rng)...)
	}
	return title(dedupeAdjacent(words))
}

// complementaryFusion leans on the pair's synergy keywords, filling the
// remaining positions from the fused pool.
func (e *Engine) complementaryFusion(vocab *Vocabulary, req Request, rng *rand.Rand) string {
	syn := vocab.synergy(rng)
	if syn == "" {
		return ""
	}
	words := []string{syn}
	for _, w := range vocab.pickDistinct(req.WordCount-1, rng) {
		words = append(words, w)
	}
	if rng.Intn(2) == 0 && len(words) > 1 {
		words[0], words[len(words)-1] = words[len(words)-1], words[0]
	}
	return title(dedupeAdjacent(words))
}

// semanticOpposites anchors the contrasting method. Each pair spans the
// organic/synthetic divide the two genres are pulling across.
var semanticOpposites = [][2]string{
	{"organic", "synthetic"},
	{"acoustic", "electric"},
	{"analog", "digital"},
	{"ancient", "neon"},
	{"rural", "chrome"},
	{"velvet", "steel"},
	{"ember", "circuit"},
}

// contrastingFusion plays one semantic pole against the other, with pool
// words filling any remaining positions.
func (e *Engine) contrastingFusion(vocab *Vocabulary, req Request, rng *rand.Rand) string {
	pair := semanticOpposites[rng.Intn(len(semanticOpposites))]
	words := []string{pair[0], pair[1]}
	if rng.Intn(2) == 0 {
		words[0], words[1] = words[1], words[0]
	}
	// Two anchor words already satisfy a one-word target within the
	// validator's tolerance, so only grow, never trim.
	for len(words) < req.WordCount {
		words = append(words, vocab.pick(rng))
	}
	return title(dedupeAdjacent(words))
}

// defaultConcat is the last-resort two-word concatenation.
func (e *Engine) defaultConcat(vocab *Vocabulary, rng *rand.Rand) string {
	words := vocab.pickDistinct(2, rng)
	return title(words)
}

var fusionSmallWords = map[string]bool{
	"the": true, "of": true, "and": true, "in": true, "a": true, "an": true,
}

// title capitalizes each word except small connectives past the first.
func title(words []string) string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		if w == "" {
			continue
		}
		if i > 0 && fusionSmallWords[w] {
			out = append(out, w)
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(out, " ")
}

// dedupeAdjacent drops immediately repeated words, which interleaving two
// same-genre phrases can produce.
func dedupeAdjacent(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
