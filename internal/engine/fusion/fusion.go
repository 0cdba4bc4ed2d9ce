package fusion

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/selection"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

var (
	// ErrIncompatibleGenres means the pair has no compatibility entry.
	ErrIncompatibleGenres = errors.New("no compatibility entry for genre pair")

	// ErrFusionExhausted means no candidate survived validation within the
	// retry budget.
	ErrFusionExhausted = errors.New("fusion produced no valid candidate")
)

const (
	defaultWordCount = 2
	defaultCount     = 4

	// overgenerationFactor is how many valid candidates to collect per
	// requested result before ranking.
	overgenerationFactor = 3

	// attemptMultiplier bounds raw generation attempts relative to the
	// candidate target.
	attemptMultiplier = 5
)

// Request carries everything a fusion run needs. Zero values get sensible
// defaults in Fuse.
type Request struct {
	PrimaryGenre         string
	SecondaryGenre       string
	Mood                 string
	WordCount            int
	Count                int
	Intensity            string  // subtle, moderate, bold, experimental
	CreativityLevel      float64 // 0-1
	PreserveAuthenticity bool
}

// Metadata describes how a fused name came to be.
type Metadata struct {
	PrimaryGenre       string            `json:"primary_genre"`
	SecondaryGenre     string            `json:"secondary_genre"`
	CompatibilityScore float64           `json:"compatibility_score"`
	FusionStyle        genre.FusionStyle `json:"fusion_style"`
	Strategy           Strategy          `json:"vocabulary_strategy"`
	Method             string            `json:"method"`
}

// Result is one ranked fusion output.
type Result struct {
	Name         string   `json:"name"`
	Metadata     Metadata `json:"metadata"`
	QualityScore float64  `json:"quality_score"`
	Explanations []string `json:"explanations"`
}

// Engine fuses two genres into hybrid names. It leans on the selection
// engine for the interweaving method and is otherwise stateless.
type Engine struct {
	selector *selection.Engine
}

// NewEngine creates a fusion engine.
func NewEngine() *Engine {
	return &Engine{selector: selection.NewEngine()}
}

// Fuse generates, validates and ranks hybrid names for a genre pair. The
// pair must exist in the compatibility model; order does not matter. More
// candidates than requested are generated and the survivors ranked by
// quality, so callers receive the requested count whenever the vocabulary
// allows it.
func (e *Engine) Fuse(req Request, src *wordsource.Source, g *guard.Guard, rng *rand.Rand) ([]Result, error) {
	entry, ok := genre.Compatibility(req.PrimaryGenre, req.SecondaryGenre)
	if !ok {
		return nil, ErrIncompatibleGenres
	}
	if g == nil {
		g = guard.New()
	}
	if src == nil {
		src = wordsource.Default(strings.ToLower(req.PrimaryGenre))
	}
	req = req.withDefaults()

	vocab := buildVocabulary(req, entry, src)
	methods := methodOrder(req.Intensity)

	target := req.Count * overgenerationFactor
	budget := target * attemptMultiplier

	seen := make(map[string]bool)
	candidates := make([]Result, 0, target)

	for attempt := 0; attempt < budget && len(candidates) < target; attempt++ {
		name, method := e.tryMethods(methods, vocab, req, src, g, rng)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		quality := scoreQuality(name, req, entry, vocab)
		if !validate(name, req, quality) {
			continue
		}

		candidates = append(candidates, Result{
			Name: name,
			Metadata: Metadata{
				PrimaryGenre:       strings.ToLower(req.PrimaryGenre),
				SecondaryGenre:     strings.ToLower(req.SecondaryGenre),
				CompatibilityScore: entry.Score,
				FusionStyle:        entry.Style,
				Strategy:           vocab.Strategy,
				Method:             method,
			},
			QualityScore: quality,
			Explanations: explain(name, method, vocab, entry),
		})
	}

	if len(candidates) == 0 {
		return nil, ErrFusionExhausted
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].QualityScore > candidates[j].QualityScore
	})

	// The guard arbitrates the final picks so results within one call do
	// not collide with each other or with earlier session output.
	out := make([]Result, 0, req.Count)
	for _, c := range candidates {
		if len(out) == req.Count {
			break
		}
		if g.ShouldReject(c.Name) {
			continue
		}
		g.Accept(c.Name)
		out = append(out, c)
	}

	// Guard pressure can starve the pick loop even when valid candidates
	// exist. Top up from the ranked list rather than under-delivering.
	for _, c := range candidates {
		if len(out) == req.Count {
			break
		}
		if containsResult(out, c.Name) {
			continue
		}
		out = append(out, c)
	}

	if len(out) == 0 {
		return nil, ErrFusionExhausted
	}
	return out, nil
}

// tryMethods walks the ordered method list until one yields a usable name.
func (e *Engine) tryMethods(methods []string, vocab *Vocabulary, req Request, src *wordsource.Source, g *guard.Guard, rng *rand.Rand) (string, string) {
	for _, method := range methods {
		name := e.runMethod(method, vocab, req, src, g, rng)
		if len(name) >= minNameLength {
			return name, method
		}
	}
	return "", ""
}

func (r Request) withDefaults() Request {
	if r.WordCount <= 0 {
		r.WordCount = defaultWordCount
	}
	if r.Count <= 0 {
		r.Count = defaultCount
	}
	if r.CreativityLevel < 0 {
		r.CreativityLevel = 0
	}
	if r.CreativityLevel > 1 {
		r.CreativityLevel = 1
	}
	return r
}

func containsResult(results []Result, name string) bool {
	for _, r := range results {
		if r.Name == name {
			return true
		}
	}
	return false
}

func explain(name, method string, vocab *Vocabulary, entry genre.CompatibilityEntry) []string {
	notes := []string{
		"method: " + methodDescription(method),
		"vocabulary strategy: " + string(vocab.Strategy),
	}
	lower := strings.ToLower(name)
	for _, term := range vocab.Hybrid {
		if strings.Contains(lower, term) {
			notes = append(notes, "uses hybrid term \""+term+"\"")
			break
		}
	}
	for _, syn := range entry.Synergies {
		if strings.Contains(lower, syn) {
			notes = append(notes, "keyed on synergy \""+syn+"\"")
			break
		}
	}
	return notes
}
