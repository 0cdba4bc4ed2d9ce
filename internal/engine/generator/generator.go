package generator

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/fusion"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/mood"
	"github.com/soundhatch/namesmith-api/internal/engine/selection"
	"github.com/soundhatch/namesmith-api/internal/engine/templates"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
	"github.com/soundhatch/namesmith-api/internal/logger"
)

const (
	defaultCount = 4

	// overgenerationFactor controls how many candidates the plain path
	// drafts per requested result before ranking.
	overgenerationFactor = 3

	// attemptMultiplier bounds the raw draw loop so hostile criteria
	// cannot spin forever.
	attemptMultiplier = 6

	// openRangeMin and openRangeSpan shape the "4+" word-count request.
	openRangeMin  = 4
	openRangeSpan = 3
)

// How a result was produced.
const (
	SourceTemplate = "template"
	SourceDynamic  = "dynamic"
	SourceFusion   = "fusion"
	SourceFallback = "fallback"
)

// Request is a normalized-on-entry generation request. SecondaryGenre
// switches the run onto the fusion path.
type Request struct {
	Type           string `json:"type"` // band or song
	Genre          string `json:"genre,omitempty"`
	SecondaryGenre string `json:"secondary_genre,omitempty"`
	Mood           string `json:"mood,omitempty"`

	// WordCount of 0 lets the driver choose; OpenRange asks for a longer
	// 4-6 word shape regardless of WordCount.
	WordCount int  `json:"word_count,omitempty"`
	OpenRange bool `json:"open_range,omitempty"`

	Count int `json:"count,omitempty"`

	Atmosphere     *mood.Context `json:"atmosphere,omitempty"`
	AtmosphereName string        `json:"atmosphere_name,omitempty"`
	MoodDriven     bool          `json:"mood_driven,omitempty"`

	AvoidCategories  []string `json:"avoid_categories,omitempty"`
	PreferCategories []string `json:"prefer_categories,omitempty"`

	Intensity            string  `json:"intensity,omitempty"`
	CreativityLevel      float64 `json:"creativity_level,omitempty"`
	PreserveAuthenticity bool    `json:"preserve_authenticity,omitempty"`
	CulturalSensitivity  bool    `json:"cultural_sensitivity,omitempty"`
}

// Result is one emitted name with its provenance and quality.
type Result struct {
	Name         string           `json:"name"`
	QualityScore float64          `json:"quality_score"`
	Source       string           `json:"source"`
	TemplateID   string           `json:"template_id,omitempty"`
	Category     string           `json:"category,omitempty"`
	Fusion       *fusion.Metadata `json:"fusion,omitempty"`
}

// Generator is the orchestration root: it normalizes a request, drafts
// candidates through the selection or fusion engines, filters them
// through the repetition guard, and ranks the survivors.
type Generator struct {
	selector *selection.Engine
	fuser    *fusion.Engine
}

// New creates a generator.
func New() *Generator {
	return &Generator{
		selector: selection.NewEngine(),
		fuser:    fusion.NewEngine(),
	}
}

// Generate runs one request end to end. Engine errors never surface as
// empty output: every failure substitutes the curated fallback pool, so
// callers always receive min(count, fallback-pool-size) names or better.
func (g *Generator) Generate(req Request, src *wordsource.Source, gd *guard.Guard, rng *rand.Rand) []Result {
	if gd == nil {
		gd = guard.New()
	}
	req = g.normalize(req, rng)
	if src == nil {
		src = wordsource.Default(req.Genre)
	}

	if req.SecondaryGenre != "" {
		return g.generateFusion(req, src, gd, rng)
	}
	return g.generatePlain(req, src, gd, rng)
}

// BuildSource turns an untyped category map into a word source, falling
// back to the built-in pools when the payload is malformed or empty.
func (g *Generator) BuildSource(name string, raw map[string]any, genreName string) *wordsource.Source {
	if len(raw) == 0 {
		return wordsource.Default(strings.ToLower(genreName))
	}
	src, err := wordsource.FromUntyped(name, raw)
	if err != nil {
		logger.Warn("word source rejected, using built-in pools", logger.Fields{
			"source": name,
			"error":  err.Error(),
		})
		return wordsource.Default(strings.ToLower(genreName))
	}
	return src.Merge(wordsource.Default(strings.ToLower(genreName)), name)
}

func (g *Generator) normalize(req Request, rng *rand.Rand) Request {
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if req.Type != "song" {
		req.Type = "band"
	}
	req.Genre = strings.ToLower(strings.TrimSpace(req.Genre))
	req.SecondaryGenre = strings.ToLower(strings.TrimSpace(req.SecondaryGenre))
	req.Mood = strings.ToLower(strings.TrimSpace(req.Mood))

	if req.Count <= 0 {
		req.Count = defaultCount
	}
	switch {
	case req.OpenRange:
		req.WordCount = openRangeMin + rng.Intn(openRangeSpan)
	case req.WordCount <= 0:
		req.WordCount = 2 + rng.Intn(2)
	}
	if req.CreativityLevel < 0 {
		req.CreativityLevel = 0
	}
	if req.CreativityLevel > 1 {
		req.CreativityLevel = 1
	}
	return req
}

func (g *Generator) generatePlain(req Request, src *wordsource.Source, gd *guard.Guard, rng *rand.Rand) []Result {
	session := selection.NewSession(selection.Criteria{
		WordCount:        req.WordCount,
		Type:             req.Type,
		Genre:            req.Genre,
		Mood:             req.Mood,
		Atmosphere:       req.Atmosphere,
		AtmosphereName:   req.AtmosphereName,
		MoodDriven:       req.MoodDriven,
		AvoidCategories:  req.AvoidCategories,
		PreferCategories: req.PreferCategories,
		Intensity:        req.Intensity,
		CreativityLevel:  req.CreativityLevel,
	}, gd, rng)

	target := req.Count * overgenerationFactor
	budget := target * attemptMultiplier

	seen := make(map[string]bool)
	candidates := make([]Result, 0, target)

	for attempt := 0; attempt < budget && len(candidates) < target; attempt++ {
		result := g.draftOne(session, req, src, rng)
		if result.Name == "" {
			continue
		}
		key := strings.ToLower(result.Name)
		if seen[key] || gd.ShouldReject(result.Name) {
			continue
		}
		seen[key] = true

		result.QualityScore = scoreName(result.Name, req, src)
		candidates = append(candidates, result)
	}

	if len(candidates) == 0 {
		logger.Warn("generation drafted nothing, using fallback pool", logger.Fields{
			"genre":      req.Genre,
			"word_count": req.WordCount,
		})
		return fallbackResults(req, gd)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].QualityScore > candidates[j].QualityScore
	})

	// Re-check each winner against the guard as it is accepted, so names
	// sharing a significant word do not land in the same batch. Draft-time
	// screening cannot see the batch it is building.
	out := make([]Result, 0, req.Count)
	for _, c := range candidates {
		if len(out) == req.Count {
			break
		}
		if gd.ShouldReject(c.Name) {
			continue
		}
		session.Accept(c.Name)
		out = append(out, c)
	}
	if len(out) < req.Count {
		out = padWithFallback(out, req, gd)
	}
	return out
}

// draftOne produces a single candidate, falling back to the dynamic
// assembler when no catalog template is eligible.
func (g *Generator) draftOne(session *selection.Session, req Request, src *wordsource.Source, rng *rand.Rand) Result {
	tpl, err := g.selector.Select(session)
	if err != nil {
		if errors.Is(err, selection.ErrNoEligibleTemplates) {
			return Result{
				Name:   selection.DynamicPhrase(src, req.WordCount, rng),
				Source: SourceDynamic,
			}
		}
		return Result{}
	}

	name := templates.Generate(tpl, src, templates.Context{
		Type:            req.Type,
		Genre:           req.Genre,
		Mood:            req.Mood,
		WordCount:       req.WordCount,
		Intensity:       req.Intensity,
		CreativityLevel: req.CreativityLevel,
	}, rng)

	return Result{
		Name:       name,
		Source:     SourceTemplate,
		TemplateID: tpl.ID,
		Category:   tpl.Category,
	}
}

func (g *Generator) generateFusion(req Request, src *wordsource.Source, gd *guard.Guard, rng *rand.Rand) []Result {
	results, err := g.fuser.Fuse(fusion.Request{
		PrimaryGenre:         req.Genre,
		SecondaryGenre:       req.SecondaryGenre,
		Mood:                 req.Mood,
		WordCount:            req.WordCount,
		Count:                req.Count,
		Intensity:            req.Intensity,
		CreativityLevel:      req.CreativityLevel,
		PreserveAuthenticity: req.PreserveAuthenticity,
	}, src, gd, rng)
	if err != nil {
		logger.Warn("fusion failed, using fallback pool", logger.Fields{
			"primary":   req.Genre,
			"secondary": req.SecondaryGenre,
			"error":     err.Error(),
		})
		return fallbackResults(req, gd)
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		meta := r.Metadata
		out = append(out, Result{
			Name:         r.Name,
			QualityScore: r.QualityScore,
			Source:       SourceFusion,
			Fusion:       &meta,
		})
	}
	if len(out) < req.Count {
		out = padWithFallback(out, req, gd)
	}
	return out
}
