package selection

import (
	"errors"

	"github.com/soundhatch/namesmith-api/internal/engine/templates"
)

// ErrNoEligibleTemplates means the eligibility filter left nothing for the
// requested shape. Callers should broaden constraints or use the dynamic
// fallback generator.
var ErrNoEligibleTemplates = errors.New("no eligible templates for criteria")

const (
	// scoreEpsilon keeps zero-scored templates reachable under weighted
	// sampling so repeated identical requests stay varied.
	scoreEpsilon = 0.01

	// diversityBoost multiplies scores of templates whose category or
	// subcategory has not been used yet within a multi-select batch.
	diversityBoost = 1.3
)

// Engine scores and stochastically selects templates. It is stateless; all
// per-request state lives on the Session.
type Engine struct{}

// NewEngine creates a selection engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Eligible applies the eligibility filter: word-count coverage, type fit,
// genre/mood restriction sets, then the caller's avoid list.
func (e *Engine) Eligible(s *Session) []templates.Template {
	c := s.Criteria
	pool := templates.ForWordCount(c.WordCount)
	out := make([]templates.Template, 0, len(pool))
	for _, tpl := range pool {
		if !tpl.FitsType(c.Type) {
			continue
		}
		if !tpl.AllowsGenre(c.Genre) {
			continue
		}
		if !tpl.AllowsMood(c.Mood) {
			continue
		}
		if c.avoids(tpl.Category) {
			continue
		}
		out = append(out, tpl)
	}
	return out
}

// Select picks one template for the session's criteria via weighted random
// sampling over the factor scores, never pure arg-max. The accepted
// template is recorded on the guard.
func (e *Engine) Select(s *Session) (templates.Template, error) {
	candidates := e.Eligible(s)
	if len(candidates) == 0 {
		return templates.Template{}, ErrNoEligibleTemplates
	}

	scores := make([]float64, len(candidates))
	for i, tpl := range candidates {
		scores[i] = scoreTemplate(tpl, s)
	}

	picked := weightedPick(candidates, scores, s)
	s.Guard.NoteTemplate(picked.ID, picked.Category, picked.Subcategory)
	return picked, nil
}

// SelectMany draws n templates for a diverse batch: after each pick the
// picked template leaves the pool and candidates in unused categories get
// a score boost. Fewer than n templates may return when the pool runs dry.
func (e *Engine) SelectMany(s *Session, n int) ([]templates.Template, error) {
	candidates := e.Eligible(s)
	if len(candidates) == 0 {
		return nil, ErrNoEligibleTemplates
	}

	picked := make([]templates.Template, 0, n)
	usedCategories := make(map[string]bool)
	usedSubcategories := make(map[string]bool)

	for len(picked) < n && len(candidates) > 0 {
		scores := make([]float64, len(candidates))
		for i, tpl := range candidates {
			score := scoreTemplate(tpl, s)
			if !usedCategories[tpl.Category] {
				score *= diversityBoost
			}
			if !usedSubcategories[tpl.Subcategory] {
				score *= diversityBoost
			}
			scores[i] = score
		}

		choice := weightedPick(candidates, scores, s)
		picked = append(picked, choice)
		usedCategories[choice.Category] = true
		usedSubcategories[choice.Subcategory] = true
		s.Guard.NoteTemplate(choice.ID, choice.Category, choice.Subcategory)

		// Sampling without replacement across the candidate pool.
		remaining := candidates[:0]
		for _, tpl := range candidates {
			if tpl.ID != choice.ID {
				remaining = append(remaining, tpl)
			}
		}
		candidates = remaining
	}

	return picked, nil
}

// weightedPick samples proportionally to score, with every score floored at
// a small epsilon. The floor keeps the total positive for any non-empty
// candidate list, so an all-zero score vector degrades to a uniform pick.
func weightedPick(candidates []templates.Template, scores []float64, s *Session) templates.Template {
	total := 0.0
	for i, score := range scores {
		if score < scoreEpsilon {
			scores[i] = scoreEpsilon
		}
		total += scores[i]
	}

	target := s.Rng.Float64() * total
	running := 0.0
	for i, score := range scores {
		running += score
		if target < running {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}
