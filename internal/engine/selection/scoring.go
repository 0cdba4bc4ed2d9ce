package selection

import (
	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/mood"
	"github.com/soundhatch/namesmith-api/internal/engine/templates"
)

// Factor weights. The mood-driven path replaces part of the context-match
// weight rather than stacking on top of it.
const (
	contextWeight   = 0.40
	qualityWeight   = 0.25
	freshnessWeight = 0.20
	priorWeight     = 0.15

	moodContextWeight = 0.25
	moodAlignWeight   = 0.30
	moodQualityWeight = 0.20
	moodFreshWeight   = 0.15
	moodPriorWeight   = 0.10

	// moodConfidenceFloor gates the mood-driven path: below it the engine
	// falls back to traditional context scoring. Tunable, not contractual.
	moodConfidenceFloor = 0.4
)

// Context-match components.
const (
	genreCategoryBonus  = 0.50
	moodCategoryBonus   = 0.30
	genreAvoidPenalty   = 0.40
	preferCategoryBonus = 0.20
	typeFitBonus        = 0.10
	intensityBonus      = 0.10
	creativityBonus     = 0.10
	highCreativity      = 0.7
)

// Intrinsic-quality components: enough documented examples, and a prior
// weight in the "not too common, not too rare" band.
const (
	minDocumentedExamples = 3
	exampleScoreShare     = 0.5
	weightBandLow         = 0.1
	weightBandHigh        = 0.3
	weightBandShare       = 0.5
	weightOffBandShare    = 0.2
)

// Freshness penalties.
const (
	recentTemplatePenalty     = 0.6
	categoryUseThreshold      = 3
	subcategoryUseThreshold   = 2
	categoryOverusePenalty    = 0.3
	subcategoryOverusePenalty = 0.2
)

// scoreContext measures category alignment with the genre and mood lookup
// tables, plus small bonuses for type fit, intensity and creativity
// alignment. Normalized to [0,1].
func scoreContext(tpl templates.Template, c Criteria) float64 {
	score := 0.0

	if containsString(genre.CategoriesFor(c.Genre), tpl.Category) {
		score += genreCategoryBonus
	}
	if genre.Avoids(c.Genre, tpl.Category) {
		score -= genreAvoidPenalty
	}
	if containsString(mood.CategoriesFor(c.Mood), tpl.Category) {
		score += moodCategoryBonus
	}
	if c.prefers(tpl.Category) {
		score += preferCategoryBonus
	}

	// Type fit: type-specific templates get a nudge when they match.
	if (c.Type == "band" && tpl.BandOnly) || (c.Type == "song" && tpl.SongOnly) {
		score += typeFitBonus
	}

	switch c.Intensity {
	case "bold", "experimental":
		if tpl.Category == templates.CategoryAggressive || tpl.Category == templates.CategoryEnergetic ||
			tpl.Category == templates.CategoryCosmic {
			score += intensityBonus
		}
	case "subtle":
		if tpl.Category == templates.CategoryMinimal || tpl.Category == templates.CategoryNature {
			score += intensityBonus
		}
	}

	if c.CreativityLevel >= highCreativity {
		if tpl.Category == templates.CategoryAbstract || tpl.Category == templates.CategoryCosmic ||
			tpl.Category == templates.CategoryMystic {
			score += creativityBonus
		}
	}

	return clamp01(score)
}

// scoreQuality rewards templates with enough documented examples and a
// prior weight inside the preferred band.
func scoreQuality(tpl templates.Template) float64 {
	score := 0.0

	examples := float64(len(tpl.Examples)) / minDocumentedExamples
	if examples > 1 {
		examples = 1
	}
	score += examples * exampleScoreShare

	if tpl.Weight >= weightBandLow && tpl.Weight <= weightBandHigh {
		score += weightBandShare
	} else {
		score += weightOffBandShare
	}

	return clamp01(score)
}

// scoreFreshness penalizes templates the guard has seen recently and
// categories used past their thresholds inside the decay window.
func scoreFreshness(tpl templates.Template, g *guard.Guard) float64 {
	score := 1.0
	if g.IsRecentTemplate(tpl.ID) {
		score -= recentTemplatePenalty
	}
	if g.CategoryUse(tpl.Category) > categoryUseThreshold {
		score -= categoryOverusePenalty
	}
	if g.SubcategoryUse(tpl.Subcategory) > subcategoryUseThreshold {
		score -= subcategoryOverusePenalty
	}
	return clamp01(score)
}

// scoreTemplate combines the factors under the active weighting scheme.
// The mood path only engages when mood-driven mode is requested and the
// alignment confidence clears the floor.
func scoreTemplate(tpl templates.Template, s *Session) float64 {
	c := s.Criteria
	context := scoreContext(tpl, c)
	quality := scoreQuality(tpl)
	freshness := scoreFreshness(tpl, s.Guard)
	prior := clamp01(tpl.Weight / weightBandHigh)

	if c.MoodDriven && c.Mood != "" {
		align := mood.Score(tpl.Category, c.Mood, c.Atmosphere, c.AtmosphereName)
		if align.Confidence >= moodConfidenceFloor {
			return moodContextWeight*context +
				moodAlignWeight*align.Score +
				moodQualityWeight*quality +
				moodFreshWeight*freshness +
				moodPriorWeight*prior
		}
	}

	return contextWeight*context +
		qualityWeight*quality +
		freshnessWeight*freshness +
		priorWeight*prior
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
