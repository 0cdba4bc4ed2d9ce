package mood

// Alignment is a mood-driven fit score for a template, with a confidence
// the caller uses to decide whether to trust it over traditional context
// matching.
type Alignment struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

const (
	dominantTraitCount   = 3
	neutralScore         = 0.3
	atmosphereBonus      = 0.15
	atmospherePenalty    = 0.2
	overlapWeight        = 0.6
	magnitudeWeight      = 0.4
	baseConfidence       = 0.35
	affinityConfidence   = 0.25
	descriptorConfidence = 0.08
	atmosphereConfidence = 0.1
	maxDescriptorBonuses = 4
)

// Score computes how well a template category aligns with a mood under an
// optional atmospheric context and named atmosphere. Unknown moods yield a
// zero-confidence result so callers fall back to non-mood scoring.
func Score(category, moodName string, ctx *Context, atmosphereName string) Alignment {
	vec, ok := Resolve(moodName, ctx)
	if !ok {
		return Alignment{}
	}

	affinities := categoryAffinity[category]
	confidence := baseConfidence
	var score float64

	if len(affinities) == 0 {
		score = neutralScore
	} else {
		confidence += affinityConfidence

		// Overlap between the category's trait affinities and the resolved
		// vector's dominant traits.
		dominant := make(map[string]bool, dominantTraitCount)
		for _, t := range DominantTraits(vec, dominantTraitCount) {
			dominant[t] = true
		}
		matched := 0
		magnitude := 0.0
		for _, trait := range affinities {
			if dominant[trait] {
				matched++
			}
			magnitude += float64(axisValue(vec, trait)) / 100
		}
		overlap := float64(matched) / float64(len(affinities))
		magnitude /= float64(len(affinities))
		score = overlapWeight*overlap + magnitudeWeight*magnitude
	}

	if ctx != nil {
		descriptors := 0
		for _, d := range []string{ctx.TimeOfDay, ctx.Season, ctx.Weather, ctx.Culture} {
			if d != "" {
				descriptors++
			}
		}
		if descriptors > maxDescriptorBonuses {
			descriptors = maxDescriptorBonuses
		}
		confidence += float64(descriptors) * descriptorConfidence
	}

	if atmosphereName != "" {
		if atm, ok := LibraryProfile(atmosphereName); ok {
			confidence += atmosphereConfidence
			if contains(atm.CompatibleMoods, moodName) {
				score += atmosphereBonus
			}
			if contains(atm.ConflictingMoods, moodName) {
				score -= atmospherePenalty
			}
		}
	}

	return Alignment{Score: clamp01(score), Confidence: clamp01(confidence)}
}

func contains(list []string, v string) bool {
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
