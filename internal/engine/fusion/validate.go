package fusion

import (
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// Validation thresholds.
const (
	minNameLength      = 3
	wordCountTolerance = 1
	minQuality         = 0.3
	minAuthenticity    = 0.5
)

// Quality blend shares.
const (
	structureShare  = 0.40
	compatShare     = 0.35
	innovationShare = 0.25

	exactCountFit   = 1.0
	offByOneFit     = 0.7
	hybridTermBonus = 0.6
	blendTermBonus  = 0.4
	synergyBonus    = 0.3
)

// Authenticity heuristic.
const (
	authenticityBase    = 0.7
	syntheticPenalty    = 0.15
	musicalTermBonus    = 0.1
	maxMusicalBonuses   = 2
	maxSyntheticPenalty = 2
)

// syntheticAffixes mark names that sound like forced tech branding.
var syntheticAffixes = []string{
	"cyber", "neo", "xtreme", "2000", "tron", "bot", "droid",
	"mega", "ultra", "hyper", "matic",
}

// validate applies the acceptance gate to one candidate.
func validate(name string, req Request, quality float64) bool {
	if len(name) < minNameLength {
		return false
	}
	diff := len(strings.Fields(name)) - req.WordCount
	if diff < -wordCountTolerance || diff > wordCountTolerance {
		return false
	}
	if quality < minQuality {
		return false
	}
	if req.PreserveAuthenticity && authenticity(name) < minAuthenticity {
		return false
	}
	return true
}

// authenticity estimates how much a name sounds like a real act rather
// than forced branding: synthetic affixes pull it down, recognized
// musical vocabulary pulls it up.
func authenticity(name string) float64 {
	lower := strings.ToLower(name)
	score := authenticityBase

	penalties := 0
	for _, affix := range syntheticAffixes {
		if strings.Contains(lower, affix) {
			penalties++
			if penalties == maxSyntheticPenalty {
				break
			}
		}
	}
	score -= float64(penalties) * syntheticPenalty

	bonuses := 0
	for _, word := range strings.Fields(lower) {
		if wordsource.IsMusicalTerm(word) {
			bonuses++
			if bonuses == maxMusicalBonuses {
				break
			}
		}
	}
	score += float64(bonuses) * musicalTermBonus

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// scoreQuality ranks a candidate by structural fit to the requested
// shape, the pair's stored compatibility, and an innovation factor that
// rewards hybrid and conceptual-blend vocabulary.
func scoreQuality(name string, req Request, entry genre.CompatibilityEntry, vocab *Vocabulary) float64 {
	structure := 0.0
	switch diff := len(strings.Fields(name)) - req.WordCount; {
	case diff == 0:
		structure = exactCountFit
	case diff >= -wordCountTolerance && diff <= wordCountTolerance:
		structure = offByOneFit
	}

	innovation := 0.0
	lower := strings.ToLower(name)
	for _, term := range vocab.Hybrid {
		if strings.Contains(lower, term) {
			innovation += hybridTermBonus
			break
		}
	}
	for _, blend := range vocab.Blends {
		if strings.EqualFold(name, blend) {
			innovation += blendTermBonus
			break
		}
	}
	for _, syn := range entry.Synergies {
		if strings.Contains(lower, syn) {
			innovation += synergyBonus
			break
		}
	}
	if innovation > 1 {
		innovation = 1
	}

	return structureShare*structure + compatShare*entry.Score + innovationShare*innovation
}
