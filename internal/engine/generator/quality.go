package generator

import (
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// Quality blend shares for plain-path candidates.
const (
	structureShare = 0.35
	varietyShare   = 0.35
	resonanceShare = 0.30

	offTargetFit = 0.6

	// Word lengths inside this band read well on a poster; outside it
	// names tend toward either filler or a mouthful.
	goodWordLenLow  = 4
	goodWordLenHigh = 9

	musicalResonance = 0.6
	genreResonance   = 0.4
)

// scoreName estimates quality for one plain-path candidate in [0,1]:
// structural fit to the requested shape, word variety, and resonance with
// the musical or genre vocabulary.
func scoreName(name string, req Request, src *wordsource.Source) float64 {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return 0
	}

	structure := offTargetFit
	if len(words) == req.WordCount {
		structure = 1.0
	}

	distinct := make(map[string]bool, len(words))
	inBand := 0
	for _, w := range words {
		distinct[w] = true
		if len(w) >= goodWordLenLow && len(w) <= goodWordLenHigh {
			inBand++
		}
	}
	variety := 0.5*(float64(len(distinct))/float64(len(words))) +
		0.5*(float64(inBand)/float64(len(words)))

	resonance := 0.0
	genreSet := make(map[string]bool)
	for _, term := range wordsource.GenreTerms(req.Genre) {
		genreSet[term] = true
	}
	if src != nil {
		for _, term := range src.Filtered(wordsource.CategoryGenreTerms) {
			genreSet[term] = true
		}
	}
	for _, w := range words {
		if wordsource.IsMusicalTerm(w) {
			resonance += musicalResonance
		}
		if genreSet[w] {
			resonance += genreResonance
		}
	}
	if resonance > 1 {
		resonance = 1
	}

	score := structureShare*structure + varietyShare*variety + resonanceShare*resonance
	if score > 1 {
		return 1
	}
	return score
}
