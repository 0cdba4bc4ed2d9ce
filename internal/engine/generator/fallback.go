package generator

import (
	"strings"

	"github.com/soundhatch/namesmith-api/internal/engine/guard"
)

// fallbackQuality is reported for curated names: serviceable, never
// outranking a real draft.
const fallbackQuality = 0.35

// Curated fallback pools, used whenever the engines come up empty. Kept
// deliberately broad in style so they read plausibly under any genre.
var bandFallbacks = []string{
	"The Silver Tides",
	"Velvet Hollow",
	"Northern Sparrows",
	"Ember Circuit",
	"The Midnight Cartographers",
	"Paper Lanterns",
	"Iron Orchard",
	"The Restless Keys",
}

var songFallbacks = []string{
	"Echoes of the Harbor",
	"Under Borrowed Light",
	"The Last Ferry Home",
	"Glass and Gasoline",
	"Somewhere the Rain Began",
	"Ashes in the Choir",
	"A Map of Missing Stars",
	"The Quiet After",
}

// fallbackPool returns the curated list for a request type.
func fallbackPool(reqType string) []string {
	if reqType == "song" {
		return songFallbacks
	}
	return bandFallbacks
}

// fallbackResults converts the curated pool into results, honoring the
// guard where possible but never returning fewer than
// min(count, pool size) names.
func fallbackResults(req Request, gd *guard.Guard) []Result {
	return padWithFallback(nil, req, gd)
}

// padWithFallback tops up a result list from the curated pool. Guard
// rejections are respected on the first pass and ignored on the second,
// since delivering names outranks novelty at this point.
func padWithFallback(out []Result, req Request, gd *guard.Guard) []Result {
	used := make(map[string]bool, len(out))
	for _, r := range out {
		used[strings.ToLower(r.Name)] = true
	}
	pool := fallbackPool(req.Type)

	add := func(respectGuard bool) {
		for _, name := range pool {
			if len(out) == req.Count {
				return
			}
			if used[strings.ToLower(name)] {
				continue
			}
			if respectGuard && gd.ShouldReject(name) {
				continue
			}
			used[strings.ToLower(name)] = true
			gd.Accept(name)
			out = append(out, Result{
				Name:         name,
				QualityScore: fallbackQuality,
				Source:       SourceFallback,
			})
		}
	}
	add(true)
	add(false)
	return out
}
