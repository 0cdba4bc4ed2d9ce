package genre

import "strings"

// FusionStyle classifies how two genres blend.
type FusionStyle string

const (
	StyleComplement FusionStyle = "complement" // shared DNA, smooth blend
	StyleContrast   FusionStyle = "contrast"   // opposing textures played against each other
	StyleHybrid     FusionStyle = "hybrid"     // established hybrid scene exists
	StyleEvolution  FusionStyle = "evolution"  // one genre grew out of the other
)

// CompatibilityEntry describes one unordered genre pair.
type CompatibilityEntry struct {
	Score            float64 // 0-1, how naturally the pair fuses
	Style            FusionStyle
	Synergies        []string // thematic keywords both genres respond to
	HybridTerms      []string // vocabulary pre-associated with both genres
	ConceptualBlends []string // multi-word constructs evoking the pairing
}

// pairKey builds the canonical unordered key for two genres.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// compatibility is the curated pairwise table. Keys are canonical unordered
// pairs; lookups work in either order.
var compatibility = map[string]CompatibilityEntry{
	pairKey("electronic", "jazz"): {
		Score: 0.85, Style: StyleHybrid,
		Synergies:        []string{"improvisation", "texture", "night", "smoke"},
		HybridTerms:      []string{"nujazz", "circuitry", "bluewire", "modal"},
		ConceptualBlends: []string{"analog midnight", "electric lounge", "modular swing"},
	},
	pairKey("electronic", "rock"): {
		Score: 0.80, Style: StyleHybrid,
		Synergies:        []string{"voltage", "drive", "distortion", "pulse"},
		HybridTerms:      []string{"synthrock", "wireframe", "overdrive"},
		ConceptualBlends: []string{"electric engine", "neon garage"},
	},
	pairKey("electronic", "classical"): {
		Score: 0.70, Style: StyleContrast,
		Synergies:        []string{"texture", "architecture", "resonance"},
		HybridTerms:      []string{"synthony", "modular", "glasswork"},
		ConceptualBlends: []string{"marble circuit", "digital nocturne"},
	},
	pairKey("ambient", "electronic"): {
		Score: 0.92, Style: StyleEvolution,
		Synergies:        []string{"drift", "space", "signal", "texture"},
		HybridTerms:      []string{"driftware", "slowwave", "expanse"},
		ConceptualBlends: []string{"signal fog", "glacial pulse"},
	},
	pairKey("ambient", "classical"): {
		Score: 0.82, Style: StyleComplement,
		Synergies:        []string{"stillness", "resonance", "space"},
		HybridTerms:      []string{"neoclassical", "hush", "chamberdrift"},
		ConceptualBlends: []string{"marble fog", "slow cathedral"},
	},
	pairKey("jazz", "hiphop"): {
		Score: 0.88, Style: StyleHybrid,
		Synergies:        []string{"flow", "swing", "sample", "smoke"},
		HybridTerms:      []string{"boombap", "brassflow", "loophouse"},
		ConceptualBlends: []string{"velvet cipher", "brass skyline"},
	},
	pairKey("blues", "rock"): {
		Score: 0.90, Style: StyleEvolution,
		Synergies:        []string{"gravel", "highway", "trouble", "amplifier"},
		HybridTerms:      []string{"roadhouse", "bluespower", "slideburn"},
		ConceptualBlends: []string{"delta voltage", "crossroad engine"},
	},
	pairKey("country", "rock"): {
		Score: 0.78, Style: StyleComplement,
		Synergies:        []string{"highway", "dust", "sunset", "engine"},
		HybridTerms:      []string{"outlaw", "twangbone", "heartland"},
		ConceptualBlends: []string{"dust engine", "backroad anthem"},
	},
	pairKey("folk", "rock"): {
		Score: 0.76, Style: StyleEvolution,
		Synergies:        []string{"harvest", "road", "storyteller"},
		HybridTerms:      []string{"rootstock", "timberline", "hollowbody"},
		ConceptualBlends: []string{"electric orchard", "amplified hearth"},
	},
	pairKey("folk", "electronic"): {
		Score: 0.55, Style: StyleContrast,
		Synergies:        []string{"texture", "drone", "field"},
		HybridTerms:      []string{"folktronica", "wirewood", "lanternwave"},
		ConceptualBlends: []string{"digital harvest", "electric willow"},
	},
	pairKey("metal", "classical"): {
		Score: 0.72, Style: StyleComplement,
		Synergies:        []string{"grandeur", "doom", "cathedral", "ornament"},
		HybridTerms:      []string{"symphonicore", "operatic", "requiem"},
		ConceptualBlends: []string{"iron overture", "marble inferno"},
	},
	pairKey("metal", "electronic"): {
		Score: 0.68, Style: StyleHybrid,
		Synergies:        []string{"machine", "industry", "voltage"},
		HybridTerms:      []string{"industrial", "gridcrusher", "ironwave"},
		ConceptualBlends: []string{"machine wrath", "steel circuit"},
	},
	pairKey("punk", "pop"): {
		Score: 0.74, Style: StyleHybrid,
		Synergies:        []string{"hook", "snarl", "sugar", "speed"},
		HybridTerms:      []string{"poppunk", "bubblegrit", "candyriot"},
		ConceptualBlends: []string{"sugar riot", "glitter wreck"},
	},
	pairKey("pop", "synthwave"): {
		Score: 0.84, Style: StyleComplement,
		Synergies:        []string{"shimmer", "neon", "heartbeat", "chrome"},
		HybridTerms:      []string{"retropop", "gridheart", "chromekiss"},
		ConceptualBlends: []string{"neon heartbeat", "chrome confetti"},
	},
	pairKey("reggae", "hiphop"): {
		Score: 0.80, Style: StyleComplement,
		Synergies:        []string{"riddim", "flow", "roots", "block"},
		HybridTerms:      []string{"dancehall", "dubflow", "soundclash"},
		ConceptualBlends: []string{"concrete island", "rootz cipher"},
	},
	pairKey("indie", "folk"): {
		Score: 0.86, Style: StyleComplement,
		Synergies:        []string{"attic", "porch", "postcard", "lantern"},
		HybridTerms:      []string{"freakfolk", "atticsong", "wildflower"},
		ConceptualBlends: []string{"suburban orchard", "postcard harvest"},
	},
	pairKey("indie", "electronic"): {
		Score: 0.75, Style: StyleHybrid,
		Synergies:        []string{"bedroom", "texture", "satellite"},
		HybridTerms:      []string{"chillwave", "bedroomtronic", "tapehiss"},
		ConceptualBlends: []string{"satellite attic", "cassette signal"},
	},
	pairKey("jazz", "classical"): {
		Score: 0.77, Style: StyleComplement,
		Synergies:        []string{"chamber", "improvisation", "nocturne"},
		HybridTerms:      []string{"thirdstream", "chambermuse", "bluenote"},
		ConceptualBlends: []string{"velvet chamber", "midnight opus"},
	},
	pairKey("ambient", "folk"): {
		Score: 0.64, Style: StyleContrast,
		Synergies:        []string{"field", "stillness", "drone"},
		HybridTerms:      []string{"slowfolk", "mistwood", "fernline"},
		ConceptualBlends: []string{"foggy meadow", "drifting hearth"},
	},
	pairKey("blues", "jazz"): {
		Score: 0.89, Style: StyleEvolution,
		Synergies:        []string{"smoke", "night", "trouble", "swing"},
		HybridTerms:      []string{"juke", "bluehouse", "moanline"},
		ConceptualBlends: []string{"delta lounge", "smoky crossroads"},
	},
	pairKey("hiphop", "electronic"): {
		Score: 0.83, Style: StyleHybrid,
		Synergies:        []string{"beat", "grid", "flow", "signal"},
		HybridTerms:      []string{"trapwave", "glitchhop", "basscraft"},
		ConceptualBlends: []string{"circuit cipher", "digital hustle"},
	},
	pairKey("metal", "folk"): {
		Score: 0.60, Style: StyleContrast,
		Synergies:        []string{"forest", "myth", "ritual"},
		HybridTerms:      []string{"folkmetal", "ironwood", "runestone"},
		ConceptualBlends: []string{"iron harvest", "pagan forge"},
	},
	pairKey("rock", "jazz"): {
		Score: 0.66, Style: StyleHybrid,
		Synergies:        []string{"groove", "smoke", "amplifier"},
		HybridTerms:      []string{"fusion", "jazzbone", "voltswing"},
		ConceptualBlends: []string{"amplified velvet", "smoky garage"},
	},
	pairKey("country", "blues"): {
		Score: 0.81, Style: StyleComplement,
		Synergies:        []string{"dust", "trouble", "freight", "porch"},
		HybridTerms:      []string{"twangdelta", "bootleg", "holler"},
		ConceptualBlends: []string{"dusty crossroads", "freight sunset"},
	},
	pairKey("synthwave", "metal"): {
		Score: 0.58, Style: StyleContrast,
		Synergies:        []string{"chrome", "night", "drive"},
		HybridTerms:      []string{"darksynth", "chromeclaw", "nightforge"},
		ConceptualBlends: []string{"laser wrath", "midnight chrome"},
	},
}

// Compatibility resolves the entry for a genre pair in either order.
func Compatibility(a, b string) (CompatibilityEntry, bool) {
	entry, ok := compatibility[pairKey(strings.ToLower(a), strings.ToLower(b))]
	return entry, ok
}

// Pairs returns every stored pair as canonical "a|b" keys.
func Pairs() []string {
	keys := make([]string, 0, len(compatibility))
	for k := range compatibility {
		keys = append(keys, k)
	}
	return keys
}

// fusionPatterns holds pre-authored name shapes for pairs with a strong
// enough identity to deserve one. Slots: {p} primary-genre term,
// {s} secondary-genre term, {h} hybrid term, {n} noun, {a} adjective.
var fusionPatterns = map[string][]string{
	pairKey("electronic", "jazz"):    {"{h} {n}", "{a} {h}", "the {p} {s}"},
	pairKey("blues", "rock"):         {"{p} {s}", "{h} {n}"},
	pairKey("jazz", "hiphop"):        {"{h} {n}", "{p} {s}"},
	pairKey("pop", "synthwave"):      {"{h} {n}", "{a} {h}"},
	pairKey("metal", "classical"):    {"{h} {n}", "the {a} {h}"},
	pairKey("ambient", "electronic"): {"{h}", "{a} {h}"},
	pairKey("indie", "folk"):         {"{h} {n}", "the {h}"},
}

// FusionPatterns returns the pre-authored patterns for a pair, if any.
func FusionPatterns(a, b string) []string {
	return fusionPatterns[pairKey(strings.ToLower(a), strings.ToLower(b))]
}
