package mood

import "sort"

// Vector is the six-axis emotional profile of a mood. Every axis runs 0-100.
type Vector struct {
	Energy     int `json:"energy"`
	Valence    int `json:"valence"`
	Complexity int `json:"complexity"`
	Intensity  int `json:"intensity"`
	Darkness   int `json:"darkness"`
	Mystery    int `json:"mystery"`
}

// Profiles maps every named mood to its emotional vector. The names double
// as the values accepted in generation requests.
var Profiles = map[string]Vector{
	"happy":       {Energy: 75, Valence: 90, Complexity: 30, Intensity: 55, Darkness: 5, Mystery: 10},
	"energetic":   {Energy: 95, Valence: 75, Complexity: 40, Intensity: 85, Darkness: 15, Mystery: 15},
	"peaceful":    {Energy: 20, Valence: 70, Complexity: 35, Intensity: 15, Darkness: 10, Mystery: 25},
	"melancholic": {Energy: 25, Valence: 25, Complexity: 60, Intensity: 45, Darkness: 55, Mystery: 40},
	"dark":        {Energy: 45, Valence: 15, Complexity: 55, Intensity: 70, Darkness: 90, Mystery: 60},
	"aggressive":  {Energy: 90, Valence: 20, Complexity: 45, Intensity: 95, Darkness: 70, Mystery: 20},
	"mysterious":  {Energy: 40, Valence: 40, Complexity: 75, Intensity: 50, Darkness: 60, Mystery: 95},
	"romantic":    {Energy: 45, Valence: 75, Complexity: 55, Intensity: 60, Darkness: 20, Mystery: 45},
	"epic":        {Energy: 85, Valence: 60, Complexity: 70, Intensity: 90, Darkness: 40, Mystery: 50},
	"playful":     {Energy: 80, Valence: 85, Complexity: 35, Intensity: 50, Darkness: 5, Mystery: 20},
	"nostalgic":   {Energy: 30, Valence: 55, Complexity: 50, Intensity: 35, Darkness: 30, Mystery: 45},
	"dreamy":      {Energy: 30, Valence: 65, Complexity: 55, Intensity: 25, Darkness: 20, Mystery: 70},
}

// Trait names used for dominance ranking and category affinity lookups.
const (
	TraitEnergy     = "energy"
	TraitValence    = "valence"
	TraitComplexity = "complexity"
	TraitIntensity  = "intensity"
	TraitDarkness   = "darkness"
	TraitMystery    = "mystery"
)

// categoryAffinity maps template categories to the traits they resonate
// with. Selection scoring compares these against a resolved vector's
// dominant traits.
var categoryAffinity = map[string][]string{
	"abstract":    {TraitComplexity, TraitMystery},
	"nature":      {TraitValence, TraitComplexity},
	"urban":       {TraitEnergy, TraitIntensity},
	"aggressive":  {TraitIntensity, TraitEnergy, TraitDarkness},
	"melancholic": {TraitDarkness, TraitComplexity},
	"energetic":   {TraitEnergy, TraitIntensity, TraitValence},
	"cosmic":      {TraitMystery, TraitComplexity},
	"vintage":     {TraitValence, TraitComplexity},
	"mystic":      {TraitMystery, TraitDarkness},
	"minimal":     {TraitComplexity, TraitValence},
	"romantic":    {TraitValence, TraitIntensity},
	"narrative":   {TraitComplexity, TraitIntensity},
	"musical":     {TraitEnergy, TraitValence},
}

// moodCategories maps moods to the template categories that traditionally
// suit them. Used by the non-vector context-match path.
var moodCategories = map[string][]string{
	"happy":       {"energetic", "musical", "nature", "romantic"},
	"energetic":   {"energetic", "urban", "aggressive", "musical"},
	"peaceful":    {"nature", "minimal", "vintage"},
	"melancholic": {"melancholic", "narrative", "vintage", "minimal"},
	"dark":        {"aggressive", "mystic", "melancholic", "cosmic"},
	"aggressive":  {"aggressive", "urban", "energetic"},
	"mysterious":  {"mystic", "cosmic", "abstract", "melancholic"},
	"romantic":    {"romantic", "narrative", "vintage", "nature"},
	"epic":        {"cosmic", "mystic", "aggressive", "narrative"},
	"playful":     {"energetic", "musical", "urban"},
	"nostalgic":   {"vintage", "narrative", "nature", "melancholic"},
	"dreamy":      {"cosmic", "abstract", "nature", "minimal"},
}

// Known reports whether a mood name resolves to a profile.
func Known(name string) bool {
	_, ok := Profiles[name]
	return ok
}

// Names returns all mood names, sorted for stable listings.
func Names() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesFor returns the template categories curated for a mood, or nil
// for an unknown mood.
func CategoriesFor(mood string) []string {
	return moodCategories[mood]
}

// axisValue reads one trait off a vector.
func axisValue(v Vector, trait string) int {
	switch trait {
	case TraitEnergy:
		return v.Energy
	case TraitValence:
		return v.Valence
	case TraitComplexity:
		return v.Complexity
	case TraitIntensity:
		return v.Intensity
	case TraitDarkness:
		return v.Darkness
	case TraitMystery:
		return v.Mystery
	}
	return 0
}

// DominantTraits returns the n strongest traits of a vector, strongest
// first. Ties break on trait name so the result is deterministic.
func DominantTraits(v Vector, n int) []string {
	traits := []string{
		TraitEnergy, TraitValence, TraitComplexity,
		TraitIntensity, TraitDarkness, TraitMystery,
	}
	sort.Slice(traits, func(i, j int) bool {
		a, b := axisValue(v, traits[i]), axisValue(v, traits[j])
		if a != b {
			return a > b
		}
		return traits[i] < traits[j]
	})
	if n > len(traits) {
		n = len(traits)
	}
	return traits[:n]
}
