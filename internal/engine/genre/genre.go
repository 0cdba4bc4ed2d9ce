package genre

import "sort"

// Characteristics describes a genre's vocabulary profile: the template
// categories that suit it, the ones that read wrong for it, and keywords
// that mark a name as belonging to its world.
type Characteristics struct {
	Name                string
	PreferredCategories []string
	AvoidCategories     []string
	Keywords            []string
	Tone                string // bright, gritty, smoky, synthetic, earthy, ornate
}

// Catalog maps every supported genre to its characteristics. The names
// double as the values accepted in generation requests and must stay in
// sync with the wordsource genre-term tables.
var Catalog = map[string]Characteristics{
	"rock": {
		Name:                "rock",
		PreferredCategories: []string{"energetic", "urban", "vintage", "aggressive"},
		AvoidCategories:     []string{"minimal"},
		Keywords:            []string{"stone", "engine", "voltage", "riot"},
		Tone:                "gritty",
	},
	"metal": {
		Name:                "metal",
		PreferredCategories: []string{"aggressive", "mystic", "cosmic"},
		AvoidCategories:     []string{"romantic", "minimal"},
		Keywords:            []string{"steel", "inferno", "wrath", "abyss"},
		Tone:                "gritty",
	},
	"jazz": {
		Name:                "jazz",
		PreferredCategories: []string{"melancholic", "vintage", "musical", "urban"},
		AvoidCategories:     []string{"aggressive"},
		Keywords:            []string{"blue", "velvet", "midnight", "swing"},
		Tone:                "smoky",
	},
	"electronic": {
		Name:                "electronic",
		PreferredCategories: []string{"cosmic", "urban", "abstract", "minimal"},
		AvoidCategories:     []string{"vintage"},
		Keywords:            []string{"circuit", "pulse", "signal", "neon"},
		Tone:                "synthetic",
	},
	"folk": {
		Name:                "folk",
		PreferredCategories: []string{"nature", "narrative", "vintage"},
		AvoidCategories:     []string{"cosmic", "urban"},
		Keywords:            []string{"willow", "hearth", "harvest", "creek"},
		Tone:                "earthy",
	},
	"hiphop": {
		Name:                "hiphop",
		PreferredCategories: []string{"urban", "energetic", "minimal"},
		AvoidCategories:     []string{"nature"},
		Keywords:            []string{"flow", "crown", "concrete", "skyline"},
		Tone:                "gritty",
	},
	"pop": {
		Name:                "pop",
		PreferredCategories: []string{"energetic", "romantic", "musical"},
		AvoidCategories:     []string{"mystic"},
		Keywords:            []string{"glitter", "spotlight", "heartbeat", "shimmer"},
		Tone:                "bright",
	},
	"punk": {
		Name:                "punk",
		PreferredCategories: []string{"aggressive", "urban", "minimal"},
		AvoidCategories:     []string{"romantic", "mystic"},
		Keywords:            []string{"riot", "gutter", "snarl", "wreck"},
		Tone:                "gritty",
	},
	"classical": {
		Name:                "classical",
		PreferredCategories: []string{"musical", "mystic", "romantic", "vintage"},
		AvoidCategories:     []string{"urban"},
		Keywords:            []string{"opus", "nocturne", "elegy", "chamber"},
		Tone:                "ornate",
	},
	"ambient": {
		Name:                "ambient",
		PreferredCategories: []string{"cosmic", "nature", "minimal", "abstract"},
		AvoidCategories:     []string{"aggressive", "energetic"},
		Keywords:            []string{"drift", "haze", "stillness", "expanse"},
		Tone:                "synthetic",
	},
	"country": {
		Name:                "country",
		PreferredCategories: []string{"nature", "narrative", "vintage"},
		AvoidCategories:     []string{"cosmic", "abstract"},
		Keywords:            []string{"dust", "saddle", "sunset", "backroad"},
		Tone:                "earthy",
	},
	"blues": {
		Name:                "blues",
		PreferredCategories: []string{"melancholic", "narrative", "vintage"},
		AvoidCategories:     []string{"cosmic"},
		Keywords:            []string{"delta", "crossroads", "trouble", "freight"},
		Tone:                "smoky",
	},
	"reggae": {
		Name:                "reggae",
		PreferredCategories: []string{"nature", "energetic", "musical"},
		AvoidCategories:     []string{"aggressive"},
		Keywords:            []string{"island", "roots", "lion", "sunshine"},
		Tone:                "bright",
	},
	"synthwave": {
		Name:                "synthwave",
		PreferredCategories: []string{"cosmic", "urban", "vintage"},
		AvoidCategories:     []string{"nature"},
		Keywords:            []string{"chrome", "grid", "laser", "outrun"},
		Tone:                "synthetic",
	},
	"indie": {
		Name:                "indie",
		PreferredCategories: []string{"narrative", "minimal", "melancholic", "nature"},
		AvoidCategories:     []string{"aggressive"},
		Keywords:            []string{"polaroid", "attic", "postcard", "satellite"},
		Tone:                "earthy",
	},
}

// Known reports whether a genre is in the catalog.
func Known(name string) bool {
	_, ok := Catalog[name]
	return ok
}

// Names returns every supported genre, sorted for stable listings.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesFor returns the preferred template categories for a genre, or
// nil for an unknown genre.
func CategoriesFor(name string) []string {
	if c, ok := Catalog[name]; ok {
		return c.PreferredCategories
	}
	return nil
}

// Avoids reports whether a genre explicitly avoids a template category.
func Avoids(name, category string) bool {
	c, ok := Catalog[name]
	if !ok {
		return false
	}
	for _, avoid := range c.AvoidCategories {
		if avoid == category {
			return true
		}
	}
	return false
}
