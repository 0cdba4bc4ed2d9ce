package templates

// Template categories. Context scoring matches these against genre and mood
// affinity tables, so the names here and in the genre/mood packages must
// stay in sync.
const (
	CategoryAbstract    = "abstract"
	CategoryNature      = "nature"
	CategoryUrban       = "urban"
	CategoryAggressive  = "aggressive"
	CategoryMelancholic = "melancholic"
	CategoryEnergetic   = "energetic"
	CategoryCosmic      = "cosmic"
	CategoryVintage     = "vintage"
	CategoryMystic      = "mystic"
	CategoryMinimal     = "minimal"
	CategoryRomantic    = "romantic"
	CategoryNarrative   = "narrative"
	CategoryMusical     = "musical"
)

// catalog is the full template library. Exact-count templates cover one to
// three words; longer shapes use inclusive ranges since longer phrases
// tolerate more structural variation.
var catalog = []Template{
	// --- one word ---
	{
		ID:       "single-noun",
		Category: CategoryMinimal, Subcategory: "essence",
		Weight: 0.20, MinWords: 1, MaxWords: 1,
		Examples: []string{"Echo", "Thunder", "Raven"},
	},
	{
		ID:       "single-adjective",
		Category: CategoryMinimal, Subcategory: "texture",
		Weight: 0.12, MinWords: 1, MaxWords: 1,
		Examples: []string{"Velvet", "Hollow", "Feral"},
	},
	{
		ID:       "single-musical",
		Category: CategoryMusical, Subcategory: "technical",
		Weight: 0.15, MinWords: 1, MaxWords: 1,
		Examples: []string{"Crescendo", "Reverb", "Falsetto"},
	},
	{
		ID:       "single-contextual",
		Category: CategoryAbstract, Subcategory: "evocative",
		Weight: 0.14, MinWords: 1, MaxWords: 1,
		Examples: []string{"Afterglow", "Vertigo", "Solstice"},
	},
	{
		ID:       "single-genre-term",
		Category: CategoryAbstract, Subcategory: "rooted",
		Weight: 0.10, MinWords: 1, MaxWords: 1,
		Examples: []string{"Voltage", "Riddim", "Outrun"},
	},
	{
		ID:       "compound-fuse",
		Category: CategoryAbstract, Subcategory: "invented",
		Weight: 0.18, MinWords: 1, MaxWords: 1,
		Examples: []string{"Moonfire", "Stormchild", "Nightbloom"},
		BandOnly: true,
	},

	// --- two words ---
	{
		ID:       "the-plural-noun",
		Category: CategoryVintage, Subcategory: "collective",
		Weight: 0.25, MinWords: 2, MaxWords: 2,
		Examples: []string{"The Ravens", "The Embers", "The Strangers"},
		BandOnly: true,
	},
	{
		ID:       "adjective-noun",
		Category: CategoryAbstract, Subcategory: "descriptive",
		Weight: 0.30, MinWords: 2, MaxWords: 2,
		Examples: []string{"Velvet Thunder", "Silent Harbor", "Crimson Tide"},
	},
	{
		ID:       "noun-noun",
		Category: CategoryAbstract, Subcategory: "compound",
		Weight: 0.22, MinWords: 2, MaxWords: 2,
		Examples: []string{"Echo Chamber", "Ghost Engine", "Mirror City"},
	},
	{
		ID:       "gerund-noun",
		Category: CategoryEnergetic, Subcategory: "kinetic",
		Weight: 0.18, MinWords: 2, MaxWords: 2,
		Examples: []string{"Burning Skies", "Falling Stars", "Racing Hearts"},
	},
	{
		ID:       "musical-noun",
		Category: CategoryMusical, Subcategory: "hybrid",
		Weight: 0.15, MinWords: 2, MaxWords: 2,
		Examples: []string{"Rhythm Ghost", "Reverb Garden", "Anthem Fire"},
	},
	{
		ID:       "place-noun",
		Category: CategoryUrban, Subcategory: "located",
		Weight: 0.14, MinWords: 2, MaxWords: 2,
		Examples: []string{"Harbor Lights", "Rooftop Saints", "Canyon Echo"},
	},
	{
		ID:       "genre-adjective-pair",
		Category: CategoryAbstract, Subcategory: "rooted",
		Weight: 0.12, MinWords: 2, MaxWords: 2,
		Examples: []string{"Neon Circuit", "Delta Trouble"},
	},
	{
		ID:       "iron-pair",
		Category: CategoryAggressive, Subcategory: "heavy",
		Weight: 0.16, MinWords: 2, MaxWords: 2,
		Genres:   []string{"metal", "punk", "rock"},
		Moods:    []string{"aggressive", "dark", "epic"},
		Examples: []string{"Iron Wrath", "Steel Onslaught", "Obsidian Hammer"},
	},
	{
		ID:       "neon-pair",
		Category: CategoryCosmic, Subcategory: "synthetic",
		Weight: 0.16, MinWords: 2, MaxWords: 2,
		Genres:   []string{"electronic", "synthwave", "pop"},
		Examples: []string{"Neon Grid", "Chrome Pulse", "Laser Dawn"},
	},
	{
		ID:       "noir-pair",
		Category: CategoryMelancholic, Subcategory: "smoky",
		Weight: 0.14, MinWords: 2, MaxWords: 2,
		Genres:   []string{"jazz", "blues", "classical"},
		Moods:    []string{"melancholic", "mysterious", "romantic"},
		Examples: []string{"Midnight Bourbon", "Blue Smoke", "Velvet Noir"},
	},
	{
		ID:       "pastoral-pair",
		Category: CategoryNature, Subcategory: "rural",
		Weight: 0.14, MinWords: 2, MaxWords: 2,
		Genres:   []string{"folk", "country", "indie", "ambient"},
		Examples: []string{"Willow Creek", "Harvest Moon", "Prairie Wind"},
	},

	// --- three words ---
	{
		ID:       "the-adjective-noun",
		Category: CategoryVintage, Subcategory: "definite",
		Weight: 0.28, MinWords: 3, MaxWords: 3,
		Examples: []string{"The Silent Storm", "The Golden Hour", "The Wicked Tide"},
	},
	{
		ID:       "noun-of-noun",
		Category: CategoryMystic, Subcategory: "possessive",
		Weight: 0.22, MinWords: 3, MaxWords: 3,
		Examples: []string{"Queen of Ashes", "House of Mirrors", "Sea of Static"},
	},
	{
		ID:       "noun-and-noun",
		Category: CategoryAbstract, Subcategory: "paired",
		Weight: 0.18, MinWords: 3, MaxWords: 3,
		Examples: []string{"Dust and Echoes", "Smoke and Silver", "Thorns and Thunder"},
	},
	{
		ID:       "gerund-the-noun",
		Category: CategoryNarrative, Subcategory: "action",
		Weight: 0.16, MinWords: 3, MaxWords: 3,
		Examples: []string{"Chasing the Sun", "Breaking the Silence", "Burning the Maps"},
		SongOnly: true,
	},
	{
		ID:       "adjective-noun-noun",
		Category: CategoryAbstract, Subcategory: "stacked",
		Weight: 0.12, MinWords: 3, MaxWords: 3,
		Examples: []string{"Electric Ghost Parade", "Hollow Moon Rising"},
	},
	{
		ID:       "preposition-the-noun",
		Category: CategoryNarrative, Subcategory: "situated",
		Weight: 0.15, MinWords: 3, MaxWords: 3,
		Examples: []string{"Under the Stars", "Beyond the Harbor", "Against the Tide"},
		SongOnly: true,
	},
	{
		ID:       "the-noun-plural",
		Category: CategoryVintage, Subcategory: "collective",
		Weight: 0.13, MinWords: 3, MaxWords: 3,
		Examples: []string{"The Harbor Wolves", "The Static Saints"},
		BandOnly: true,
	},
	{
		ID:       "number-adjective-noun",
		Category: CategoryAbstract, Subcategory: "numeric",
		Weight: 0.10, MinWords: 3, MaxWords: 3,
		Examples: []string{"Seven Broken Crowns", "Nine Silver Rivers"},
	},
	{
		ID:       "mystic-trio",
		Category: CategoryMystic, Subcategory: "ritual",
		Weight: 0.12, MinWords: 3, MaxWords: 3,
		Moods:    []string{"mysterious", "dark", "epic"},
		Examples: []string{"Oracle of Embers", "Temple of Static", "Crown of Ravens"},
	},

	// --- four and up: ranged shapes ---
	{
		ID:       "the-noun-of-the-noun",
		Category: CategoryMystic, Subcategory: "grand",
		Weight: 0.20, MinWords: 4, MaxWords: 5,
		Examples: []string{"The Fall of the Crows", "The Garden of the Lost", "The Voice of the Storm"},
	},
	{
		ID:       "gerund-in-the-noun",
		Category: CategoryNarrative, Subcategory: "scene",
		Weight: 0.18, MinWords: 4, MaxWords: 4,
		Examples: []string{"Dancing in the Dark", "Drowning in the Static", "Singing in the Wires"},
		SongOnly: true,
	},
	{
		ID:       "all-the-adjective-nouns",
		Category: CategoryNarrative, Subcategory: "sweeping",
		Weight: 0.14, MinWords: 4, MaxWords: 4,
		Examples: []string{"All the Broken Mirrors", "All the Sleepless Cities"},
	},
	{
		ID:       "when-the-noun-verbs",
		Category: CategoryNarrative, Subcategory: "temporal",
		Weight: 0.15, MinWords: 4, MaxWords: 5,
		Examples: []string{"When the River Burns", "When the Lights Go Down"},
		SongOnly: true,
	},
	{
		ID:       "noun-of-the-adjective-noun",
		Category: CategoryMystic, Subcategory: "grand",
		Weight: 0.12, MinWords: 5, MaxWords: 5,
		Examples: []string{"Kings of the Burning Harbor", "Ghosts of the Silent Coast"},
	},
	{
		ID:       "adjective-noun-and-the-noun",
		Category: CategoryVintage, Subcategory: "billing",
		Weight: 0.12, MinWords: 5, MaxWords: 5,
		Examples: []string{"Velvet Ghost and the Ravens", "Scarlet Moon and the Tide"},
		BandOnly: true,
	},
	{
		ID:       "preposition-phrase-long",
		Category: CategoryNarrative, Subcategory: "situated",
		Weight: 0.13, MinWords: 4, MaxWords: 6,
		Examples: []string{"Between the Dust and the Dawn", "Beneath a Sky of Embers"},
		SongOnly: true,
	},
	{
		ID:       "statement-long",
		Category: CategoryNarrative, Subcategory: "confessional",
		Weight: 0.12, MinWords: 4, MaxWords: 6,
		Examples: []string{"We Were Never Strangers", "I Dreamed the Ocean Empty", "She Sold the Morning Light"},
		SongOnly: true,
		Moods:    []string{"melancholic", "romantic", "peaceful", "mysterious"},
	},
	{
		ID:       "cosmic-long",
		Category: CategoryCosmic, Subcategory: "vast",
		Weight: 0.11, MinWords: 4, MaxWords: 5,
		Genres:   []string{"electronic", "ambient", "synthwave", "metal"},
		Examples: []string{"Signals from the Outer Dark", "Orbit of a Dying Sun"},
	},
}

// byID indexes the catalog for dispatch and lookups.
var byID = func() map[string]Template {
	m := make(map[string]Template, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()

// All returns a copy of the full catalog.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a template up by id.
func ByID(id string) (Template, bool) {
	t, ok := byID[id]
	return t, ok
}

// ForWordCount returns every template whose word-count range contains n.
// The result is freshly allocated; repeated calls with the same n return
// the same set.
func ForWordCount(n int) []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		if t.Covers(n) {
			out = append(out, t)
		}
	}
	return out
}

// ForCategory narrows the catalog by category; pass n <= 0 to skip the
// word-count filter.
func ForCategory(category string, n int) []Template {
	out := make([]Template, 0)
	for _, t := range catalog {
		if t.Category != category {
			continue
		}
		if n > 0 && !t.Covers(n) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories returns the distinct categories present in the catalog.
func Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
