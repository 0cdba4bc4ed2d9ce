package wordsource

// Built-in vocabulary pools. These back every Pick when the caller supplies
// an empty or partial source, so generation never stalls waiting on an
// external lexical API.

var defaultAdjectives = []string{
	"electric", "velvet", "crimson", "silent", "golden", "wild", "broken",
	"midnight", "neon", "savage", "hollow", "frozen", "burning", "lunar",
	"solar", "crystal", "shadow", "iron", "silver", "scarlet", "faded",
	"restless", "endless", "secret", "sacred", "stolen", "lost", "last",
	"first", "strange", "bitter", "sweet", "heavy", "gentle", "fierce",
	"quiet", "loud", "distant", "hidden", "naked", "painted", "tangled",
	"wicked", "gilded", "rusted", "wandering", "sleepless", "fearless",
	"reckless", "timeless", "boundless", "ancient", "modern", "cosmic",
	"atomic", "magnetic", "phantom", "feral", "hazy", "luminous",
}

var defaultNouns = []string{
	"echo", "river", "storm", "fire", "moon", "sun", "star", "ocean",
	"mountain", "forest", "desert", "city", "road", "bridge", "tower",
	"garden", "mirror", "window", "door", "key", "crown", "throne",
	"ghost", "angel", "devil", "saint", "sinner", "stranger", "wolf",
	"lion", "raven", "sparrow", "serpent", "tiger", "fox", "bear",
	"heart", "soul", "mind", "bone", "blood", "skin", "eye", "hand",
	"voice", "whisper", "scream", "silence", "thunder", "lightning",
	"rain", "snow", "wind", "wave", "tide", "flame", "ember", "ash",
	"dust", "smoke", "shadow", "light", "dawn", "dusk", "night",
	"dream", "memory", "promise", "secret", "riddle", "prophecy",
}

var defaultVerbs = []string{
	"run", "fall", "rise", "burn", "break", "bend", "drift", "fade",
	"shine", "bloom", "crash", "climb", "dance", "dream", "drown",
	"fly", "howl", "leap", "melt", "race", "roar", "shatter", "sing",
	"sink", "soar", "spin", "surge", "sway", "wander", "whisper",
}

var defaultMusicalTerms = []string{
	"rhythm", "melody", "harmony", "chord", "tempo", "cadence", "refrain",
	"chorus", "verse", "bridge", "riff", "groove", "beat", "bassline",
	"crescendo", "fortissimo", "staccato", "legato", "vibrato", "falsetto",
	"overture", "interlude", "reprise", "coda", "anthem", "ballad",
	"serenade", "lullaby", "requiem", "rhapsody", "sonata", "symphony",
	"aria", "fugue", "canon", "octave", "tone", "timbre", "resonance",
	"frequency", "amplitude", "reverb", "distortion", "feedback",
}

var defaultContextual = []string{
	"horizon", "gravity", "velocity", "orbit", "eclipse", "aurora",
	"mirage", "oasis", "labyrinth", "threshold", "paradox", "infinity",
	"oblivion", "reverie", "solstice", "equinox", "monsoon", "avalanche",
	"undertow", "afterglow", "wanderlust", "nostalgia", "euphoria",
	"melancholy", "serendipity", "solitude", "vertigo", "limbo",
}

var defaultPlaces = []string{
	"avenue", "boulevard", "harbor", "station", "cathedral", "basement",
	"rooftop", "alley", "canyon", "valley", "meadow", "shoreline",
	"crossroads", "outskirts", "badlands", "heartland", "wasteland",
	"borderland", "midway", "downtown", "uptown", "backwater",
}

var defaultPools = map[Category][]string{
	CategoryAdjectives:   defaultAdjectives,
	CategoryNouns:        defaultNouns,
	CategoryVerbs:        defaultVerbs,
	CategoryMusicalTerms: defaultMusicalTerms,
	CategoryContextual:   defaultContextual,
	CategoryPlaces:       defaultPlaces,
}

// genreTerms carries per-genre vocabulary used to seed the genre_terms
// category when a source is built for a known genre.
var genreTerms = map[string][]string{
	"rock": {
		"stone", "gravel", "amplifier", "leather", "highway", "engine",
		"rebel", "riot", "garage", "vinyl", "static", "voltage",
	},
	"metal": {
		"steel", "forge", "inferno", "abyss", "hammer", "chains",
		"obsidian", "wrath", "dominion", "carnage", "citadel", "onslaught",
	},
	"jazz": {
		"blue", "smoke", "brass", "swing", "velvet", "lounge",
		"midnight", "bourbon", "syncopation", "improvisation", "muse", "noir",
	},
	"electronic": {
		"circuit", "pulse", "signal", "synth", "neon", "binary",
		"modular", "voltage", "waveform", "glitch", "strobe", "datastream",
	},
	"folk": {
		"willow", "harvest", "hearth", "lantern", "creek", "sparrow",
		"homestead", "fiddle", "timber", "orchard", "prairie", "kindling",
	},
	"hiphop": {
		"flow", "cipher", "crown", "hustle", "block", "concrete",
		"gold", "legacy", "dynasty", "empire", "streetlight", "skyline",
	},
	"pop": {
		"glitter", "sugar", "spotlight", "confetti", "bubblegum", "shimmer",
		"daydream", "heartbeat", "firework", "rainbow", "sparkle", "crush",
	},
	"punk": {
		"riot", "scrap", "siren", "wreck", "snarl", "gutter",
		"misfit", "anarchy", "spit", "chaos", "brick", "clash",
	},
	"classical": {
		"opus", "chamber", "quartet", "nocturne", "pastoral", "elegy",
		"cathedral", "marble", "laurel", "muse", "overture", "prelude",
	},
	"ambient": {
		"drift", "haze", "stillness", "glacier", "nebula", "breath",
		"expanse", "twilight", "hum", "fog", "halo", "suspension",
	},
	"country": {
		"dust", "saddle", "whiskey", "porch", "prairie", "pickup",
		"sunset", "county", "holler", "bootleg", "homestead", "backroad",
	},
	"blues": {
		"delta", "crossroads", "trouble", "mojo", "freight", "levee",
		"moan", "gravel", "juke", "heartache", "bottleneck", "muddy",
	},
	"reggae": {
		"island", "roots", "lion", "zion", "sunshine", "riddim",
		"irie", "kingston", "dub", "vibration", "uprising", "jungle",
	},
	"synthwave": {
		"chrome", "turbo", "laser", "grid", "outrun", "arcade",
		"sunset", "drive", "hologram", "retro", "mainframe", "vice",
	},
	"indie": {
		"polaroid", "cardigan", "attic", "postcard", "bicycle", "suburb",
		"mixtape", "daisy", "windowsill", "typewriter", "ferris", "satellite",
	},
}

// DefaultPool returns the built-in pool for a category. Genre terms have no
// genre-agnostic default; use Default to build a source for a genre.
func DefaultPool(cat Category) []string {
	return defaultPools[cat]
}

// GenreTerms returns the curated vocabulary for a genre, or nil when the
// genre is unknown.
func GenreTerms(genre string) []string {
	return genreTerms[genre]
}

// musicalTermSet indexes the built-in musical vocabulary for membership
// checks.
var musicalTermSet = func() map[string]bool {
	set := make(map[string]bool, len(defaultMusicalTerms))
	for _, term := range defaultMusicalTerms {
		set[term] = true
	}
	return set
}()

// IsMusicalTerm reports whether a lowercase word belongs to the built-in
// musical vocabulary.
func IsMusicalTerm(word string) bool {
	return musicalTermSet[word]
}

// KnownGenres returns every genre with curated vocabulary.
func KnownGenres() []string {
	genres := make([]string, 0, len(genreTerms))
	for g := range genreTerms {
		genres = append(genres, g)
	}
	return genres
}

// Default builds a complete source from the built-in pools. When genre names
// a curated vocabulary its terms fill the genre_terms category.
func Default(genre string) *Source {
	lists := map[Category][]string{
		CategoryAdjectives:   defaultAdjectives,
		CategoryNouns:        defaultNouns,
		CategoryVerbs:        defaultVerbs,
		CategoryMusicalTerms: defaultMusicalTerms,
		CategoryContextual:   defaultContextual,
		CategoryPlaces:       defaultPlaces,
	}
	if terms := genreTerms[genre]; len(terms) > 0 {
		lists[CategoryGenreTerms] = terms
	}
	name := "default"
	if genre != "" {
		name = "default:" + genre
	}
	return New(name, lists)
}
