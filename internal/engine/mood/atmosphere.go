package mood

// Context carries the orthogonal atmospheric descriptors that nudge a mood
// vector. Every field is optional; empty strings contribute nothing.
type Context struct {
	TimeOfDay string  `json:"time_of_day"` // dawn, morning, afternoon, dusk, night, midnight
	Season    string  `json:"season"`      // spring, summer, autumn, winter
	Weather   string  `json:"weather"`     // clear, rain, storm, snow, fog, heat
	Culture   string  `json:"culture"`     // urban, rural, coastal, nordic, mediterranean, eastern
	Weight    float64 `json:"weight"`      // per-contributor blend weight; 0 means the 0.5 default
}

// DefaultBlendWeight is applied when a context does not set its own.
const DefaultBlendWeight = 0.5

// Modifier vectors are absolute targets the base vector is pulled toward,
// one per descriptor value.
var timeOfDayVectors = map[string]Vector{
	"dawn":      {Energy: 40, Valence: 65, Complexity: 45, Intensity: 30, Darkness: 20, Mystery: 55},
	"morning":   {Energy: 65, Valence: 75, Complexity: 35, Intensity: 40, Darkness: 10, Mystery: 20},
	"afternoon": {Energy: 70, Valence: 70, Complexity: 40, Intensity: 50, Darkness: 15, Mystery: 15},
	"dusk":      {Energy: 45, Valence: 55, Complexity: 55, Intensity: 45, Darkness: 40, Mystery: 60},
	"night":     {Energy: 50, Valence: 45, Complexity: 60, Intensity: 55, Darkness: 65, Mystery: 70},
	"midnight":  {Energy: 35, Valence: 30, Complexity: 65, Intensity: 50, Darkness: 80, Mystery: 85},
}

var seasonVectors = map[string]Vector{
	"spring": {Energy: 65, Valence: 80, Complexity: 45, Intensity: 45, Darkness: 10, Mystery: 30},
	"summer": {Energy: 80, Valence: 85, Complexity: 35, Intensity: 60, Darkness: 5, Mystery: 15},
	"autumn": {Energy: 40, Valence: 50, Complexity: 60, Intensity: 40, Darkness: 40, Mystery: 50},
	"winter": {Energy: 30, Valence: 40, Complexity: 55, Intensity: 45, Darkness: 55, Mystery: 60},
}

var weatherVectors = map[string]Vector{
	"clear": {Energy: 65, Valence: 75, Complexity: 35, Intensity: 40, Darkness: 10, Mystery: 20},
	"rain":  {Energy: 35, Valence: 40, Complexity: 55, Intensity: 45, Darkness: 50, Mystery: 55},
	"storm": {Energy: 80, Valence: 25, Complexity: 60, Intensity: 90, Darkness: 70, Mystery: 55},
	"snow":  {Energy: 25, Valence: 55, Complexity: 50, Intensity: 30, Darkness: 35, Mystery: 65},
	"fog":   {Energy: 25, Valence: 35, Complexity: 65, Intensity: 35, Darkness: 60, Mystery: 90},
	"heat":  {Energy: 70, Valence: 55, Complexity: 40, Intensity: 70, Darkness: 30, Mystery: 25},
}

var cultureVectors = map[string]Vector{
	"urban":         {Energy: 75, Valence: 55, Complexity: 55, Intensity: 65, Darkness: 45, Mystery: 35},
	"rural":         {Energy: 40, Valence: 65, Complexity: 45, Intensity: 35, Darkness: 25, Mystery: 40},
	"coastal":       {Energy: 50, Valence: 70, Complexity: 40, Intensity: 40, Darkness: 20, Mystery: 45},
	"nordic":        {Energy: 45, Valence: 35, Complexity: 65, Intensity: 55, Darkness: 65, Mystery: 75},
	"mediterranean": {Energy: 65, Valence: 80, Complexity: 45, Intensity: 50, Darkness: 15, Mystery: 30},
	"eastern":       {Energy: 50, Valence: 60, Complexity: 75, Intensity: 50, Darkness: 30, Mystery: 70},
}

// Atmosphere is a curated named atmospheric profile. Compatible moods earn
// an alignment bonus; conflicting moods are penalized.
type Atmosphere struct {
	Name             string
	Context          Context
	CompatibleMoods  []string
	ConflictingMoods []string
	Keywords         []string
}

// Library holds the named atmospheric profiles available to callers who
// want a preset rather than raw descriptors.
var Library = map[string]Atmosphere{
	"storm passage": {
		Name:             "storm passage",
		Context:          Context{TimeOfDay: "dusk", Weather: "storm"},
		CompatibleMoods:  []string{"epic", "aggressive", "dark", "mysterious"},
		ConflictingMoods: []string{"peaceful", "playful", "happy"},
		Keywords:         []string{"thunder", "surge", "shelter", "horizon"},
	},
	"midnight solitude": {
		Name:             "midnight solitude",
		Context:          Context{TimeOfDay: "midnight", Weather: "clear", Culture: "urban"},
		CompatibleMoods:  []string{"melancholic", "mysterious", "dreamy", "nostalgic"},
		ConflictingMoods: []string{"energetic", "playful"},
		Keywords:         []string{"neon", "vacant", "echo", "streetlight"},
	},
	"spring awakening": {
		Name:             "spring awakening",
		Context:          Context{TimeOfDay: "morning", Season: "spring"},
		CompatibleMoods:  []string{"happy", "peaceful", "romantic", "playful"},
		ConflictingMoods: []string{"dark", "aggressive"},
		Keywords:         []string{"bloom", "thaw", "meadow", "first light"},
	},
	"winter hearth": {
		Name:             "winter hearth",
		Context:          Context{Season: "winter", Weather: "snow", Culture: "rural"},
		CompatibleMoods:  []string{"nostalgic", "peaceful", "romantic", "melancholic"},
		ConflictingMoods: []string{"aggressive", "energetic"},
		Keywords:         []string{"ember", "frost", "kindling", "quiet"},
	},
	"desert highway": {
		Name:             "desert highway",
		Context:          Context{TimeOfDay: "afternoon", Weather: "heat", Culture: "rural"},
		CompatibleMoods:  []string{"energetic", "nostalgic", "epic"},
		ConflictingMoods: []string{"dreamy", "peaceful"},
		Keywords:         []string{"mirage", "asphalt", "dust", "chrome"},
	},
	"neon dusk": {
		Name:             "neon dusk",
		Context:          Context{TimeOfDay: "dusk", Culture: "urban"},
		CompatibleMoods:  []string{"energetic", "mysterious", "romantic", "dreamy"},
		ConflictingMoods: []string{"peaceful"},
		Keywords:         []string{"skyline", "glow", "traffic", "pulse"},
	},
	"northern silence": {
		Name:             "northern silence",
		Context:          Context{Season: "winter", Weather: "fog", Culture: "nordic"},
		CompatibleMoods:  []string{"dark", "mysterious", "melancholic", "epic"},
		ConflictingMoods: []string{"happy", "playful"},
		Keywords:         []string{"glacier", "aurora", "pine", "longnight"},
	},
}

// LibraryProfile looks up a named atmosphere.
func LibraryProfile(name string) (Atmosphere, bool) {
	a, ok := Library[name]
	return a, ok
}

// Resolve turns a mood name and an optional atmospheric context into a
// blended vector. The second return is false for unknown moods.
func Resolve(moodName string, ctx *Context) (Vector, bool) {
	base, ok := Profiles[moodName]
	if !ok {
		return Vector{}, false
	}
	if ctx == nil {
		return base, true
	}
	return Blend(base, *ctx), true
}

// Blend nudges the base vector toward each descriptor's target vector using
// a weighted average. Each contributor applies independently, so descriptor
// order never matters beyond the documented sequence here.
func Blend(base Vector, ctx Context) Vector {
	w := ctx.Weight
	if w <= 0 || w > 1 {
		w = DefaultBlendWeight
	}
	out := base
	if v, ok := timeOfDayVectors[ctx.TimeOfDay]; ok {
		out = lerp(out, v, w)
	}
	if v, ok := seasonVectors[ctx.Season]; ok {
		out = lerp(out, v, w)
	}
	if v, ok := weatherVectors[ctx.Weather]; ok {
		out = lerp(out, v, w)
	}
	if v, ok := cultureVectors[ctx.Culture]; ok {
		out = lerp(out, v, w)
	}
	return out
}

// lerp moves a toward b by weight w, per axis, with integer rounding.
func lerp(a, b Vector, w float64) Vector {
	mix := func(x, y int) int {
		v := int(float64(x)*(1-w) + float64(y)*w + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return v
	}
	return Vector{
		Energy:     mix(a.Energy, b.Energy),
		Valence:    mix(a.Valence, b.Valence),
		Complexity: mix(a.Complexity, b.Complexity),
		Intensity:  mix(a.Intensity, b.Intensity),
		Darkness:   mix(a.Darkness, b.Darkness),
		Mystery:    mix(a.Mystery, b.Mystery),
	}
}
