package templates

// Template is an immutable phrase-generation rule. The same template may be
// invoked many times with different word-source samples; generation never
// mutates shared state (see Generate).
type Template struct {
	ID          string
	Category    string
	Subcategory string

	// Weight is the template's prior probability mass before scoring.
	Weight float64

	// MinWords and MaxWords bound the output length, inclusive. Exact-count
	// templates have MinWords == MaxWords.
	MinWords int
	MaxWords int

	// Genres and Moods restrict where the template applies. Empty means
	// universal.
	Genres []string
	Moods  []string

	// Examples document typical output; templates with three or more
	// examples score higher on intrinsic quality.
	Examples []string

	// BandOnly or SongOnly mark templates whose phrasing only works for one
	// output type. Both false means the template fits either.
	BandOnly bool
	SongOnly bool
}

// Context carries the request axes a template can react to at generation
// time.
type Context struct {
	Type            string // "band" or "song"
	Genre           string
	Mood            string
	WordCount       int
	Intensity       string
	CreativityLevel float64
}

// Covers reports whether the template can produce an output of exactly n
// words.
func (t Template) Covers(n int) bool {
	return n >= t.MinWords && n <= t.MaxWords
}

// AllowsGenre reports whether the template is universal or explicitly lists
// the genre.
func (t Template) AllowsGenre(genre string) bool {
	if len(t.Genres) == 0 || genre == "" {
		return true
	}
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// AllowsMood reports whether the template is universal or explicitly lists
// the mood.
func (t Template) AllowsMood(mood string) bool {
	if len(t.Moods) == 0 || mood == "" {
		return true
	}
	for _, m := range t.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// FitsType reports whether the template can serve the requested output type.
func (t Template) FitsType(outputType string) bool {
	switch outputType {
	case "band":
		return !t.SongOnly
	case "song":
		return !t.BandOnly
	default:
		return true
	}
}
