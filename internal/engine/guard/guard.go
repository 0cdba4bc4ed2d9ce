package guard

import (
	"strings"
	"sync"
	"time"
)

const (
	// Queue capacities. Oldest entries are evicted FIFO once full.
	wordQueueCap     = 30
	templateQueueCap = 20

	// Words shorter than this are not considered significant for overlap
	// checks ("the", "of", ...).
	significantWordLen = 4

	// A candidate is rejected when it shares a significant word with more
	// than this fraction of recently accepted names.
	defaultOverlapFraction = 0.25

	// Usage counters halve after this much inactivity, down to removal at
	// zero, so long sessions don't calcify around early choices.
	decayInterval = 5 * time.Minute
)

// Guard tracks recently emitted words and templates for one generation
// session and filters candidates that would read as repetitive. All methods
// are safe for concurrent use; the guard is the only mutable shared state in
// the engine.
type Guard struct {
	mu sync.Mutex

	recentNames []string
	recentWords []string

	recentTemplates []string
	categoryUse     map[string]int
	subcategoryUse  map[string]int

	overlapFraction float64
	lastDecay       time.Time
	now             func() time.Time
}

// New creates a guard with default capacities and the wall clock.
func New() *Guard {
	return NewWithClock(time.Now)
}

// NewWithClock creates a guard with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Guard {
	return &Guard{
		categoryUse:     make(map[string]int),
		subcategoryUse:  make(map[string]int),
		overlapFraction: defaultOverlapFraction,
		lastDecay:       now(),
		now:             now,
	}
}

// SetOverlapFraction overrides the shared-word rejection threshold.
// Values outside (0,1] are ignored.
func (g *Guard) SetOverlapFraction(f float64) {
	if f <= 0 || f > 1 {
		return
	}
	g.mu.Lock()
	g.overlapFraction = f
	g.mu.Unlock()
}

// ShouldReject reports whether a candidate name repeats the session: exact
// duplicates are always rejected, and candidates sharing a significant word
// with more than the configured fraction of recent names are rejected too.
func (g *Guard) ShouldReject(candidate string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeDecay()

	normalized := strings.ToLower(strings.TrimSpace(candidate))
	for _, name := range g.recentNames {
		if name == normalized {
			return true
		}
	}

	if len(g.recentNames) == 0 {
		return false
	}

	words := significantWords(normalized)
	if len(words) == 0 {
		return false
	}

	shared := 0
	for _, name := range g.recentNames {
		if sharesAny(name, words) {
			shared++
		}
	}
	return float64(shared)/float64(len(g.recentNames)) > g.overlapFraction
}

// Accept records a name's words into the recent-word queue. Call after a
// candidate clears ShouldReject and is emitted.
func (g *Guard) Accept(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeDecay()

	normalized := strings.ToLower(strings.TrimSpace(name))
	g.recentNames = push(g.recentNames, normalized, wordQueueCap)
	for _, w := range significantWords(normalized) {
		g.recentWords = push(g.recentWords, w, wordQueueCap)
	}
}

// NoteTemplate records a template use: id into the recent-template queue,
// plus category and subcategory counters.
func (g *Guard) NoteTemplate(id, category, subcategory string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeDecay()

	g.recentTemplates = push(g.recentTemplates, id, templateQueueCap)
	if category != "" {
		g.categoryUse[category]++
	}
	if subcategory != "" {
		g.subcategoryUse[subcategory]++
	}
}

// IsRecentTemplate reports whether a template id sits in the recent queue.
func (g *Guard) IsRecentTemplate(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, recent := range g.recentTemplates {
		if recent == id {
			return true
		}
	}
	return false
}

// CategoryUse returns the decayed usage count for a template category.
func (g *Guard) CategoryUse(category string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeDecay()
	return g.categoryUse[category]
}

// SubcategoryUse returns the decayed usage count for a subcategory.
func (g *Guard) SubcategoryUse(subcategory string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.maybeDecay()
	return g.subcategoryUse[subcategory]
}

// RecentWords returns a copy of the significant-word queue, oldest first.
func (g *Guard) RecentWords() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.recentWords))
	copy(out, g.recentWords)
	return out
}

// RecentNames returns a copy of the accepted-name queue, oldest first.
func (g *Guard) RecentNames() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.recentNames))
	copy(out, g.recentNames)
	return out
}

// maybeDecay halves every usage counter when the decay interval has passed,
// dropping entries that reach zero. Counts never go negative. Caller holds
// the lock.
func (g *Guard) maybeDecay() {
	now := g.now()
	if now.Sub(g.lastDecay) < decayInterval {
		return
	}
	g.lastDecay = now
	for k, v := range g.categoryUse {
		v /= 2
		if v <= 0 {
			delete(g.categoryUse, k)
		} else {
			g.categoryUse[k] = v
		}
	}
	for k, v := range g.subcategoryUse {
		v /= 2
		if v <= 0 {
			delete(g.subcategoryUse, k)
		} else {
			g.subcategoryUse[k] = v
		}
	}
}

// push appends to a bounded FIFO queue, evicting the oldest beyond cap.
func push(queue []string, item string, capacity int) []string {
	queue = append(queue, item)
	if len(queue) > capacity {
		queue = queue[len(queue)-capacity:]
	}
	return queue
}

// significantWords splits a normalized name into words long enough to count
// for overlap checks.
func significantWords(name string) []string {
	fields := strings.Fields(name)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= significantWordLen {
			out = append(out, f)
		}
	}
	return out
}

// sharesAny reports whether a recorded name contains any of the words.
func sharesAny(name string, words []string) bool {
	for _, w := range strings.Fields(name) {
		if len(w) < significantWordLen {
			continue
		}
		for _, candidate := range words {
			if w == candidate {
				return true
			}
		}
	}
	return false
}
