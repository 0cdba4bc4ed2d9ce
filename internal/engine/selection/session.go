package selection

import (
	"math/rand"

	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/mood"
)

// Criteria is the requested shape for a selection.
type Criteria struct {
	WordCount int
	Type      string // "band" or "song"
	Genre     string
	Mood      string

	// Atmosphere modifies mood-driven scoring; AtmosphereName selects a
	// curated profile from the mood library.
	Atmosphere     *mood.Context
	AtmosphereName string

	// MoodDriven switches scoring to the mood-alignment path when the
	// alignment confidence clears the engine's floor.
	MoodDriven bool

	// AvoidCategories and PreferCategories are applied after eligibility
	// filtering: avoided categories are removed outright, preferred ones
	// get a context boost.
	AvoidCategories  []string
	PreferCategories []string

	Intensity       string  // subtle, moderate, bold, experimental
	CreativityLevel float64 // 0-1
}

// Session is the transient request-scoped state for one generation run. It
// carries the criteria, the accepted outputs so far, and a handle to the
// repetition guard. The rand source is injected so tests can pin seeds.
type Session struct {
	Criteria Criteria
	Guard    *guard.Guard
	Rng      *rand.Rand
	Accepted []string
}

// NewSession builds a session around an existing guard. A nil guard gets a
// fresh one so a session is always safe to use.
func NewSession(criteria Criteria, g *guard.Guard, rng *rand.Rand) *Session {
	if g == nil {
		g = guard.New()
	}
	return &Session{
		Criteria: criteria,
		Guard:    g,
		Rng:      rng,
	}
}

// Accept records an emitted name on both the session and the guard.
func (s *Session) Accept(name string) {
	s.Accepted = append(s.Accepted, name)
	s.Guard.Accept(name)
}

func (c Criteria) avoids(category string) bool {
	for _, avoid := range c.AvoidCategories {
		if avoid == category {
			return true
		}
	}
	return false
}

func (c Criteria) prefers(category string) bool {
	for _, prefer := range c.PreferCategories {
		if prefer == category {
			return true
		}
	}
	return false
}
