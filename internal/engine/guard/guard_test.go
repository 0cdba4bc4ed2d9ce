package guard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactDuplicateIsRejected(t *testing.T) {
	g := New()

	assert.False(t, g.ShouldReject("Velvet Thunder"))
	g.Accept("Velvet Thunder")
	assert.True(t, g.ShouldReject("Velvet Thunder"))
	assert.True(t, g.ShouldReject("velvet thunder"), "duplicate check is case-insensitive")
}

func TestSharedSignificantWordRejection(t *testing.T) {
	g := New()
	g.SetOverlapFraction(0.5)

	g.Accept("Velvet Thunder")
	g.Accept("Silent Harbor")

	// "Thunder Road" shares "thunder" with 1 of 2 recent names: 0.5 is not
	// strictly greater than the fraction, so it passes.
	assert.False(t, g.ShouldReject("Thunder Road"))

	g.Accept("Thunder Road")
	// Now "thunder" appears in 2 of 3 recent names.
	assert.True(t, g.ShouldReject("Golden Thunder"))
}

func TestShortWordsNeverTriggerOverlap(t *testing.T) {
	g := New()
	g.Accept("The Fox")
	g.Accept("The Owl")
	g.Accept("The Elk")

	assert.False(t, g.ShouldReject("The Ravens"), "words under 4 chars are not significant")
}

func TestWordQueueEvictsFIFO(t *testing.T) {
	g := New()
	for i := 0; i < wordQueueCap+10; i++ {
		g.Accept(fmt.Sprintf("unique-name-%02d", i))
	}

	names := g.RecentNames()
	require.Len(t, names, wordQueueCap)
	assert.Equal(t, "unique-name-10", names[0], "oldest names evicted first")

	assert.LessOrEqual(t, len(g.RecentWords()), wordQueueCap)
}

func TestTemplateQueueBounded(t *testing.T) {
	g := New()
	for i := 0; i < templateQueueCap+5; i++ {
		g.NoteTemplate(fmt.Sprintf("tpl-%02d", i), "abstract", "descriptive")
	}

	assert.False(t, g.IsRecentTemplate("tpl-00"), "oldest template evicted")
	assert.True(t, g.IsRecentTemplate("tpl-24"))
	assert.Equal(t, templateQueueCap+5, g.CategoryUse("abstract"))
}

func TestDecayHalvesCountsAndNeverGoesNegative(t *testing.T) {
	current := time.Now()
	g := NewWithClock(func() time.Time { return current })

	for i := 0; i < 5; i++ {
		g.NoteTemplate("tpl-a", "mystic", "ritual")
	}
	g.NoteTemplate("tpl-b", "nature", "")
	require.Equal(t, 5, g.CategoryUse("mystic"))

	previous := 5
	for pass := 0; pass < 6; pass++ {
		current = current.Add(decayInterval + time.Second)
		count := g.CategoryUse("mystic")
		assert.LessOrEqual(t, count, previous, "decay pass %d increased a count", pass)
		assert.GreaterOrEqual(t, count, 0)
		previous = count
	}
	assert.Zero(t, g.CategoryUse("mystic"), "count decays to removal")
	assert.Zero(t, g.CategoryUse("nature"))
}

func TestDecayDoesNotFireWithinInterval(t *testing.T) {
	current := time.Now()
	g := NewWithClock(func() time.Time { return current })

	g.NoteTemplate("tpl-a", "cosmic", "vast")
	current = current.Add(decayInterval / 2)
	assert.Equal(t, 1, g.CategoryUse("cosmic"))
}

func TestConcurrentAccess(t *testing.T) {
	g := New()
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				name := fmt.Sprintf("worker-%d-name-%d", w, i)
				g.ShouldReject(name)
				g.Accept(name)
				g.NoteTemplate("tpl", "abstract", "compound")
			}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}
	assert.LessOrEqual(t, len(g.RecentNames()), wordQueueCap)
}
