package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesAxesWithinRange(t *testing.T) {
	for name, v := range Profiles {
		for trait, value := range map[string]int{
			TraitEnergy: v.Energy, TraitValence: v.Valence, TraitComplexity: v.Complexity,
			TraitIntensity: v.Intensity, TraitDarkness: v.Darkness, TraitMystery: v.Mystery,
		} {
			assert.GreaterOrEqual(t, value, 0, "%s.%s", name, trait)
			assert.LessOrEqual(t, value, 100, "%s.%s", name, trait)
		}
	}
}

func TestResolveUnknownMood(t *testing.T) {
	_, ok := Resolve("triumphant-zeal", nil)
	assert.False(t, ok)
}

func TestResolveWithoutContextReturnsBase(t *testing.T) {
	v, ok := Resolve("dark", nil)
	require.True(t, ok)
	assert.Equal(t, Profiles["dark"], v)
}

func TestBlendPullsTowardDescriptor(t *testing.T) {
	base := Profiles["happy"]
	blended := Blend(base, Context{TimeOfDay: "midnight"})

	// Midnight is darker and more mysterious than any happy baseline.
	assert.Greater(t, blended.Darkness, base.Darkness)
	assert.Greater(t, blended.Mystery, base.Mystery)
	assert.Less(t, blended.Energy, base.Energy)
}

func TestBlendWeightControlsPull(t *testing.T) {
	base := Profiles["peaceful"]
	gentle := Blend(base, Context{Weather: "storm", Weight: 0.1})
	strong := Blend(base, Context{Weather: "storm", Weight: 0.9})

	assert.Less(t, gentle.Intensity, strong.Intensity)
	assert.LessOrEqual(t, strong.Intensity, 100)
}

func TestBlendUnknownDescriptorsAreIgnored(t *testing.T) {
	base := Profiles["epic"]
	out := Blend(base, Context{TimeOfDay: "brunch", Weather: "drizzle-ish"})
	assert.Equal(t, base, out)
}

func TestDominantTraitsOrderAndDeterminism(t *testing.T) {
	v := Profiles["aggressive"]
	top := DominantTraits(v, 3)
	require.Len(t, top, 3)
	assert.Equal(t, TraitIntensity, top[0])
	assert.Equal(t, TraitEnergy, top[1])

	again := DominantTraits(v, 3)
	assert.Equal(t, top, again)
}

func TestScoreUnknownMoodHasZeroConfidence(t *testing.T) {
	a := Score("mystic", "not-a-mood", nil, "")
	assert.Zero(t, a.Score)
	assert.Zero(t, a.Confidence)
}

func TestScoreRewardsAlignedCategory(t *testing.T) {
	aligned := Score("aggressive", "aggressive", nil, "")
	misaligned := Score("romantic", "aggressive", nil, "")

	assert.Greater(t, aligned.Score, misaligned.Score)
	assert.InDelta(t, aligned.Confidence, misaligned.Confidence, 0.01)
}

func TestScoreAtmosphereBonusAndPenalty(t *testing.T) {
	plain := Score("mystic", "dark", nil, "")
	boosted := Score("mystic", "dark", nil, "storm passage")
	punished := Score("mystic", "peaceful", nil, "storm passage")
	plainPeaceful := Score("mystic", "peaceful", nil, "")

	assert.Greater(t, boosted.Score, plain.Score)
	assert.Less(t, punished.Score, plainPeaceful.Score)
}

func TestScoreConfidenceGrowsWithDescriptors(t *testing.T) {
	bare := Score("cosmic", "mysterious", nil, "")
	rich := Score("cosmic", "mysterious", &Context{
		TimeOfDay: "midnight", Season: "winter", Weather: "fog", Culture: "nordic",
	}, "northern silence")

	assert.Greater(t, rich.Confidence, bare.Confidence)
	assert.LessOrEqual(t, rich.Confidence, 1.0)
}

func TestLibraryProfilesAreInternallyConsistent(t *testing.T) {
	for name, atm := range Library {
		assert.Equal(t, name, atm.Name)
		for _, m := range atm.CompatibleMoods {
			assert.True(t, Known(m), "%s lists unknown compatible mood %q", name, m)
			assert.False(t, contains(atm.ConflictingMoods, m),
				"%s lists %q as both compatible and conflicting", name, m)
		}
		for _, m := range atm.ConflictingMoods {
			assert.True(t, Known(m), "%s lists unknown conflicting mood %q", name, m)
		}
	}
}

func TestMoodCategoriesReferToKnownMoods(t *testing.T) {
	for m := range moodCategories {
		assert.True(t, Known(m), "category table names unknown mood %q", m)
	}
	assert.NotEmpty(t, CategoriesFor("dark"))
	assert.Nil(t, CategoriesFor("not-a-mood"))
}
