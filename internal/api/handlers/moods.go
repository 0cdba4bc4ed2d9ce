package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/soundhatch/namesmith-api/internal/engine/mood"
)

// MoodsHandler serves the read-only mood and atmosphere catalog.
type MoodsHandler struct{}

func NewMoodsHandler() *MoodsHandler {
	return &MoodsHandler{}
}

type moodInfo struct {
	Name       string      `json:"name"`
	Profile    mood.Vector `json:"profile"`
	Categories []string    `json:"categories"`
	Dominant   []string    `json:"dominant_traits"`
}

// ListMoods handles GET /api/v1/moods
func (h *MoodsHandler) ListMoods(c *gin.Context) {
	names := mood.Names()

	moods := make([]moodInfo, 0, len(names))
	for _, name := range names {
		profile := mood.Profiles[name]
		moods = append(moods, moodInfo{
			Name:       name,
			Profile:    profile,
			Categories: mood.CategoriesFor(name),
			Dominant:   mood.DominantTraits(profile, 2),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"moods": moods,
		"count": len(moods),
	})
}

type atmosphereInfo struct {
	Name             string       `json:"name"`
	Context          mood.Context `json:"context"`
	CompatibleMoods  []string     `json:"compatible_moods"`
	ConflictingMoods []string     `json:"conflicting_moods,omitempty"`
	Keywords         []string     `json:"keywords"`
}

// ListAtmospheres handles GET /api/v1/moods/atmospheres
func (h *MoodsHandler) ListAtmospheres(c *gin.Context) {
	names := make([]string, 0, len(mood.Library))
	for name := range mood.Library {
		names = append(names, name)
	}
	sort.Strings(names)

	atmospheres := make([]atmosphereInfo, 0, len(names))
	for _, name := range names {
		profile := mood.Library[name]
		atmospheres = append(atmospheres, atmosphereInfo{
			Name:             profile.Name,
			Context:          profile.Context,
			CompatibleMoods:  profile.CompatibleMoods,
			ConflictingMoods: profile.ConflictingMoods,
			Keywords:         profile.Keywords,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"atmospheres": atmospheres,
		"count":       len(atmospheres),
	})
}
