package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soundhatch/namesmith-api/internal/engine/genre"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
)

// GenresHandler serves the read-only genre catalog endpoints.
type GenresHandler struct{}

func NewGenresHandler() *GenresHandler {
	return &GenresHandler{}
}

type genreInfo struct {
	Name                string   `json:"name"`
	Tone                string   `json:"tone"`
	PreferredCategories []string `json:"preferred_categories"`
	AvoidCategories     []string `json:"avoid_categories,omitempty"`
	Keywords            []string `json:"keywords"`
	SeedTerms           []string `json:"seed_terms"`
}

// ListGenres handles GET /api/v1/genres
func (h *GenresHandler) ListGenres(c *gin.Context) {
	names := genre.Names()

	genres := make([]genreInfo, 0, len(names))
	for _, name := range names {
		ch := genre.Catalog[name]
		genres = append(genres, genreInfo{
			Name:                ch.Name,
			Tone:                ch.Tone,
			PreferredCategories: ch.PreferredCategories,
			AvoidCategories:     ch.AvoidCategories,
			Keywords:            ch.Keywords,
			SeedTerms:           wordsource.GenreTerms(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"genres": genres,
		"count":  len(genres),
	})
}

// GetCompatibility handles GET /api/v1/genres/compatibility?primary=X&secondary=Y.
// Without query parameters it lists every known pair.
func (h *GenresHandler) GetCompatibility(c *gin.Context) {
	primary := strings.ToLower(strings.TrimSpace(c.Query("primary")))
	secondary := strings.ToLower(strings.TrimSpace(c.Query("secondary")))

	if primary == "" && secondary == "" {
		c.JSON(http.StatusOK, gin.H{
			"pairs": genre.Pairs(),
			"count": len(genre.Pairs()),
		})
		return
	}

	if primary == "" || secondary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both primary and secondary are required"})
		return
	}

	entry, ok := genre.Compatibility(primary, secondary)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "no compatibility profile for this pair",
			"primary":    primary,
			"secondary":  secondary,
			"compatible": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"primary":           primary,
		"secondary":         secondary,
		"compatible":        true,
		"score":             entry.Score,
		"style":             entry.Style,
		"synergies":         entry.Synergies,
		"hybrid_terms":      entry.HybridTerms,
		"conceptual_blends": entry.ConceptualBlends,
	})
}
