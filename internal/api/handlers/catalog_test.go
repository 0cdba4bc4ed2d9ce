package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	router := gin.New()

	genres := NewGenresHandler()
	router.GET("/genres", genres.ListGenres)
	router.GET("/genres/compatibility", genres.GetCompatibility)

	moods := NewMoodsHandler()
	router.GET("/moods", moods.ListMoods)
	router.GET("/moods/atmospheres", moods.ListAtmospheres)

	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListGenres(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/genres")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Genres []genreInfo `json:"genres"`
		Count  int         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Genres), resp.Count)
	assert.NotEmpty(t, resp.Genres)

	for _, g := range resp.Genres {
		assert.NotEmpty(t, g.Name)
		assert.NotEmpty(t, g.SeedTerms, "genre %s has no seed terms", g.Name)
	}
}

func TestGetCompatibilityKnownPair(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/genres/compatibility?primary=Electronic&secondary=JAZZ")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Compatible bool    `json:"compatible"`
		Score      float64 `json:"score"`
		Style      string  `json:"style"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Compatible)
	assert.Greater(t, resp.Score, 0.0)
	assert.NotEmpty(t, resp.Style)
}

func TestGetCompatibilityUnknownPair(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/genres/compatibility?primary=polka&secondary=dubstep")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"compatible":false`)
}

func TestGetCompatibilityMissingParam(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/genres/compatibility?primary=rock")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCompatibilityListsPairs(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/genres/compatibility")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Pairs []string `json:"pairs"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Pairs)
	assert.Equal(t, len(resp.Pairs), resp.Count)
}

func TestListMoods(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/moods")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Moods []moodInfo `json:"moods"`
		Count int        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Moods)

	for _, m := range resp.Moods {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Categories, "mood %s has no categories", m.Name)
		assert.Len(t, m.Dominant, 2)
	}
}

func TestListAtmospheres(t *testing.T) {
	router := newCatalogRouter()

	rec := getJSON(t, router, "/moods/atmospheres")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Atmospheres []atmosphereInfo `json:"atmospheres"`
		Count       int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Atmospheres)

	for _, a := range resp.Atmospheres {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.CompatibleMoods)
	}
}
