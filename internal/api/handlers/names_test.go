package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newNamesRouter() *gin.Engine {
	handler := NewNamesHandler(nil, nil, nil, nil)
	router := gin.New()
	router.POST("/names/generate", handler.GenerateNames)
	router.POST("/names/fuse", handler.FuseNames)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type generateResponse struct {
	Results []struct {
		Name         string  `json:"name"`
		QualityScore float64 `json:"quality_score"`
		Source       string  `json:"source"`
	} `json:"results"`
	Count int `json:"count"`
}

func TestGenerateNamesEndpoint(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/generate", gin.H{
		"type":  "band",
		"genre": "rock",
		"count": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	for _, r := range resp.Results {
		assert.NotEmpty(t, r.Name)
		assert.Greater(t, r.QualityScore, 0.0)
	}
}

func TestGenerateNamesDefaults(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/generate", gin.H{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Count)
}

func TestGenerateNamesRejectsOversizedCount(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/generate", gin.H{"count": 50})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateNamesRejectsMalformedBody(t *testing.T) {
	router := newNamesRouter()

	req := httptest.NewRequest(http.MethodPost, "/names/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateNamesWithCustomWords(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/generate", gin.H{
		"genre": "folk",
		"count": 4,
		"custom_words": gin.H{
			"nouns": []string{"lantern", "harbor"},
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFuseNamesEndpoint(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/fuse", gin.H{
		"genre":           "electronic",
		"secondary_genre": "jazz",
		"count":           3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			Name     string `json:"name"`
			Metadata struct {
				PrimaryGenre   string `json:"primary_genre"`
				SecondaryGenre string `json:"secondary_genre"`
			} `json:"metadata"`
		} `json:"results"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "electronic", resp.Results[0].Metadata.PrimaryGenre)
	assert.Equal(t, "jazz", resp.Results[0].Metadata.SecondaryGenre)
}

func TestFuseNamesRequiresBothGenres(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/fuse", gin.H{"genre": "rock"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFuseNamesUnknownPair(t *testing.T) {
	router := newNamesRouter()

	rec := postJSON(t, router, "/names/fuse", gin.H{
		"genre":           "polka",
		"secondary_genre": "dubstep",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "fusion profile")
}

func TestGenerateNamesKeepsSessionsFresh(t *testing.T) {
	router := newNamesRouter()

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		rec := postJSON(t, router, "/names/generate", gin.H{
			"genre": "metal",
			"count": 4,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp generateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		for _, r := range resp.Results {
			assert.False(t, seen[r.Name], "name %q repeated across requests", r.Name)
			seen[r.Name] = true
		}
	}
}
