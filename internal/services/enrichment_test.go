package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhatch/namesmith-api/internal/config"
)

func newTestEnrichment(baseURL string) *EnrichmentService {
	cfg := &config.Config{
		EnrichmentURL:      baseURL,
		EnrichmentTimeout:  2 * time.Second,
		EnrichmentCacheTTL: time.Hour,
	}
	return NewEnrichmentService(cfg, nil, nil, nil)
}

func TestEnrichGenreReturnsRelatedVocabulary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Query().Get("ml") != "":
			w.Write([]byte(`[{"word":"anvil","score":900},{"word":"forge","score":800}]`))
		case r.URL.Query().Get("rel_jjb") != "":
			w.Write([]byte(`[{"word":"molten","score":700}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	svc := newTestEnrichment(server.URL)
	result := svc.EnrichGenre(context.Background(), "Metal")

	require.Contains(t, result, "nouns")
	require.Contains(t, result, "adjectives")
	assert.Equal(t, []string{"anvil", "forge"}, result["nouns"])
	assert.Equal(t, []string{"molten"}, result["adjectives"])
}

func TestEnrichGenreMergesAcrossSeedTerms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("ml") {
		case "steel":
			w.Write([]byte(`[{"word":"anvil","score":900}]`))
		case "forge":
			w.Write([]byte(`[{"word":"ember","score":800},{"word":"anvil","score":700}]`))
		case "inferno":
			w.Write([]byte(`[{"word":"cinder","score":600}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	svc := newTestEnrichment(server.URL)
	result := svc.EnrichGenre(context.Background(), "metal")

	require.Contains(t, result, "nouns")
	assert.Equal(t, []string{"anvil", "ember", "cinder"}, result["nouns"])
}

func TestEnrichGenreSkipsPhrasesAndFragments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"word":"heavy metal","score":900},{"word":"re-verb","score":800},{"word":"riff","score":700},{"word":"  ","score":600}]`))
	}))
	defer server.Close()

	svc := newTestEnrichment(server.URL)
	result := svc.EnrichGenre(context.Background(), "rock")

	require.Contains(t, result, "nouns")
	assert.Equal(t, []string{"riff"}, result["nouns"])
}

func TestEnrichGenreDegradesOnUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTestEnrichment(server.URL)
	result := svc.EnrichGenre(context.Background(), "jazz")

	assert.Empty(t, result)
}

func TestEnrichGenreDegradesOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := &config.Config{
		EnrichmentURL:      server.URL,
		EnrichmentTimeout:  50 * time.Millisecond,
		EnrichmentCacheTTL: time.Hour,
	}
	svc := NewEnrichmentService(cfg, nil, nil, nil)

	result := svc.EnrichGenre(context.Background(), "folk")
	assert.Empty(t, result)
}

func TestEnrichGenreEmptyName(t *testing.T) {
	svc := newTestEnrichment("http://127.0.0.1:1")
	assert.Empty(t, svc.EnrichGenre(context.Background(), "  "))
}
