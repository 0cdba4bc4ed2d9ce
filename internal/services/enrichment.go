package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soundhatch/namesmith-api/internal/config"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
	"github.com/soundhatch/namesmith-api/internal/logger"
	"github.com/soundhatch/namesmith-api/internal/metrics"
)

const (
	enrichmentMaxWords    = 25
	enrichmentSeedLimit   = 3
	enrichmentCachePrefix = "enrich:v1:"
)

// datamuseWord is one entry from a Datamuse-compatible word API response.
type datamuseWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// EnrichmentService pulls thematically related vocabulary from an external
// lexical API and caches the results in redis. The generation engine works
// entirely from its built-in word lists; enrichment only widens them, so
// every failure path degrades to an empty result instead of an error the
// caller has to handle.
type EnrichmentService struct {
	httpClient *http.Client
	redis      *redis.Client
	baseURL    string
	cacheTTL   time.Duration

	cloudwatch *metrics.Client
	sentry     *metrics.SentryMetrics
}

// NewEnrichmentService creates the enrichment service. redisClient may be
// nil, in which case every lookup goes to the upstream API.
func NewEnrichmentService(cfg *config.Config, redisClient *redis.Client, cw *metrics.Client, sm *metrics.SentryMetrics) *EnrichmentService {
	return &EnrichmentService{
		httpClient: &http.Client{Timeout: cfg.EnrichmentTimeout},
		redis:      redisClient,
		baseURL:    strings.TrimRight(cfg.EnrichmentURL, "/"),
		cacheTTL:   cfg.EnrichmentCacheTTL,
		cloudwatch: cw,
		sentry:     sm,
	}
}

// EnrichGenre returns extra nouns and adjectives related to a genre's seed
// terms, keyed by word category so the result can be merged straight into a
// word source. Returns an empty map when the upstream API is unreachable.
func (s *EnrichmentService) EnrichGenre(ctx context.Context, genreName string) map[string]any {
	genreName = strings.ToLower(strings.TrimSpace(genreName))
	if genreName == "" {
		return map[string]any{}
	}

	seeds := wordsource.GenreTerms(genreName)
	if len(seeds) == 0 {
		seeds = []string{genreName}
	}
	if len(seeds) > enrichmentSeedLimit {
		seeds = seeds[:enrichmentSeedLimit]
	}

	nouns := s.relatedAcrossSeeds(ctx, seeds, "ml")
	adjectives := s.relatedAcrossSeeds(ctx, seeds, "rel_jjb")

	result := map[string]any{}
	if len(nouns) > 0 {
		result["nouns"] = nouns
	}
	if len(adjectives) > 0 {
		result["adjectives"] = adjectives
	}
	return result
}

// relatedAcrossSeeds merges the per-seed lookups for one relation, deduplicating
// across seeds and keeping the combined list within the per-category cap.
func (s *EnrichmentService) relatedAcrossSeeds(ctx context.Context, seeds []string, relation string) []string {
	seen := make(map[string]bool, enrichmentMaxWords)
	merged := make([]string, 0, enrichmentMaxWords)
	for _, seed := range seeds {
		for _, word := range s.relatedWords(ctx, seed, relation) {
			if seen[word] {
				continue
			}
			seen[word] = true
			merged = append(merged, word)
			if len(merged) == enrichmentMaxWords {
				return merged
			}
		}
	}
	return merged
}

// relatedWords fetches words related to seed through one Datamuse relation
// parameter ("ml" for meaning, "rel_jjb" for describing adjectives).
func (s *EnrichmentService) relatedWords(ctx context.Context, seed, relation string) []string {
	cacheKey := enrichmentCachePrefix + relation + ":" + seed

	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		s.recordFetch(ctx, 0, true, true)
		return cached
	}

	start := time.Now()
	words, err := s.fetch(ctx, seed, relation)
	duration := time.Since(start)
	if err != nil {
		logger.Warn(fmt.Sprintf("Enrichment fetch failed for %q: %v", seed, err), logger.Fields{
			"seed":     seed,
			"relation": relation,
		})
		s.recordFetch(ctx, duration, false, false)
		return nil
	}
	s.recordFetch(ctx, duration, false, true)

	s.cacheSet(ctx, cacheKey, words)
	return words
}

func (s *EnrichmentService) fetch(ctx context.Context, seed, relation string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/words?%s=%s&max=%d",
		s.baseURL, relation, url.QueryEscape(seed), enrichmentMaxWords)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build enrichment request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment API returned status %d", resp.StatusCode)
	}

	var entries []datamuseWord
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode enrichment response: %w", err)
	}

	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		word := strings.ToLower(strings.TrimSpace(entry.Word))
		// Multi-word phrases and fragments don't slot into templates
		if word == "" || strings.ContainsAny(word, " -") {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

func (s *EnrichmentService) cacheGet(ctx context.Context, key string) ([]string, bool) {
	if s.redis == nil {
		return nil, false
	}

	raw, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(fmt.Sprintf("Enrichment cache read failed: %v", err), logger.Fields{"key": key})
		}
		return nil, false
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return nil, false
	}
	return words, true
}

func (s *EnrichmentService) cacheSet(ctx context.Context, key string, words []string) {
	if s.redis == nil || len(words) == 0 {
		return
	}

	raw, err := json.Marshal(words)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		logger.Warn(fmt.Sprintf("Enrichment cache write failed: %v", err), logger.Fields{"key": key})
	}
}

func (s *EnrichmentService) recordFetch(ctx context.Context, duration time.Duration, cacheHit, success bool) {
	if s.cloudwatch != nil {
		s.cloudwatch.RecordEnrichmentFetch(duration, cacheHit, success)
	}
	if s.sentry != nil {
		s.sentry.RecordEnrichmentFetch(ctx, duration, cacheHit, success)
	}
}
