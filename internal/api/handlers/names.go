package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soundhatch/namesmith-api/internal/engine/fusion"
	"github.com/soundhatch/namesmith-api/internal/engine/generator"
	"github.com/soundhatch/namesmith-api/internal/engine/guard"
	"github.com/soundhatch/namesmith-api/internal/engine/wordsource"
	"github.com/soundhatch/namesmith-api/internal/logger"
	"github.com/soundhatch/namesmith-api/internal/metrics"
	"github.com/soundhatch/namesmith-api/internal/middleware"
	"github.com/soundhatch/namesmith-api/internal/models"
	"github.com/soundhatch/namesmith-api/internal/observability"
	"github.com/soundhatch/namesmith-api/internal/services"
)

const (
	maxNamesPerRequest = 20
	maxGuardSessions   = 1000
)

// NamesHandler serves the name generation endpoints. It keeps one
// repetition guard per caller so consecutive requests from the same user
// stay fresh, while different users never influence each other.
type NamesHandler struct {
	db         *gorm.DB
	gen        *generator.Generator
	fuser      *fusion.Engine
	enrichment *services.EnrichmentService
	cloudwatch *metrics.Client
	sentry     *metrics.SentryMetrics

	mu     sync.Mutex
	guards map[string]*guard.Guard
}

func NewNamesHandler(db *gorm.DB, enrichment *services.EnrichmentService, cw *metrics.Client, sm *metrics.SentryMetrics) *NamesHandler {
	return &NamesHandler{
		db:         db,
		gen:        generator.New(),
		fuser:      fusion.NewEngine(),
		enrichment: enrichment,
		cloudwatch: cw,
		sentry:     sm,
		guards:     make(map[string]*guard.Guard),
	}
}

// GenerateNamesRequest is the public request body. It wraps the engine
// request with transport-only options.
type GenerateNamesRequest struct {
	generator.Request

	// CustomWords merges client-supplied word lists into the built-in
	// vocabulary before generation.
	CustomWords map[string]any `json:"custom_words,omitempty"`

	// Enrich widens the vocabulary with words fetched from the lexical API.
	Enrich bool `json:"enrich,omitempty"`
}

// GenerateNames handles POST /api/v1/names/generate
func (h *NamesHandler) GenerateNames(c *gin.Context) {
	var req GenerateNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Count > maxNamesPerRequest {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("count must be %d or less", maxNamesPerRequest),
		})
		return
	}

	start := time.Now()
	requestID := c.GetString("request_id")

	trace := observability.GetClient().StartTrace(c.Request.Context(), "names.generate", map[string]interface{}{
		"request_id": requestID,
	})
	defer trace.Finish()

	gen := trace.Generation("generate", map[string]interface{}{
		"genre": req.Genre,
		"type":  req.Type,
	})
	gen.Input(req.Request)

	src := h.buildSource(c, &req)
	gd := h.guardFor(h.sessionKey(c))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	results := h.gen.Generate(req.Request, src, gd, rng)

	gen.Output(resultNames(results))
	gen.Finish()

	duration := time.Since(start)
	fallbackUsed := anyFallback(results)

	h.recordBatch(c, "generate", req.Genre, len(results), fallbackUsed, duration)
	h.logGeneration(c, req.Request, results, fallbackUsed, duration, requestID)

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"count":      len(results),
		"request_id": requestID,
	})
}

// FuseNames handles POST /api/v1/names/fuse. Unlike the generate endpoint
// it surfaces engine errors: an unknown genre pair is a client error, not
// something to paper over with fallbacks.
func (h *NamesHandler) FuseNames(c *gin.Context) {
	var req GenerateNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Genre == "" || req.SecondaryGenre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "genre and secondary_genre are required"})
		return
	}
	if req.Count > maxNamesPerRequest {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("count must be %d or less", maxNamesPerRequest),
		})
		return
	}

	start := time.Now()
	requestID := c.GetString("request_id")

	trace := observability.GetClient().StartTrace(c.Request.Context(), "names.fuse", map[string]interface{}{
		"request_id": requestID,
	})
	defer trace.Finish()

	src := h.buildSource(c, &req)
	gd := h.guardFor(h.sessionKey(c))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	fusionReq := fusion.Request{
		PrimaryGenre:         req.Genre,
		SecondaryGenre:       req.SecondaryGenre,
		Mood:                 req.Mood,
		WordCount:            req.WordCount,
		Count:                req.Count,
		Intensity:            req.Intensity,
		CreativityLevel:      req.CreativityLevel,
		PreserveAuthenticity: req.PreserveAuthenticity,
	}

	results, err := h.fuser.Fuse(fusionReq, src, gd, rng)
	duration := time.Since(start)

	if err != nil {
		switch err {
		case fusion.ErrIncompatibleGenres:
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("genres %q and %q have no fusion profile", req.Genre, req.SecondaryGenre),
			})
		case fusion.ErrFusionExhausted:
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "no valid fusion could be produced for this combination",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fusion failed"})
		}
		if h.sentry != nil {
			h.sentry.RecordGenerationDuration(c.Request.Context(), duration, false)
		}
		return
	}

	h.recordBatch(c, "fuse", req.Genre, len(results), false, duration)

	engineReq := req.Request
	engineReq.Count = len(results)
	h.logGeneration(c, engineReq, fusionAsResults(results), false, duration, requestID)

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"count":      len(results),
		"request_id": requestID,
	})
}

// buildSource assembles the word source for one request: built-in genre
// vocabulary, plus client words, plus enrichment when asked for. Client
// words win on category collisions.
func (h *NamesHandler) buildSource(c *gin.Context, req *GenerateNamesRequest) *wordsource.Source {
	raw := map[string]any{}

	if req.Enrich && h.enrichment != nil {
		for category, words := range h.enrichment.EnrichGenre(c.Request.Context(), req.Genre) {
			raw[category] = words
		}
	}
	for k, v := range req.CustomWords {
		raw[k] = v
	}

	return h.gen.BuildSource("request", raw, req.Genre)
}

// sessionKey identifies the caller for repetition tracking. Authenticated
// users get a stable key; anonymous callers are keyed by client IP.
func (h *NamesHandler) sessionKey(c *gin.Context) string {
	if userID, ok := middleware.GetCurrentUserID(c); ok && userID != 0 {
		return fmt.Sprintf("user:%d", userID)
	}
	return "ip:" + c.ClientIP()
}

func (h *NamesHandler) guardFor(key string) *guard.Guard {
	h.mu.Lock()
	defer h.mu.Unlock()

	if g, ok := h.guards[key]; ok {
		return g
	}

	// Crude bound on memory for anonymous traffic. Dropping every guard
	// only resets freshness tracking, which is acceptable.
	if len(h.guards) >= maxGuardSessions {
		h.guards = make(map[string]*guard.Guard)
	}

	g := guard.New()
	h.guards[key] = g
	return g
}

func (h *NamesHandler) recordBatch(c *gin.Context, path, genreName string, count int, fallbackUsed bool, duration time.Duration) {
	genreName = strings.ToLower(strings.TrimSpace(genreName))
	if genreName == "" {
		genreName = "any"
	}

	if h.cloudwatch != nil {
		h.cloudwatch.RecordGenerationBatch(path, genreName, count, fallbackUsed)
	}
	if h.sentry != nil {
		h.sentry.RecordGenerationBatch(c.Request.Context(), path, genreName, count, fallbackUsed)
		h.sentry.RecordGenerationDuration(c.Request.Context(), duration, true)
	}

	logger.LogGenerationRequest(c.Request.Context(), genreName, duration, count, logger.Fields{
		"path":          path,
		"fallback_used": fallbackUsed,
	})
}

// logGeneration writes the usage history row. Best effort: a logging
// failure never fails the request.
func (h *NamesHandler) logGeneration(c *gin.Context, req generator.Request, results []generator.Result, fallbackUsed bool, duration time.Duration, requestID string) {
	if h.db == nil {
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	entry := models.GenerationLog{
		UserID:         userID,
		Type:           req.Type,
		Genre:          strings.ToLower(req.Genre),
		SecondaryGenre: strings.ToLower(req.SecondaryGenre),
		Mood:           strings.ToLower(req.Mood),
		WordCount:      req.WordCount,
		Count:          len(results),
		Fusion:         req.SecondaryGenre != "",
		FallbackUsed:   fallbackUsed,
		DurationMS:     int(duration.Milliseconds()),
		RequestID:      requestID,
	}
	if entry.Type == "" {
		entry.Type = "band"
	}
	if len(results) > 0 {
		entry.TopName = results[0].Name
		entry.TopQuality = results[0].QualityScore
	}

	if err := h.db.Create(&entry).Error; err != nil {
		logger.Warn(fmt.Sprintf("Failed to write generation log: %v", err), logger.Fields{
			"request_id": requestID,
		})
	}
}

func anyFallback(results []generator.Result) bool {
	for _, r := range results {
		if r.Source == generator.SourceFallback {
			return true
		}
	}
	return false
}

func resultNames(results []generator.Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	return names
}

func fusionAsResults(results []fusion.Result) []generator.Result {
	out := make([]generator.Result, len(results))
	for i, r := range results {
		meta := r.Metadata
		out[i] = generator.Result{
			Name:         r.Name,
			QualityScore: r.QualityScore,
			Source:       generator.SourceFusion,
			Fusion:       &meta,
		}
	}
	return out
}
