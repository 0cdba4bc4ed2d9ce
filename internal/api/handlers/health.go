package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness plus the state of the optional backing
// stores. The API serves generation traffic without either of them, so a
// degraded store never fails the check.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": h.databaseStatus(),
		"redis":    h.redisStatus(c),
	})
}

func (h *HealthHandler) databaseStatus() string {
	if h.db == nil {
		return "disabled"
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return "error"
	}
	if err := sqlDB.Ping(); err != nil {
		return "unreachable"
	}
	return "connected"
}

func (h *HealthHandler) redisStatus(c *gin.Context) string {
	if h.redis == nil {
		return "disabled"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.redis.Ping(ctx).Err(); err != nil {
		return "unreachable"
	}
	return "connected"
}
