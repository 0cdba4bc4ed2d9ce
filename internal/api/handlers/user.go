package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soundhatch/namesmith-api/internal/middleware"
	"github.com/soundhatch/namesmith-api/internal/models"
)

const maxHistoryPageSize = 100

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetProfile returns the current user's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var favoriteCount int64
	h.db.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Count(&favoriteCount)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"is_active":  user.IsActive,
			"created_at": user.CreatedAt,
		},
		"favorite_count": favoriteCount,
	})
}

// GetUsageStats returns aggregate generation statistics for the current user
func (h *UserHandler) GetUsageStats(c *gin.Context) {
	userID, exists := middleware.GetCurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Parse time range from query params
	var from, to time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			from = parsed
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			to = parsed
		}
	}

	// Default to last 30 days if not specified
	if from.IsZero() {
		from = time.Now().AddDate(0, 0, -30)
	}
	if to.IsZero() {
		to = time.Now()
	}

	base := h.db.Model(&models.GenerationLog{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to)

	var requests int64
	if err := base.Count(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get usage stats"})
		return
	}

	type sums struct {
		Names    int64
		Fusions  int64
		Fallback int64
	}
	var s sums
	h.db.Model(&models.GenerationLog{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Select("COALESCE(SUM(count),0) as names, COALESCE(SUM(CASE WHEN fusion THEN 1 ELSE 0 END),0) as fusions, COALESCE(SUM(CASE WHEN fallback_used THEN 1 ELSE 0 END),0) as fallback").
		Scan(&s)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"requests":          requests,
			"names_generated":   s.Names,
			"fusion_requests":   s.Fusions,
			"fallback_requests": s.Fallback,
		},
		"period": gin.H{
			"from": from.Format(time.RFC3339),
			"to":   to.Format(time.RFC3339),
		},
	})
}

// GetUsageHistory returns paginated generation history
func (h *UserHandler) GetUsageHistory(c *gin.Context) {
	userID, exists := middleware.GetCurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	pageSize := 20
	if sizeStr := c.Query("page_size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			pageSize = s
			if pageSize > maxHistoryPageSize {
				pageSize = maxHistoryPageSize
			}
		}
	}

	offset := (page - 1) * pageSize

	var logs []models.GenerationLog
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get usage history"})
		return
	}

	var totalCount int64
	if err := h.db.Model(&models.GenerationLog{}).Where("user_id = ?", userID).Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count usage history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": totalCount,
			"total_pages": (totalCount + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
