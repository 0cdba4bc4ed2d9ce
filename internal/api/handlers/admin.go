package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soundhatch/namesmith-api/internal/models"
)

const (
	activeStatusTrue  = "true"
	maxAdminLogsLimit = 50
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListUsers returns all users, optionally filtered by role and status
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User

	role := c.Query("role")
	isActive := c.Query("is_active")

	query := h.db.Model(&models.User{})

	if role != "" {
		query = query.Where("role = ?", role)
	}

	if isActive != "" {
		query = query.Where("is_active = ?", isActive == activeStatusTrue)
	}

	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUserRole updates a user's role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Role string `json:"role" binding:"required,oneof=admin user"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Role = req.Role
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully", "user": user})
}

// ToggleUserActive toggles a user's active status
func (h *AdminHandler) ToggleUserActive(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.IsActive = !user.IsActive
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}

// GetUserDetails returns detailed info about a specific user
func (h *AdminHandler) GetUserDetails(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var favoriteCount int64
	h.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoriteCount)

	var logs []models.GenerationLog
	h.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(maxAdminLogsLimit).Find(&logs)

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"favorite_count":  favoriteCount,
		"generation_logs": logs,
	})
}

// GetGenerationStats returns aggregate generation statistics across all users
func (h *AdminHandler) GetGenerationStats(c *gin.Context) {
	var totalRequests int64
	if err := h.db.Model(&models.GenerationLog{}).Count(&totalRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	type genreCount struct {
		Genre string `json:"genre"`
		Count int64  `json:"count"`
	}
	var topGenres []genreCount
	h.db.Model(&models.GenerationLog{}).
		Select("genre, COUNT(*) as count").
		Where("genre <> ''").
		Group("genre").
		Order("count DESC").
		Limit(10).
		Scan(&topGenres)

	var fallbackRequests int64
	h.db.Model(&models.GenerationLog{}).Where("fallback_used = ?", true).Count(&fallbackRequests)

	var fusionRequests int64
	h.db.Model(&models.GenerationLog{}).Where("fusion = ?", true).Count(&fusionRequests)

	c.JSON(http.StatusOK, gin.H{
		"total_requests":    totalRequests,
		"fusion_requests":   fusionRequests,
		"fallback_requests": fallbackRequests,
		"top_genres":        topGenres,
	})
}

// DeleteUser permanently deletes a user and all associated data
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	tx := h.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorites"})
		return
	}

	// Generation logs are kept for aggregate stats but detached from the
	// deleted account.
	if err := tx.Model(&models.GenerationLog{}).Where("user_id = ?", userID).Update("user_id", 0).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach generation logs"})
		return
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit deletion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
