package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soundhatch/namesmith-api/internal/middleware"
	"github.com/soundhatch/namesmith-api/internal/models"
)

const (
	defaultFavoritesPageSize = 50
	maxFavoritesPageSize     = 200
)

// FavoritesHandler manages a user's saved names.
type FavoritesHandler struct {
	db *gorm.DB
}

func NewFavoritesHandler(db *gorm.DB) *FavoritesHandler {
	return &FavoritesHandler{db: db}
}

type CreateFavoriteRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=band song"`
	Genre string `json:"genre"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type UpdateFavoriteRequest struct {
	Notes *string `json:"notes"`
	Genre *string `json:"genre"`
	Mood  *string `json:"mood"`
}

// ListFavorites handles GET /api/v1/favorites
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit := defaultFavoritesPageSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxFavoritesPageSize {
		limit = maxFavoritesPageSize
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	query := h.db.Where("user_id = ?", userID)
	if nameType := c.Query("type"); nameType != "" {
		query = query.Where("type = ?", nameType)
	}
	if genre := c.Query("genre"); genre != "" {
		query = query.Where("genre = ?", strings.ToLower(genre))
	}

	var total int64
	if err := query.Model(&models.Favorite{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}

	var favorites []models.Favorite
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// CreateFavorite handles POST /api/v1/favorites
func (h *FavoritesHandler) CreateFavorite(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite := models.Favorite{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Type:   req.Type,
		Genre:  strings.ToLower(req.Genre),
		Mood:   strings.ToLower(req.Mood),
		Notes:  req.Notes,
	}

	if favorite.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be blank"})
		return
	}

	var existing models.Favorite
	if err := h.db.Where("user_id = ? AND name = ?", userID, favorite.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Name is already in favorites"})
		return
	}

	if err := h.db.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// UpdateFavorite handles PUT /api/v1/favorites/:id
func (h *FavoritesHandler) UpdateFavorite(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	favorite, found := h.findOwned(c, userID)
	if !found {
		return
	}

	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Notes != nil {
		favorite.Notes = *req.Notes
	}
	if req.Genre != nil {
		favorite.Genre = strings.ToLower(*req.Genre)
	}
	if req.Mood != nil {
		favorite.Mood = strings.ToLower(*req.Mood)
	}

	if err := h.db.Save(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// DeleteFavorite handles DELETE /api/v1/favorites/:id
func (h *FavoritesHandler) DeleteFavorite(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	favorite, found := h.findOwned(c, userID)
	if !found {
		return
	}

	if err := h.db.Delete(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted"})
}

// findOwned loads the favorite in the :id parameter and verifies ownership.
// Writes the error response itself when the lookup fails.
func (h *FavoritesHandler) findOwned(c *gin.Context, userID uint) (models.Favorite, bool) {
	var favorite models.Favorite

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite ID"})
		return favorite, false
	}

	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return favorite, false
	}

	return favorite, true
}
