package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soundhatch/namesmith-api/internal/api/handlers"
	apimiddleware "github.com/soundhatch/namesmith-api/internal/api/middleware"
	"github.com/soundhatch/namesmith-api/internal/config"
	"github.com/soundhatch/namesmith-api/internal/metrics"
	"github.com/soundhatch/namesmith-api/internal/middleware"
	"github.com/soundhatch/namesmith-api/internal/services"
)

func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, cloudwatch *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	sentryMetrics := metrics.NewSentryMetrics()
	enrichment := services.NewEnrichmentService(cfg, redisClient, cloudwatch, sentryMetrics)

	// Auth routes (public)
	auth := router.Group("/api/auth")
	{
		authHandler := handlers.NewAuthHandler(db, cfg)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// requireAuth guards user-owned resources; optionalAuth lets anonymous
	// callers generate names while still attributing authenticated traffic.
	requireAuth := middleware.JWTAuth(db, cfg)
	optionalAuth := middleware.OptionalJWTAuth(db, cfg)
	switch cfg.AuthMode {
	case "gateway":
		requireAuth = apimiddleware.GatewayAuth()
		optionalAuth = apimiddleware.OptionalGatewayAuth()
	case "none":
		requireAuth = apimiddleware.NoAuth()
		optionalAuth = apimiddleware.NoAuth()
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Generation endpoints (anonymous allowed)
		namesHandler := handlers.NewNamesHandler(db, enrichment, cloudwatch, sentryMetrics)
		v1.POST("/names/generate", optionalAuth, namesHandler.GenerateNames)
		v1.POST("/names/fuse", optionalAuth, namesHandler.FuseNames)

		// Catalog endpoints (public)
		genresHandler := handlers.NewGenresHandler()
		v1.GET("/genres", genresHandler.ListGenres)
		v1.GET("/genres/compatibility", genresHandler.GetCompatibility)

		moodsHandler := handlers.NewMoodsHandler()
		v1.GET("/moods", moodsHandler.ListMoods)
		v1.GET("/moods/atmospheres", moodsHandler.ListAtmospheres)

		// Favorites (protected)
		favoritesHandler := handlers.NewFavoritesHandler(db)
		v1.GET("/favorites", requireAuth, favoritesHandler.ListFavorites)
		v1.POST("/favorites", requireAuth, favoritesHandler.CreateFavorite)
		v1.PUT("/favorites/:id", requireAuth, favoritesHandler.UpdateFavorite)
		v1.DELETE("/favorites/:id", requireAuth, favoritesHandler.DeleteFavorite)

		// User/dashboard endpoints (protected)
		userHandler := handlers.NewUserHandler(db)
		v1.GET("/me", requireAuth, userHandler.GetProfile)
		v1.GET("/usage/stats", requireAuth, userHandler.GetUsageStats)
		v1.GET("/usage/history", requireAuth, userHandler.GetUsageHistory)
	}

	// Admin API routes (admin only)
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuth(db, cfg), middleware.AdminRequired())
	{
		adminHandler := handlers.NewAdminHandler(db)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.GetUserDetails)
		admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
		admin.PUT("/users/:id/toggle-active", adminHandler.ToggleUserActive)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/stats/generations", adminHandler.GetGenerationStats)
	}

	return router
}
