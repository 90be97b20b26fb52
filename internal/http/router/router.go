package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/projecthub-backend/internal/config"
	"github.com/ignatzorin/projecthub-backend/internal/http/handlers"
	"github.com/ignatzorin/projecthub-backend/internal/http/middleware"
)

func SetupRouter(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	catalogHandler *handlers.CatalogHandler,
	discoveryHandler *handlers.DiscoveryHandler,
	wsHandler *handlers.WSHandler,
	seedHandler *handlers.SeedHandler,
	redisClient *redis.Client,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	// Каталог (публичный)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/featured", projectHandler.Featured)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.GET("/catalog/categories", catalogHandler.ListCategories)
	api.GET("/catalog/skills", catalogHandler.ListSkills)

	// Сессии поиска
	sessions := api.Group("/discovery/sessions")
	if redisClient != nil {
		sessions.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimitLimit, cfg.RateLimitPeriod))
	} else {
		sessions.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	}
	{
		sessions.POST("", discoveryHandler.StartSession)
		sessions.GET("/:id", middleware.UUIDValidator("id"), discoveryHandler.GetSession)
		sessions.PUT("/:id/search", middleware.UUIDValidator("id"), discoveryHandler.SetSearch)
		sessions.PUT("/:id/status", middleware.UUIDValidator("id"), discoveryHandler.SetStatus)
		sessions.PUT("/:id/category", middleware.UUIDValidator("id"), discoveryHandler.SetCategory)
		sessions.POST("/:id/skills/toggle", middleware.UUIDValidator("id"), discoveryHandler.ToggleSkill)
		sessions.DELETE("/:id/filters", middleware.UUIDValidator("id"), discoveryHandler.ClearFilters)
		sessions.DELETE("/:id", middleware.UUIDValidator("id"), discoveryHandler.EndSession)
		sessions.GET("/:id/ws", middleware.UUIDValidator("id"), wsHandler.Handle)
	}

	return r
}
