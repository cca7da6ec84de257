package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/castkeep/catalog-api/api/episodes"
	"github.com/castkeep/catalog-api/api/health"
	"github.com/castkeep/catalog-api/api/podcasts"
	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/api/version"
	_ "github.com/castkeep/catalog-api/docs/swagger"
	episodesService "github.com/castkeep/catalog-api/internal/services/episodes"
	podcastsService "github.com/castkeep/catalog-api/internal/services/podcasts"
	"github.com/castkeep/catalog-api/internal/services/uploads"
	"github.com/castkeep/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize services if the database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if err := initializeServices(deps, cfg); err != nil {
			return err
		}
	}

	// Uploaded cover images are served statically
	if deps.Uploads != nil {
		engine.Static(cfg.Storage.PublicPath, deps.Uploads.Dir())
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))

	podcasts.RegisterRoutes(apiGroup.Group("/podcasts"), deps)
	episodes.RegisterRoutes(apiGroup.Group("/episodes"), deps)

	return nil
}

// initializeServices wires repositories and services onto deps when
// they have not been injected already (tests inject their own)
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	gdb := deps.DB.DB

	podcastRepo := podcastsService.NewRepository(gdb)
	if deps.PodcastService == nil {
		deps.PodcastService = podcastsService.NewService(podcastRepo)
	}

	if deps.EpisodeService == nil {
		episodeRepo := episodesService.NewRepository(gdb)
		deps.EpisodeService = episodesService.NewService(episodeRepo, podcastRepo)
	}

	if deps.Uploads == nil {
		store, err := uploads.NewService(cfg.Storage.UploadDir, cfg.Storage.PublicPath, cfg.Storage.MaxUploadSize)
		if err != nil {
			return fmt.Errorf("failed to initialize upload storage: %w", err)
		}
		deps.Uploads = store
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
