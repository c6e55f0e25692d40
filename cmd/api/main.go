// ABOUTME: Main entry point for the Brochure API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brochure-app-api/api"
	"brochure-app-api/api/handlers"
	coreconfig "brochure-app-api/core/config"
	"brochure-app-api/core/fusion"
	"brochure-app-api/core/interfaces"
	"brochure-app-api/core/ranking"
	"brochure-app-api/core/search"
	"brochure-app-api/core/services"
	"brochure-app-api/infrastructure/cache/memory"
	"brochure-app-api/infrastructure/cache/redis"
	"brochure-app-api/infrastructure/cache/sqlite"
	stdhttp "brochure-app-api/infrastructure/http/standard"
	logruslogger "brochure-app-api/infrastructure/logger/logrus"
	"brochure-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Logging.Level, cfg.Logging.JSONFormat)
	logger.Info("Starting Brochure API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	fusionConfig := coreconfig.DefaultFusionConfig()

	rankingService := ranking.NewService(deps)
	searchProvider := services.NewSearchProviderService(deps, cfg.Services.SearchAPIURL)
	searchService := search.NewSearchService(deps, searchProvider, rankingService)

	fusionService := fusion.NewService(deps, fusionConfig)
	fusionService.SetFetcher(services.NewScraperService(deps))
	fusionService.SetThemeSelector(services.NewThemeService(deps))
	fusionService.SetColorService(services.NewColorMetricsService(deps))
	if cfg.Services.AnalyzerURL != "" {
		fusionService.SetAnalyzer(services.NewAnalyzerService(deps, cfg.Services.AnalyzerURL))
	}
	if cfg.Services.ClassifierURL != "" {
		fusionService.SetClassifier(services.NewClassifierService(deps, cfg.Services.ClassifierURL))
	}

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	brochureHandler := handlers.NewBrochureHandler(searchService, fusionService)
	brochureHandler.RegisterRoutes(humaAPI)

	imagesHandler := handlers.NewImagesHandler(fusionConfig)
	imagesHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// Brochure generation scrapes several pages per request.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to memory
// when an external backend is unreachable.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		return memory.NewMemoryCache(
			time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
			10*time.Minute,
		)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache

	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}
