package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spinwheel-backend/internal/common/config"
	"spinwheel-backend/internal/common/logger"
	"spinwheel-backend/internal/common/middleware"
	wheelhttp "spinwheel-backend/internal/features/wheel/delivery/http"
	"spinwheel-backend/internal/features/wheel/models"
	"spinwheel-backend/internal/features/wheel/repository"
	memoryrepo "spinwheel-backend/internal/features/wheel/repository/memory"
	redisrepo "spinwheel-backend/internal/features/wheel/repository/redis"
	"spinwheel-backend/internal/features/wheel/service"
	"spinwheel-backend/internal/platform/messenger"
	redisplatform "spinwheel-backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	logger.Init("spinwheel-backend", cfg.Debug)

	catalog, err := models.LoadCatalog(cfg.Game.PrizesPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load prize catalog")
	}
	logger.Info().Int("prizes", len(catalog.Prizes)).Msg("Prize catalog loaded")

	ctx := context.Background()

	var repo repository.ParticipationRepository
	switch cfg.Store.Backend {
	case "redis":
		redisClient, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer redisClient.Close()
		repo = redisrepo.NewParticipationRepository(redisClient)
		logger.Info().Msg("Participation store: redis")
	case "memory":
		repo = memoryrepo.NewParticipationRepository()
		logger.Info().Msg("Participation store: in-memory")
	default:
		logger.Fatal().Str("backend", cfg.Store.Backend).Msg("Unknown store backend")
	}

	sender := messenger.NewClient(cfg.Messenger.SendURL, cfg.Messenger.AccessToken)

	spinSvc, err := service.NewSpinService(
		catalog,
		repo,
		sender,
		cfg.Game.OpenHour,
		cfg.Game.Timezone,
		cfg.Game.PendingTTL,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize spin service")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	wheelhttp.NewWheelHandler(spinSvc).RegisterRoutes(v1)

	registerProbes(router, repo)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func registerProbes(router *gin.Engine, repo repository.ParticipationRepository) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "spinwheel-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"error":  "participation store unavailable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "spinwheel-backend",
		})
	})
}
