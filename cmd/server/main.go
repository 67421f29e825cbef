package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/GaluhWikri/Portofolio-Galuh/adapters/event"
	"github.com/GaluhWikri/Portofolio-Galuh/adapters/github"
	httpAdapter "github.com/GaluhWikri/Portofolio-Galuh/adapters/http"
	"github.com/GaluhWikri/Portofolio-Galuh/adapters/media_storage"
	"github.com/GaluhWikri/Portofolio-Galuh/adapters/persistence"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/application/service"
	mediaUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/media"
	portfolioUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/portfolio"
	statsUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/stats"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Portfolio API Server...")

	// Portfolio store: one JSON document or Postgres, per deployment.
	var portfolioStore portfolio.Repository
	switch cfg.Storage.Mode {
	case "database":
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()

		images := portfolio.ImageStorage(cfg.Storage.Images)
		portfolioStore = persistence.NewPostgresPortfolioStore(dbPool, images, cfg.Storage.PublicDir, appLogger)
	default:
		portfolioStore = persistence.NewFilePortfolioStore(cfg.Storage.DataFile, cfg.Storage.PublicDir, appLogger)
	}

	// Redis backs the GitHub stats cache; optional.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
	}

	// Content events; nil when no brokers configured.
	kafkaClient := event.NewKafkaProducerClient(cfg, appLogger)
	defer kafkaClient.Close()

	// Uploader backend
	var uploader service.Uploader
	if cfg.Media.Provider == "cloudinary" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
	} else {
		uploader = media_storage.NewLocalDiskAdapter(cfg)
	}

	githubClient := github.NewClient(cfg, appLogger)

	// Use Cases
	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(portfolioStore)
	savePortfolioUseCase := portfolioUC.NewSavePortfolioUseCase(portfolioStore, kafkaClient, appLogger)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(uploader, kafkaClient, appLogger)
	githubStatsUseCase := statsUC.NewGitHubStatsUseCase(githubClient, redisClient, appLogger)

	// HTTP Handlers
	portfolioHandler := httpAdapter.NewPortfolioHandler(getPortfolioUseCase, savePortfolioUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadMediaUseCase, appLogger)
	iconsHandler := httpAdapter.NewIconsHandler(cfg.Storage.IconsDir, appLogger)
	statsHandler := httpAdapter.NewStatsHandler(githubStatsUseCase, appLogger)

	// Setup Gin router
	router := gin.Default()

	api := router.Group("/api")
	api.Use(httpAdapter.ErrorMiddleware(appLogger))
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/data", portfolioHandler.GetData)
		api.POST("/data", portfolioHandler.SaveData)
		api.POST("/upload", mediaHandler.Upload)
		api.GET("/icons", iconsHandler.List)
		api.GET("/github", statsHandler.GetGitHubStats)
	}

	// The public assets tree is served directly, like the old static host did.
	// Uploads are served from the same directory the uploader writes to.
	router.Static("/uploads", cfg.Storage.UploadDir)
	router.Static("/assets", filepath.Join(cfg.Storage.PublicDir, "assets"))

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
