package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"resale-predictor/internal/catalog"
	"resale-predictor/internal/config"
	"resale-predictor/internal/handler"
	"resale-predictor/internal/regressor"
	"resale-predictor/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("Smartphone Resale Price Predictor")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the reference catalog and the trained artifacts once, before
	// serving anything. A missing dependency stops the process here
	// rather than failing every request later.
	refCatalog, err := catalog.Load(cfg.Data.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.DatasetPath).Msg("Failed to load reference dataset")
	}
	log.Info().
		Int("brands", len(refCatalog.Brands())).
		Msg("Reference dataset loaded")

	forest, err := regressor.LoadForest(cfg.Model.ForestPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.ForestPath).Msg("Failed to load model artifact")
	}
	log.Info().Int("features", forest.FeatureCount()).Msg("Model loaded")

	brandEncoder, err := regressor.LoadBrandEncoder(cfg.Model.BrandEncoderPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.BrandEncoderPath).Msg("Failed to load brand encoder artifact")
	}
	log.Info().Msg("Brand encoder loaded")

	// Initialize services
	validator := service.NewValidator(refCatalog)
	encoder := service.NewEncoder(brandEncoder)
	predictionService := service.NewPredictionService(refCatalog, validator, encoder, forest)

	// Initialize handlers
	predictHandler := handler.NewPredictHandler(predictionService)
	optionsHandler := handler.NewOptionsHandler(refCatalog)
	healthHandler := handler.NewHealthHandler(predictionService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health and version endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Prediction endpoint
	router.POST("/predict", predictHandler.Predict)

	// Catalog endpoints
	api := router.Group("/api")
	{
		api.GET("/brands", optionsHandler.Brands)
		api.GET("/models/:brand", optionsHandler.ModelsForBrand)
		api.GET("/options", optionsHandler.Options)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Starting server")

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
}
