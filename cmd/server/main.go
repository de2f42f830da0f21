package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/application"
	"github.com/adoteumpet/service-adoption/internal/breeds"
	"github.com/adoteumpet/service-adoption/internal/config"
	"github.com/adoteumpet/service-adoption/internal/database"
	"github.com/adoteumpet/service-adoption/internal/events"
	"github.com/adoteumpet/service-adoption/internal/handler"
	"github.com/adoteumpet/service-adoption/internal/logger"
	"github.com/adoteumpet/service-adoption/internal/middleware"
	"github.com/adoteumpet/service-adoption/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-adoption")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-adoption",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&repository.PetModel{}); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}

	// Initialize Kafka publisher when brokers are configured
	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, log)
		defer func() { _ = kafkaPublisher.Close() }()
		publisher = kafkaPublisher
		log.Info("kafka event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// Initialize repository and services
	petRepo := repository.NewGormPetRepository(db)
	petService := application.NewPetService(petRepo, publisher, log)

	breedCache := breeds.NewCache(breeds.DefaultTTL, breeds.SystemClock{})
	dogProvider := breeds.NewDogProvider(cfg.DogAPI.BaseURL, cfg.DogAPI.APIKey)
	catProvider := breeds.NewCatProvider(cfg.CatAPI.BaseURL, cfg.CatAPI.APIKey)
	breedService := application.NewBreedService(dogProvider, catProvider, breedCache, log)

	// Initialize HTTP handlers
	petHandler := handler.NewPetHandler(petService)
	breedHandler := handler.NewBreedHandler(breedService)
	healthHandler := handler.NewHealthHandler()

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register routes
	healthHandler.RegisterRoutes(&router.RouterGroup)
	petHandler.RegisterRoutes(&router.RouterGroup)
	breedHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-adoption...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-adoption stopped")
}
