package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/petnextdoor/pet_next_door/internal/config"
	"github.com/petnextdoor/pet_next_door/internal/geocoding"
	v1 "github.com/petnextdoor/pet_next_door/internal/handler/http/v1"
	"github.com/petnextdoor/pet_next_door/internal/notification"
	"github.com/petnextdoor/pet_next_door/internal/repository"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/pkg/logger"
	"github.com/petnextdoor/pet_next_door/pkg/postgres"
	redisclient "github.com/petnextdoor/pet_next_door/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/petnextdoor/pet_next_door/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pet Next Door API
// @version 1.0
// @description Neighborhood pet-owner network: profiles, adoption, community alerts, messaging and playdates.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Notification pipeline: services publish events to Redis, the worker
	// delivers them to the configured webhook.
	publisher := notification.NewRedisPublisher(redisClient)
	worker := notification.NewWorker(redisClient, log, cfg)
	worker.Start(ctx)

	// Geocoding clients
	geocoder := geocoding.NewNominatimClient(cfg.NominatimBaseURL, cfg.GeocodeUserAgent, cfg.GeocodeTimeout, log)
	iplocate := geocoding.NewIPAPIClient(cfg.IPAPIBaseURL, cfg.GeocodeTimeout, log)

	// Repositories
	userRepo := repository.NewUserRepository(dbpool)
	sessionStore := repository.NewSessionStore(redisClient, cfg.SessionTTL)
	petRepo := repository.NewPetRepository(dbpool)
	adoptionRepo := repository.NewAdoptionRepository(dbpool)
	postRepo := repository.NewPostRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool, redisClient)
	messageRepo := repository.NewMessageRepository(dbpool)
	playdateRepo := repository.NewPlaydateRepository(dbpool)

	// Services
	userService := service.NewUserService(userRepo, sessionStore, geocoder, iplocate, log)
	petService := service.NewPetService(petRepo, log)
	adoptionService := service.NewAdoptionService(adoptionRepo, petRepo, log)
	communityService := service.NewCommunityService(postRepo, log)
	alertService := service.NewAlertService(alertRepo, log, publisher)
	messagingService := service.NewMessagingService(messageRepo, userRepo, log, publisher)
	playdateService := service.NewPlaydateService(playdateRepo, petRepo, log)

	handler := v1.NewHandler(v1.Services{
		Users:     userService,
		Pets:      petService,
		Adoptions: adoptionService,
		Community: communityService,
		Alerts:    alertService,
		Messaging: messagingService,
		Playdates: playdateService,
	}, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
