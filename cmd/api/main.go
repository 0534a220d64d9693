package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach-backend/config"
	_ "outreach-backend/docs" // Important for Swagger
	v1 "outreach-backend/internal/delivery/http/v1"
	"outreach-backend/internal/domain"
	"outreach-backend/internal/repository/postgres"
	"outreach-backend/internal/usecase"
	"outreach-backend/pkg/database"
	"outreach-backend/pkg/email"
	"outreach-backend/pkg/logger"
	"outreach-backend/pkg/ratelimit"
	"outreach-backend/pkg/redis"
	"outreach-backend/pkg/security"
	"outreach-backend/pkg/slack"
	"outreach-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// @title           Outreach Backend API
// @version         1.0
// @description     Backend for recruiting outreach: offer pages, candidate responses and admin tracking.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting outreach backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (shared rate-limit counters; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to process-local counters", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	responseRepo := postgres.NewResponseRepository(dbPool)
	pageViewRepo := postgres.NewPageViewRepository(dbPool)
	noteRepo := postgres.NewNoteRepository(dbPool)
	activityRepo := postgres.NewActivityRepository(dbPool)

	// 6. Setup Notification Services
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - response notifications will fail")
	}
	slackClient := slack.NewClient(cfg.SlackWebhookURL)

	// 7. Security event persistence (optional)
	securityLogger := security.DefaultLogger()
	if cfg.SecurityLogToDB {
		securityLogger.SetPersistFunc(func(ctx context.Context, event security.SecurityEvent) error {
			details := map[string]interface{}{"ip": event.IP, "user_agent": event.UserAgent}
			for k, v := range event.Details {
				details[k] = v
			}
			return activityRepo.Insert(ctx, &domain.ActivityLogEntry{
				ID:          uuid.NewString(),
				Action:      domain.ActivitySecurityEvent,
				Description: string(event.Event),
				PerformedBy: "system",
				Metadata:    details,
			})
		})
	}

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(engine)
	}

	offerUC := usecase.NewOfferUsecase(candidateRepo, pageViewRepo, activityRepo)
	responseUC := usecase.NewResponseUsecase(candidateRepo, responseRepo, activityRepo, emailService, slackClient)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, pageViewRepo, responseRepo, noteRepo, activityRepo, validate)
	activityUC := usecase.NewActivityUsecase(activityRepo, responseRepo)

	// 9. Setup Rate Limiter
	limiter := ratelimit.New(redis.Client())

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		OfferUC:     offerUC,
		ResponseUC:  responseUC,
		CandidateUC: candidateUC,
		ActivityUC:  activityUC,
		Limiter:     limiter,
		Config:      cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
