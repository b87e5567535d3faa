package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightwatch-service/internal/infrastructure/config"
	"flightwatch-service/internal/infrastructure/oauth"
	"flightwatch-service/internal/infrastructure/persistence"
	"flightwatch-service/internal/infrastructure/server"
	gmailSender "flightwatch-service/internal/interface/gmail"
	"flightwatch-service/internal/interface/provider"
	"flightwatch-service/internal/interface/repository"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"
	"flightwatch-service/pkg/retry"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting FlightWatch Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the snapshot archive
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	flightRepo := repository.NewGormTrackedFlightRepository(gormDB)
	ruleRepo := repository.NewGormRuleRepository(gormDB)
	notificationRepo := repository.NewGormNotificationRepository(gormDB)
	snapshotRepo := repository.NewMongoSnapshotLogRepository(db)

	// Set up flight data provider
	flightProvider := provider.NewFlightDataClient(cfg.FlightAPIURL, cfg.FlightAPIKey, log)

	// Set up Gmail OAuth and mailer
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRefreshToken,
		log,
	)
	tokenSource := gmailOAuth.GetTokenSource(ctx)

	mailer, err := gmailSender.NewGmailMailer(ctx, tokenSource, cfg.EmailFrom, log)
	if err != nil {
		log.Fatal("Failed to create Gmail mailer", "error", err)
	}

	// Set up metrics and the flight processor
	appMetrics := metrics.NewMetrics("flightwatch")

	retryPolicy := retry.Policy{
		MaxAttempts: cfg.RetryMaxAttempts,
		Backoff:     cfg.RetryBackoff,
		Multiplier:  2.0,
	}

	flightProcessor := usecase.NewFlightProcessor(
		flightRepo,
		ruleRepo,
		notificationRepo,
		snapshotRepo,
		flightProvider,
		mailer,
		log,
		appMetrics,
		retryPolicy,
	)

	// Set up HTTP server: scheduler trigger, health, metrics
	srv := server.New(cfg.Port, cfg.ReadTimeout, cfg.WriteTimeout, cfg.CronSecret, flightProcessor, log)

	// Start HTTP server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("FlightWatch Service stopped")
}
