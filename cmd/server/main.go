package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/internal/infrastructure/config"
	"github.com/AbdurRahman-05/wetreck-backend/internal/infrastructure/oauth"
	"github.com/AbdurRahman-05/wetreck-backend/internal/infrastructure/persistence"
	"github.com/AbdurRahman-05/wetreck-backend/internal/interface/httpapi"
	"github.com/AbdurRahman-05/wetreck-backend/internal/interface/mailer"
	"github.com/AbdurRahman-05/wetreck-backend/internal/interface/payment"
	mongoRepo "github.com/AbdurRahman-05/wetreck-backend/internal/interface/repository"
	"github.com/AbdurRahman-05/wetreck-backend/internal/usecase"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Wetreck Backend")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	bookingRepo := mongoRepo.NewMongoBookingRepository(db)
	membershipRepo := mongoRepo.NewMongoMembershipRepository(db)

	// Set up the mailer
	var mail repository.Mailer
	switch cfg.EmailProvider {
	case "gmail":
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		mail, err = mailer.NewGmailMailer(ctx, gmailOAuth.GetTokenSource(ctx), cfg.EmailFrom, cfg.EmailSendTimeout, log)
		if err != nil {
			log.Fatal("Failed to create Gmail mailer", "error", err)
		}
	default:
		mail = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailSendTimeout, log)
	}

	// Set up payment gateway
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, log)

	// Set up metrics and services
	m := metrics.NewMetrics("wetreck")
	bookingService := usecase.NewBookingService(bookingRepo, mail, cfg.AdminEmail, log, m)
	membershipService := usecase.NewMembershipService(membershipRepo, mail, cfg.AdminEmail, log, m)
	scanner := usecase.NewExpirationScanner(membershipRepo, mail, cfg.AdminEmail, log, m)

	// Start the daily expiration scan in a goroutine
	go scanner.Start(ctx)

	// Set up the API server
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	httpapi.SetupRoutes(app, bookingService, membershipService, gateway, log)

	go func() {
		log.Info("Starting API server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("API server error", "error", err)
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	metricsServer := &http.Server{
		Addr:         ":" + cfg.MetricsPort,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Starting metrics server", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Metrics server error", "error", err)
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("API server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the scanner

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Wetreck Backend stopped")
}
