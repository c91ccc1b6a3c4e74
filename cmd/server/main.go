package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site-security-backend/internal/api/routes"
	"site-security-backend/internal/config"
	"site-security-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "site-security-backend/docs" // This is needed for swag
)

//	@title			Site Security Operations API
//	@version		1.0
//	@description	Backend API for site security operations: shift/gate scheduling, conflict detection and live gate coverage.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router and services
	router, services := routes.SetupRoutes(db, cfg)

	// Seed the gate catalogue (builtin set + optional custom codes)
	if err := services.Gates.SeedCatalogue(cfg.GatesFile); err != nil {
		logrus.Fatal("Failed to seed gate catalogue:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Time-driven shift lifecycle: scheduled shifts activate and active
	// shifts complete as the clock passes their windows. Clients poll for
	// the results; there is no push channel.
	go runStatusSync(ctx, services, cfg.StatusSyncInterval())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server shutdown failed:", err)
	}
}

func runStatusSync(ctx context.Context, services *routes.Services, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := services.Scheduler.SyncStatuses(time.Now()); err != nil {
		logrus.WithError(err).Error("initial shift status sync failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := services.Scheduler.SyncStatuses(now); err != nil {
				logrus.WithError(err).Error("shift status sync failed")
			}
		}
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
