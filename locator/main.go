// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	locatorapi "github.com/morvane/service-locator/locator/api"
	"github.com/morvane/service-locator/locator/service"
	"github.com/morvane/service-locator/locator/store"
	"github.com/morvane/service-locator/shared/api"
	"github.com/morvane/service-locator/shared/config"
)

func main() {
	// --- 1. Load Configuration ---
	// A local .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.LoadLocatorServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// --- 2. Load the Service Table ---
	// Built fully before the server accepts a single connection, then never
	// mutated again; every lookup reads the same snapshot.
	table, err := store.LoadServiceTable(cfg.ServicesCSVPath, logger)
	if err != nil {
		logger.Fatal("Failed to load service table", zap.String("path", cfg.ServicesCSVPath), zap.Error(err))
	}

	// --- 3. Initialize Business Logic Services ---
	locatorService := service.NewLocatorService(table)

	// --- 4. Initialize API Handlers ---
	locatorAPIHandlers := locatorapi.NewLocatorAPIHandlers(locatorService, logger)

	// --- 5. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, logger)
	locatorAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 6. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed to start", zap.Error(err))
		}
	}()

	// --- 7. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop // Wait for interrupt signal

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Server gracefully stopped.")
}
