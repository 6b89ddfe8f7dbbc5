// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// LocatorServiceConfig holds configuration for the locator-service.
type LocatorServiceConfig struct {
	ListenAddr      string        // Address for the HTTP server to listen on (e.g., "127.0.0.1:4000")
	ServicesCSVPath string        // Path to the CSV file holding the service table
	ShutdownTimeout time.Duration // How long to wait for in-flight requests on shutdown
	ServicePort     int           // The port this service listens on, extracted from ListenAddr
}

// LoadLocatorServiceConfig loads configuration for the locator-service from
// environment variables, applying defaults for anything unset.
func LoadLocatorServiceConfig() (*LocatorServiceConfig, error) {
	cfg := &LocatorServiceConfig{
		ListenAddr:      os.Getenv("LOCATOR_LISTEN_ADDR"),
		ServicesCSVPath: os.Getenv("SERVICES_CSV_PATH"),
	}

	// Apply defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:4000"
	}
	if cfg.ServicesCSVPath == "" {
		cfg.ServicesCSVPath = "services.csv"
	}

	var err error
	cfg.ShutdownTimeout, err = getDuration("LOCATOR_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// Extract ServicePort from ListenAddr
	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from LOCATOR_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// extractPort extracts the numeric port from a listen address (e.g., ":4000" -> 4000, "127.0.0.1:4000" -> 4000)
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		// If SplitHostPort fails, check if ListenAddr is just a port (e.g., ":4000")
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid ListenAddr format for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number '%s': %w", portStr, err)
	}
	return port, nil
}
