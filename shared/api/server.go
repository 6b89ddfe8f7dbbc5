// shared/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type BaseServer struct {
	Router *mux.Router
	Server *http.Server
	Logger *zap.Logger
}

func NewBaseServer(addr string, logger *zap.Logger) *BaseServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter()

	// Apply common middleware
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware(logger))
	router.Use(CORSMiddleware)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &BaseServer{
		Router: router,
		Server: server,
		Logger: logger,
	}
}

func (bs *BaseServer) Start() error {
	bs.Logger.Info("Starting HTTP server", zap.String("addr", bs.Server.Addr))
	// ListenAndServe returns http.ErrServerClosed on graceful shutdown
	if err := bs.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

func (bs *BaseServer) Shutdown(ctx context.Context) error {
	bs.Logger.Info("Shutting down HTTP server...")
	return bs.Server.Shutdown(ctx)
}
