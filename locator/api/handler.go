// locator/api/handler.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/morvane/service-locator/locator/service"
	"github.com/morvane/service-locator/shared/api"
)

// LocatorAPIHandlers holds references to the services that handle business logic.
type LocatorAPIHandlers struct {
	LocatorService *service.LocatorService
	Logger         *zap.Logger
}

// NewLocatorAPIHandlers is the constructor for the locator API handlers.
func NewLocatorAPIHandlers(ls *service.LocatorService, logger *zap.Logger) *LocatorAPIHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocatorAPIHandlers{
		LocatorService: ls,
		Logger:         logger,
	}
}

// --- Response DTOs ---

// ServiceLocationResponse is the wire form of a resolved service: exactly the
// host and port, nothing else.
type ServiceLocationResponse struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// --- Handler Methods ---

// GetServiceHandler resolves a service name to its host and port.
// GET /service/{name}
func (lah *LocatorAPIHandlers) GetServiceHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	rec, err := lah.LocatorService.Lookup(r.Context(), name)
	if err != nil {
		switch err { // Map service-layer errors to HTTP status codes
		case service.ErrServiceNotFound:
			// A miss is a normal outcome of client queries, not a failure;
			// it is never logged above the request log line.
			api.WriteNotFound(w, "Service not found")
		default:
			lah.Logger.Error("Error resolving service", zap.String("service", name), zap.Error(err))
			api.WriteInternalServerError(w, "Failed to resolve service")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, ServiceLocationResponse{Host: rec.Host, Port: rec.Port})
}

// RegisterRoutes attaches the locator endpoints to the router. No other
// routes are defined; anything else falls through to the router's defaults.
func (lah *LocatorAPIHandlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/service/{name}", lah.GetServiceHandler).Methods(http.MethodGet)
}
