// shared/service/locatorclient.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/morvane/service-locator/shared/api"
)

// LocatorServiceClient is a client for the locator service, for other services
// that need to resolve a service name to its network location.
type LocatorServiceClient struct {
	apiClient *api.Client
}

// NewLocatorClient creates a new locator service client.
// It takes the base URL of the locator service as an argument.
func NewLocatorClient(baseURL string) *LocatorServiceClient {
	return &LocatorServiceClient{
		apiClient: api.NewClient(baseURL, api.NewDefaultHTTPClient()),
	}
}

// ServiceLocation mirrors the locator's response body for a resolved service.
type ServiceLocation struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// GetService resolves a service name via GET /service/{name}.
// Returns api.ErrNotFound (check with errors.Is) when the name is not registered.
func (c *LocatorServiceClient) GetService(ctx context.Context, name string) (*ServiceLocation, error) {
	loc := &ServiceLocation{}
	err := c.apiClient.Get(ctx, fmt.Sprintf("/service/%s", name), loc)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, fmt.Errorf("%w: service %s", api.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to resolve service %s from locator service: %w", name, err)
	}
	return loc, nil
}
