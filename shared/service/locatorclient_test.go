package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	locatorapi "github.com/morvane/service-locator/locator/api"
	locatorservice "github.com/morvane/service-locator/locator/service"
	"github.com/morvane/service-locator/locator/store"
	"github.com/morvane/service-locator/shared/api"
)

func newLocatorTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	table := store.NewServiceTable([]store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})
	handlers := locatorapi.NewLocatorAPIHandlers(locatorservice.NewLocatorService(table), zap.NewNop())

	baseServer := api.NewBaseServer("127.0.0.1:0", zap.NewNop())
	handlers.RegisterRoutes(baseServer.Router)

	ts := httptest.NewServer(baseServer.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestLocatorClient_GetService(t *testing.T) {
	ts := newLocatorTestServer(t)
	client := NewLocatorClient(ts.URL)

	loc, err := client.GetService(context.Background(), "auth_devs")
	require.NoError(t, err)
	assert.Equal(t, &ServiceLocation{Host: "10.0.0.5", Port: 8080}, loc)
}

func TestLocatorClient_GetServiceNotFound(t *testing.T) {
	ts := newLocatorTestServer(t)
	client := NewLocatorClient(ts.URL)

	_, err := client.GetService(context.Background(), "nonexistent_service")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNotFound)
}
