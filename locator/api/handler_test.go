package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/morvane/service-locator/locator/service"
	"github.com/morvane/service-locator/locator/store"
	sharedapi "github.com/morvane/service-locator/shared/api"
)

func newTestServer(t *testing.T, records []store.ServiceRecord) *httptest.Server {
	t.Helper()

	locatorService := service.NewLocatorService(store.NewServiceTable(records))
	handlers := NewLocatorAPIHandlers(locatorService, zap.NewNop())

	baseServer := sharedapi.NewBaseServer("127.0.0.1:0", zap.NewNop())
	handlers.RegisterRoutes(baseServer.Router)

	ts := httptest.NewServer(baseServer.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestGetServiceHandler_KnownService(t *testing.T) {
	ts := newTestServer(t, []store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})

	resp, err := http.Get(ts.URL + "/service/auth_devs")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]interface{}{
		"host": "10.0.0.5",
		"port": float64(8080),
	}, body)
}

func TestGetServiceHandler_UnknownService(t *testing.T) {
	ts := newTestServer(t, []store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})

	resp, err := http.Get(ts.URL + "/service/nonexistent_service")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Service not found", body["error"])
}

func TestGetServiceHandler_LookupIsCaseSensitive(t *testing.T) {
	ts := newTestServer(t, []store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})

	resp, err := http.Get(ts.URL + "/service/Auth_Devs")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetServiceHandler_EmptyTableServes404ForEverything(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, name := range []string{"auth_devs", "billing", "anything"} {
		resp, err := http.Get(ts.URL + "/service/" + name)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "lookup %q", name)
	}
}

func TestUndefinedRoutesUseRouterDefaults(t *testing.T) {
	ts := newTestServer(t, []store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})

	resp, err := http.Get(ts.URL + "/services")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/service/auth_devs", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestResponsesCarryRequestID(t *testing.T) {
	ts := newTestServer(t, []store.ServiceRecord{
		{Name: "auth_devs", Host: "10.0.0.5", Port: 8080},
	})

	resp, err := http.Get(ts.URL + "/service/auth_devs")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(sharedapi.RequestIDHeader))
}
