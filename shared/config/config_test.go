package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocatorServiceConfig_Defaults(t *testing.T) {
	t.Setenv("LOCATOR_LISTEN_ADDR", "")
	t.Setenv("SERVICES_CSV_PATH", "")
	t.Setenv("LOCATOR_SHUTDOWN_TIMEOUT", "")

	cfg, err := LoadLocatorServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:4000", cfg.ListenAddr)
	assert.Equal(t, "services.csv", cfg.ServicesCSVPath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 4000, cfg.ServicePort)
}

func TestLoadLocatorServiceConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LOCATOR_LISTEN_ADDR", ":9090")
	t.Setenv("SERVICES_CSV_PATH", "/etc/locator/services.csv")
	t.Setenv("LOCATOR_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := LoadLocatorServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/etc/locator/services.csv", cfg.ServicesCSVPath)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 9090, cfg.ServicePort)
}

func TestLoadLocatorServiceConfig_BadShutdownTimeout(t *testing.T) {
	t.Setenv("LOCATOR_SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadLocatorServiceConfig()
	require.Error(t, err)
}

func TestExtractPort(t *testing.T) {
	cases := []struct {
		addr    string
		want    int
		wantErr bool
	}{
		{"127.0.0.1:4000", 4000, false},
		{":8081", 8081, false},
		{"0.0.0.0:65535", 65535, false},
		{"no-port-here", 0, true},
	}

	for _, tc := range cases {
		port, err := extractPort(tc.addr)
		if tc.wantErr {
			assert.Error(t, err, "addr %q", tc.addr)
			continue
		}
		require.NoError(t, err, "addr %q", tc.addr)
		assert.Equal(t, tc.want, port, "addr %q", tc.addr)
	}
}
