package tidewarehouse_test

import (
	"context"
	"testing"

	"github.com/skyflying/vertical-datum/internal/config"
	"github.com/skyflying/vertical-datum/internal/tidewarehouse"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewClient_DisabledConfig(t *testing.T) {
	logger := zap.NewNop()

	client, err := tidewarehouse.NewClient(nil, logger)
	assert.NoError(t, err)
	assert.Nil(t, client)

	cfg := &config.WarehouseConfig{
		Enabled: false,
	}
	client, err = tidewarehouse.NewClient(cfg, logger)
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewClient_MissingCredentials(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name string
		cfg  *config.WarehouseConfig
	}{
		{
			name: "missing URL",
			cfg: &config.WarehouseConfig{
				Enabled:  true,
				URL:      "",
				User:     "tides",
				Password: "secret",
			},
		},
		{
			name: "missing user",
			cfg: &config.WarehouseConfig{
				Enabled:  true,
				URL:      "tides.example.com:1433/TideDB",
				User:     "",
				Password: "secret",
			},
		},
		{
			name: "missing password",
			cfg: &config.WarehouseConfig{
				Enabled:  true,
				URL:      "tides.example.com:1433/TideDB",
				User:     "tides",
				Password: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := tidewarehouse.NewClient(tt.cfg, logger)

			// Missing credentials degrade to a disabled client, not an error
			assert.NoError(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_IsEnabled_NilSafe(t *testing.T) {
	var client *tidewarehouse.Client
	assert.False(t, client.IsEnabled())
}

func TestClient_Close_NilSafe(t *testing.T) {
	var client *tidewarehouse.Client
	assert.NoError(t, client.Close())
}

func TestClient_HealthCheck_NilClient(t *testing.T) {
	var client *tidewarehouse.Client

	status := client.HealthCheck(context.Background())

	assert.NotNil(t, status)
	assert.Equal(t, "disabled", status.Status)
}
