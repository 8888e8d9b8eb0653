package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a config that passes schema verification
func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Telegram.Token = "123456:test-token"
	cfg.Telegram.AdminIDs = []int64{1001}
	cfg.Telegram.ChatID = 42
	cfg.Store = StoreConfig{
		URL:      "https://shop.example.com",
		Key:      "ck_test",
		Secret:   "cs_test",
		Timeout:  10 * time.Second,
		PageSize: 50,
	}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.SettingsFile = "settings.json"
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing telegram token",
			mutate:  func(cfg *Config) { cfg.Telegram.Token = "" },
			wantErr: "telegram.token is required",
		},
		{
			name:    "missing admin ids",
			mutate:  func(cfg *Config) { cfg.Telegram.AdminIDs = nil },
			wantErr: "telegram.admin_ids is required",
		},
		{
			name:    "missing store url",
			mutate:  func(cfg *Config) { cfg.Store.URL = "" },
			wantErr: "store.url is required",
		},
		{
			name:    "missing store key",
			mutate:  func(cfg *Config) { cfg.Store.Key = "" },
			wantErr: "store.key is required",
		},
		{
			name:    "missing server listen",
			mutate:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: "server.listen is required",
		},
		{
			name:    "missing server timeout",
			mutate:  func(cfg *Config) { cfg.Server.Timeout = 0 },
			wantErr: "server.timeout is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// top-level definitions are present
	def, ok := schema.Definitions["Config"]
	require.True(t, ok, "Config definition missing")
	assert.NotNil(t, def.Properties)
}
