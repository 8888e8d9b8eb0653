package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
telegram:
  token: "123456:test-token"
  admin_ids: [1001, 1002]
  chat_id: -100200300

store:
  url: https://shop.example.com
  key: ck_test
  secret: cs_test
  timeout: 15s
  page_size: 25

monitor:
  interval: 30m
  startup_delay: 5s
  attempts: 5

server:
  listen: ":9090"
  timeout: 45s

settings_file: /var/lib/wooadmin/settings.json
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "123456:test-token", cfg.Telegram.Token)
		assert.Equal(t, []int64{1001, 1002}, cfg.Telegram.AdminIDs)
		assert.Equal(t, int64(-100200300), cfg.Telegram.ChatID)

		assert.Equal(t, "https://shop.example.com", cfg.Store.URL)
		assert.Equal(t, "ck_test", cfg.Store.Key)
		assert.Equal(t, "cs_test", cfg.Store.Secret)
		assert.Equal(t, 15*time.Second, cfg.Store.Timeout)
		assert.Equal(t, 25, cfg.Store.PageSize)

		assert.Equal(t, 30*time.Minute, cfg.Monitor.Interval)
		assert.Equal(t, 5*time.Second, cfg.Monitor.StartupDelay)
		assert.Equal(t, 5, cfg.Monitor.Attempts)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "/var/lib/wooadmin/settings.json", cfg.SettingsFile)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
telegram:
  token: "123456:test-token"
  admin_ids: [1001]
  chat_id: 42

store:
  url: https://shop.example.com
  key: ck_test
  secret: cs_test
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check store defaults
		assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
		assert.Equal(t, 50, cfg.Store.PageSize)

		// check monitor defaults
		assert.Equal(t, time.Hour, cfg.Monitor.Interval)
		assert.Equal(t, 10*time.Second, cfg.Monitor.StartupDelay)
		assert.Equal(t, 3, cfg.Monitor.Attempts)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)

		assert.Equal(t, "settings.json", cfg.SettingsFile)
		assert.Equal(t, "file:audit.db?cache=shared&mode=rwc", cfg.Audit.DSN)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("WOO_TEST_TOKEN", "123456:env-token")
		t.Setenv("WOO_TEST_SECRET", "cs_env")

		configContent := `
telegram:
  token: "${WOO_TEST_TOKEN}"
  admin_ids: [1001]
  chat_id: 42

store:
  url: https://shop.example.com
  key: ck_test
  secret: "${WOO_TEST_SECRET}"
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "123456:env-token", cfg.Telegram.Token)
		assert.Equal(t, "cs_env", cfg.Store.Secret)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing required fields", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
			errMsg  string
		}{
			{
				name: "no token",
				content: `
telegram:
  admin_ids: [1001]
  chat_id: 42
store:
  url: https://shop.example.com
  key: ck_test
  secret: cs_test
`,
				errMsg: "telegram.token is required",
			},
			{
				name: "no admins",
				content: `
telegram:
  token: "123456:test-token"
  chat_id: 42
store:
  url: https://shop.example.com
  key: ck_test
  secret: cs_test
`,
				errMsg: "telegram.admin_ids is required",
			},
			{
				name: "no store url",
				content: `
telegram:
  token: "123456:test-token"
  admin_ids: [1001]
  chat_id: 42
store:
  key: ck_test
  secret: cs_test
`,
				errMsg: "store.url is required",
			},
			{
				name: "no store secret",
				content: `
telegram:
  token: "123456:test-token"
  admin_ids: [1001]
  chat_id: 42
store:
  url: https://shop.example.com
  key: ck_test
`,
				errMsg: "store.secret is required",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				tmpDir := t.TempDir()
				configPath := filepath.Join(tmpDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tc.content), 0o644)
				require.NoError(t, err)

				cfg, err := Load(configPath)
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.errMsg)
			})
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		configContent := `
telegram:
  token: "123456:test-token"
  admin_ids: [1001]
  chat_id: 42
store:
  url: https://shop.example.com
  key: ck_test
  secret: cs_test
  page_size: 500
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "store.page_size")
	})
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestConfig_GetStoreConfig(t *testing.T) {
	cfg := &Config{Store: StoreConfig{URL: "https://shop.example.com", Key: "ck", Secret: "cs", PageSize: 10}}

	sc := cfg.GetStoreConfig()
	assert.Equal(t, "https://shop.example.com", sc.URL)
	assert.Equal(t, 10, sc.PageSize)
}
