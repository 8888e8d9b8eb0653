package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Telegram struct {
		Token    string  `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot token (can use environment variable)"`
		AdminIDs []int64 `yaml:"admin_ids" json:"admin_ids" jsonschema:"required,description=Telegram user IDs allowed to use the bot"`
		ChatID   int64   `yaml:"chat_id" json:"chat_id" jsonschema:"required,description=Chat ID receiving monitor alerts"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram configuration"`

	Store StoreConfig `yaml:"store" json:"store" jsonschema:"description=WooCommerce store configuration"`

	Monitor struct {
		Interval     time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Low stock check interval"`
		StartupDelay time.Duration `yaml:"startup_delay" json:"startup_delay" jsonschema:"default=10s,description=Delay before the first check"`
		Attempts     int           `yaml:"attempts" json:"attempts" jsonschema:"default=3,minimum=1,description=Product fetch attempts before alerting"`
	} `yaml:"monitor" json:"monitor" jsonschema:"description=Low stock monitor configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP status server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	SettingsFile string `yaml:"settings_file" json:"settings_file" jsonschema:"default=settings.json,description=Path to the persisted bot settings file"`

	Audit struct {
		DSN string `yaml:"dsn" json:"dsn" jsonschema:"default=file:audit.db?cache=shared&mode=rwc,description=Audit log database connection string"`
	} `yaml:"audit" json:"audit" jsonschema:"description=Audit log configuration"`
}

// StoreConfig holds WooCommerce REST API access settings
type StoreConfig struct {
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Store base URL (e.g. https://example.com)"`
	Key      string        `yaml:"key" json:"key" jsonschema:"required,description=Consumer key"`
	Secret   string        `yaml:"secret" json:"secret" jsonschema:"required,description=Consumer secret (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=API request timeout"`
	PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=50,minimum=1,maximum=100,description=Items requested per API page"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for store
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = 10 * time.Second
	}
	if cfg.Store.PageSize == 0 {
		cfg.Store.PageSize = 50
	}

	// set defaults for monitor
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = time.Hour
	}
	if cfg.Monitor.StartupDelay == 0 {
		cfg.Monitor.StartupDelay = 10 * time.Second
	}
	if cfg.Monitor.Attempts == 0 {
		cfg.Monitor.Attempts = 3
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.SettingsFile == "" {
		cfg.SettingsFile = "settings.json"
	}
	if cfg.Audit.DSN == "" {
		cfg.Audit.DSN = "file:audit.db?cache=shared&mode=rwc"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate telegram config
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if len(cfg.Telegram.AdminIDs) == 0 {
		return fmt.Errorf("telegram.admin_ids is required")
	}
	if cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}

	// validate store config
	if cfg.Store.URL == "" {
		return fmt.Errorf("store.url is required")
	}
	if cfg.Store.Key == "" {
		return fmt.Errorf("store.key is required")
	}
	if cfg.Store.Secret == "" {
		return fmt.Errorf("store.secret is required")
	}
	if cfg.Store.PageSize < 1 || cfg.Store.PageSize > 100 {
		return fmt.Errorf("store.page_size must be between 1 and 100")
	}

	// validate monitor config
	if cfg.Monitor.Attempts < 1 {
		return fmt.Errorf("monitor.attempts must be at least 1")
	}
	if cfg.Monitor.Interval < time.Minute {
		return fmt.Errorf("monitor.interval must be at least 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetStoreConfig returns WooCommerce store configuration
func (c *Config) GetStoreConfig() StoreConfig {
	return c.Store
}
