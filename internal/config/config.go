package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultEnv  = "development"
	defaultPort = 8080

	defaultDSN      = "root:password@tcp(127.0.0.1:3306)/aisummarizer?charset=utf8mb4&parseTime=True&loc=Local"
	defaultRedisURL = "redis://localhost:6379/0"

	defaultMaxFileSizeMB     = 20
	defaultRequestTimeoutSec = 120
	defaultRateLimitPerMin   = 30
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Env            string       `yaml:"env"` // "development" | "production"
	Port           int          `yaml:"port"`
	DSN            string       `yaml:"dsn"` // MySQL DSN
	RedisURL       string       `yaml:"redis_url"`
	AllowedOrigins []string     `yaml:"allowed_origins"`
	JWTSecret      string       `yaml:"jwt_secret"`
	Upload         UploadConfig `yaml:"upload"`
	AI             AIConfig     `yaml:"ai"`
}

// UploadConfig bounds incoming document uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `yaml:"max_file_size_mb"`
}

// AIConfig selects and tunes the inference provider.
type AIConfig struct {
	Provider           string `yaml:"provider"` // "openai" | "anthropic"
	APIKey             string `yaml:"api_key"`
	Endpoint           string `yaml:"endpoint"`
	Model              string `yaml:"model"`
	RequestTimeoutSec  int    `yaml:"request_timeout_sec"`
	RateLimitPerMinute int64  `yaml:"rate_limit_per_minute"`
}

// Load reads the YAML config at path. Unknown keys are rejected so typos
// fail at startup instead of silently taking defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &AppConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.DSN == "" {
		c.DSN = defaultDSN
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.Upload.MaxFileSizeMB == 0 {
		c.Upload.MaxFileSizeMB = defaultMaxFileSizeMB
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "openai"
	}
	if c.AI.RequestTimeoutSec == 0 {
		c.AI.RequestTimeoutSec = defaultRequestTimeoutSec
	}
	if c.AI.RateLimitPerMinute == 0 {
		c.AI.RateLimitPerMinute = defaultRateLimitPerMin
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// MaxFileSizeBytes returns the upload limit in bytes.
func (c *AppConfig) MaxFileSizeBytes() int64 {
	return c.Upload.MaxFileSizeMB * 1024 * 1024
}
