package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultTimeoutSeconds = 60
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 10 << 20
	DefaultLogLevel       = "info"
)

// Config represents the application configuration
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig represents generative model API configuration
type GeminiConfig struct {
	APIKey         string `yaml:"api_key" env:"API_KEY"`
	Model          string `yaml:"model" env:"VALIDATION_GUIDE_MODEL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"VALIDATION_GUIDE_TIMEOUT_SECONDS"`
	BaseURL        string `yaml:"base_url" env:"VALIDATION_GUIDE_GEMINI_BASE_URL"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host           string `yaml:"host" env:"VALIDATION_GUIDE_HOST"`
	Port           int    `yaml:"port" env:"VALIDATION_GUIDE_PORT"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"VALIDATION_GUIDE_MAX_UPLOAD_BYTES"`
	ShutdownGrace  int    `yaml:"shutdown_grace_seconds"`
	SessionIdleMin int    `yaml:"session_idle_minutes"`
}

// LoggingConfig represents logger configuration
type LoggingConfig struct {
	Level      string `yaml:"level" env:"VALIDATION_GUIDE_LOG_LEVEL"`
	File       string `yaml:"file" env:"VALIDATION_GUIDE_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Timeout returns the model request timeout
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// HasCredential reports whether an API key is configured
func (g GeminiConfig) HasCredential() bool {
	return g.APIKey != ""
}

// SessionIdle returns how long an untouched visitor session is kept
func (s ServerConfig) SessionIdle() time.Duration {
	return time.Duration(s.SessionIdleMin) * time.Minute
}

// ShutdownTimeout returns the graceful shutdown window
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownGrace) * time.Second
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig loads configuration from a YAML file, a .env file next to it and
// the process environment, in increasing order of precedence. A missing YAML
// file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(configPath), ".env")); err != nil {
		return nil, err
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadDotEnv populates unset variables from path; existing variables win
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.Server.ShutdownGrace == 0 {
		c.Server.ShutdownGrace = 5
	}
	if c.Server.SessionIdleMin == 0 {
		c.Server.SessionIdleMin = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 50
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
}

// Validate validates the configuration. The API key is not
// required here: a missing key only fails analysis requests.
func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini model is required")
	}

	if c.Gemini.TimeoutSeconds < 0 {
		return fmt.Errorf("gemini timeout must not be negative")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", c.Server.Port)
	}

	if c.Server.MaxUploadBytes < 0 {
		return fmt.Errorf("server max upload bytes must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	return nil
}
