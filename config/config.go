/*
Package config loads runtime configuration for the subsidy server.

PURPOSE:
  Collects server, CORS and logging settings from an optional YAML file and
  environment variables. The subsidy rule set itself is not configurable.

PRECEDENCE (lowest to highest):
  1. DefaultConfig()
  2. YAML file passed to Load (a missing file is not an error)
  3. Environment variables

ENVIRONMENT:
  SUBSIDY_ADDR          Listen address (e.g. ":8080")
  SUBSIDY_LOG_LEVEL     debug | info | warn | error
  SUBSIDY_CORS_ORIGINS  Comma-separated list of allowed origins

EXAMPLE FILE:
  server:
    addr: ":8080"
    read_timeout: 15s
    shutdown_timeout: 30s
  cors:
    allowed_origins: ["http://localhost:5173"]
  logging:
    level: info
    development: false
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener. Timeouts are duration strings.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// CORSConfig configures cross-origin access for browser front ends.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "30s",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults and then
// applies environment overrides. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", cfg.Logging.Level, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("SUBSIDY_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("SUBSIDY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if origins := os.Getenv("SUBSIDY_CORS_ORIGINS"); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		// An empty list would make the CORS middleware allow every origin.
		if len(list) > 0 {
			c.CORS.AllowedOrigins = list
		}
	}
}

// =============================================================================
// DURATION GETTERS
// =============================================================================

func (c *ServerConfig) GetReadTimeout() time.Duration  { return parseDuration(c.ReadTimeout, 15*time.Second) }
func (c *ServerConfig) GetWriteTimeout() time.Duration { return parseDuration(c.WriteTimeout, 15*time.Second) }
func (c *ServerConfig) GetIdleTimeout() time.Duration  { return parseDuration(c.IdleTimeout, 60*time.Second) }
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(c.ShutdownTimeout, 30*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// =============================================================================
// LOGGER
// =============================================================================

// NewLogger builds a zap logger from the logging section.
func (c *LoggingConfig) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", c.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
