// Package config provides configuration management for the greeting service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ulule/limiter/v3"
)

// ConfigPathEnv names the optional YAML config file. Environment variables
// override values read from the file.
const ConfigPathEnv = "CONFIG_PATH"

// Supported environments
const (
	EnvLocal   = "local"
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config holds all configuration for the application
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Version   string          `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
	Server    ServerConfig    `yaml:"server"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// ProxyConfig lists the reverse proxies (IPs or CIDRs) whose X-Forwarded-For
// header is trusted. Empty means the peer address is the client IP.
type ProxyConfig struct {
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES" env-separator:","`
}

// RateLimitConfig holds the per-IP request limit in limiter's
// "<limit>-<period>" format, e.g. "100-M" or "10-S".
type RateLimitConfig struct {
	Rate string `yaml:"rate" env:"RATE_LIMIT" env-default:"100-M"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
}

// Load loads configuration from the file named by CONFIG_PATH, if set, and
// from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvStaging, EnvProd:
	default:
		return fmt.Errorf("ENV must be one of local, dev, staging, prod, got %q", c.Env)
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 ||
		c.Server.IdleTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	if _, err := limiter.NewRateFromFormatted(c.RateLimit.Rate); err != nil {
		return fmt.Errorf("RATE_LIMIT is invalid: %w", err)
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must not be empty")
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOW_ORIGINS entry %q must be '*' or start with http:// or https://", origin)
		}
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}
