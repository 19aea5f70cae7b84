package wallverse

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
)

// SiteConfig holds all configuration for a wallverse server.
type SiteConfig struct {
	Name string `env:"SITE_NAME"` // Site name (default "Wallverse")
	URL  string `env:"SITE_URL"`  // Canonical URL used in sitemap and feed

	Addr           string `env:"ADDR"`            // Listen address (default ":3000")
	DatabaseDriver string `env:"DATABASE_DRIVER"` // sqlite, postgres or mysql (default sqlite)
	DatabaseURL    string `env:"DATABASE_URL"`    // DSN, or file path for sqlite (default "data/wallverse.db")

	AdminPassword    string `env:"ADMIN_PASSWORD"`     // Required: exchanged for the token at login
	AdminTokenSecret string `env:"ADMIN_TOKEN_SECRET"` // Required: bearer token accepted on admin routes

	MetricsEnabled bool   `env:"METRICS_ENABLED"` // Serve Prometheus metrics at /metrics
	LogLevel       string `env:"LOG_LEVEL"`       // debug, info, warn or error (default info)
}

// LoadConfig reads a SiteConfig from the environment and fills defaults.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Wallverse"
	}
	if c.URL == "" {
		c.URL = "https://freewallpaperverse.com"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabaseDriver == "" {
		c.DatabaseDriver = DriverSQLite
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = "data/wallverse.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) validate() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("wallverse: AdminPassword is required")
	}
	if c.AdminTokenSecret == "" {
		return fmt.Errorf("wallverse: AdminTokenSecret is required")
	}
	return nil
}

func (c SiteConfig) logLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStore makes the App use s instead of opening DatabaseURL.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are in place.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
