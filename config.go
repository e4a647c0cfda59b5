package site

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// SiteConfig holds all configuration, populated from environment variables.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`
	URL         string `env:"SITE_URL"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR"`

	Addr              string `env:"ADDR"`
	LeadsDatabasePath string `env:"LEADS_DATABASE_PATH"`

	// External form backend that receives contact submissions as JSON.
	FormEndpoint string `env:"FORM_ENDPOINT"`

	AnalyticsEnabled       bool   `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsDatabasePath  string `env:"ANALYTICS_DATABASE_PATH"`
	AnalyticsRetentionDays int    `env:"ANALYTICS_RETENTION_DAYS"`

	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"ADMIN_SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	ContactTimeout time.Duration `env:"CONTACT_TIMEOUT"`
}

// ConfigFromEnv parses SiteConfig from the process environment.
func ConfigFromEnv() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, err
	}
	cfg.URL = strings.TrimSuffix(cfg.URL, "/")
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Álvaro Strategy"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = "Álvaro"
	}
	if c.Description == "" {
		c.Description = "Consultoría de estrategia digital: SEO, publicidad, analítica e IA aplicada al marketing."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LeadsDatabasePath == "" {
		c.LeadsDatabasePath = "data/leads.db"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetentionDays == 0 {
		c.AnalyticsRetentionDays = 365
	}
	if c.ContactTimeout == 0 {
		c.ContactTimeout = 10 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithFormBackend overrides the contact-form backend, mainly for tests.
func WithFormBackend(fb FormBackend) Option {
	return func(a *App) {
		a.formBackend = fb
	}
}
