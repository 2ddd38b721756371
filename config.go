package console

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/opsdesk/console/internal/session"
)

// Config is the environment-driven client configuration, read from
// OPSDESK_* variables.
type Config struct {
	// BaseURL is the backend boundary's root, e.g. https://desk.example.com/api.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080/api"`

	// HTTPTimeout bounds each backend round-trip.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// DemoMode switches authentication to the offline seed accounts.
	DemoMode bool `envconfig:"DEMO" default:"false"`

	// StatePath is the session persistence file. Empty keeps the session
	// in memory only.
	StatePath string `envconfig:"STATE_PATH"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("OPSDESK", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv builds a Client from environment configuration.
func NewFromEnv() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDemoMode(cfg.DemoMode),
	}
	if cfg.StatePath != "" {
		fs, err := session.NewFileStorage(cfg.StatePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithStorage(fs))
	}
	return New(cfg.BaseURL, opts...), nil
}
