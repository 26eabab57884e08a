// Package config loads signmaster settings from defaults, an optional config
// file, a .env file and SIGNMASTER_* environment variables.
package config

import (
	"time"

	"github.com/abhisek/signmaster/internal/enrich"
	"github.com/abhisek/signmaster/internal/quiz"
)

// Config holds all application configuration.
type Config struct {
	// DBPath overrides the SQLite database location. Empty means the XDG
	// data directory.
	DBPath string `mapstructure:"db_path"`

	// DefaultDomain is the country catalog opened when none is chosen.
	DefaultDomain string `mapstructure:"default_domain" validate:"required,alpha,min=2,max=3"`

	// CatalogDir holds extra <domain>.yaml catalogs that add to or replace
	// the built-in ones.
	CatalogDir string `mapstructure:"catalog_dir"`

	Log    LogConfig    `mapstructure:"log"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
	Enrich EnrichConfig `mapstructure:"enrich"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// File receives logs while the terminal UI owns the screen. Empty means
	// the XDG state directory.
	File string `mapstructure:"file"`
}

// QuizConfig controls quiz generation.
type QuizConfig struct {
	Size int `mapstructure:"size" validate:"min=1,max=200"`
}

// EnrichConfig controls the encyclopedia lookup.
type EnrichConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Retry   RetryConfig   `mapstructure:"retry"`
}

// RetryConfig mirrors enrich.RetryConfig with validation tags.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	InitialWait time.Duration `mapstructure:"initial_wait" validate:"gte=0"`
	MaxWait     time.Duration `mapstructure:"max_wait" validate:"gtefield=InitialWait"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"gte=1"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	ec := enrich.DefaultConfig()
	return Config{
		DefaultDomain: "cz",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Quiz: QuizConfig{
			Size: quiz.DefaultSize,
		},
		Enrich: EnrichConfig{
			Enabled: true,
			BaseURL: ec.BaseURL,
			Timeout: ec.Timeout,
			Retry: RetryConfig{
				MaxAttempts: ec.Retry.MaxAttempts,
				InitialWait: ec.Retry.InitialWait,
				MaxWait:     ec.Retry.MaxWait,
				Multiplier:  ec.Retry.Multiplier,
			},
		},
	}
}

// ClientConfig converts the section into an enrich.Config.
func (c EnrichConfig) ClientConfig() enrich.Config {
	cfg := enrich.DefaultConfig()
	cfg.BaseURL = c.BaseURL
	cfg.Timeout = c.Timeout
	cfg.Retry = enrich.RetryConfig{
		MaxAttempts: c.Retry.MaxAttempts,
		InitialWait: c.Retry.InitialWait,
		MaxWait:     c.Retry.MaxWait,
		Multiplier:  c.Retry.Multiplier,
	}
	return cfg
}
