package enrich

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultBaseURL is the English Wikipedia action API.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Config holds encyclopedia client configuration.
type Config struct {
	// BaseURL is the MediaWiki action API endpoint.
	BaseURL string

	// UserAgent identifies the client to the API operators.
	UserAgent string

	// ThumbSize is the requested thumbnail width in pixels.
	ThumbSize int

	// SearchLimit caps full-text search hits. Only the first is fetched.
	SearchLimit int

	Retry RetryConfig

	// Timeout bounds a single HTTP request. Default: 10s.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		UserAgent:   "signmaster (https://github.com/abhisek/signmaster)",
		ThumbSize:   300,
		SearchLimit: 3,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 10 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid encyclopedia base URL: %q", c.BaseURL)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
