package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	// BaseURL is the root of the console API, without a trailing slash.
	BaseURL string `koanf:"base_url" mapstructure:"base_url"`
	// PageSize is the fixed limit sent with every product list fetch.
	PageSize int `koanf:"page_size" mapstructure:"page_size"`
	// PollInterval is the fixed period of the upload status loop.
	PollInterval time.Duration `koanf:"poll_interval" mapstructure:"poll_interval"`
	// RequestTimeout bounds each HTTP request issued by the default client.
	RequestTimeout time.Duration `koanf:"request_timeout" mapstructure:"request_timeout"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:8000",
		PageSize:       10,
		PollInterval:   2 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

func (c Config) Validate() error {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		return fmt.Errorf("core: base_url is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("core: base_url must be an absolute url, got %q", c.BaseURL)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("core: page_size must be >= 1")
	}
	if c.PageSize > 100 {
		return fmt.Errorf("core: page_size must be <= 100")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("core: poll_interval must be positive")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("core: request_timeout must not be negative")
	}
	return nil
}
