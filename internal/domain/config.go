package domain

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultAPIURL         = "http://localhost:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultCurrency       = "MAD"
)

// Config holds storefront client settings loaded from .storefront.yaml,
// the environment and command-line flags, in increasing precedence.
type Config struct {
	APIURL         string   `yaml:"api_url"         json:"api_url"`
	StorageDir     string   `yaml:"storage_dir,omitempty" json:"storage_dir,omitempty"`
	RequestTimeout Duration `yaml:"request_timeout" json:"request_timeout"`
	Currency       string   `yaml:"currency"        json:"currency"`
}

// DefaultConfig returns settings for a local backend. StorageDir is left
// empty; the config loader fills in the per-user default.
func DefaultConfig() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		RequestTimeout: Duration(DefaultRequestTimeout),
		Currency:       DefaultCurrency,
	}
}

// Validate checks that the config can be used to reach a backend.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url %q: missing host", c.APIURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", time.Duration(c.RequestTimeout))
	}
	return nil
}

// Timeout returns the request timeout, falling back to the default when unset.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeout)
}

// Duration is a time.Duration that reads and writes as "30s" in YAML and JSON.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
