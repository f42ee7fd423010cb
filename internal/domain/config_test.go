package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/openkraft/storefront/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, domain.DefaultRequestTimeout, cfg.Timeout())
	assert.Equal(t, "MAD", cfg.Currency)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
		errMsg string
	}{
		{"empty url", func(c *domain.Config) { c.APIURL = "" }, "api_url is required"},
		{"bad scheme", func(c *domain.Config) { c.APIURL = "ftp://shop.test" }, "scheme"},
		{"no host", func(c *domain.Config) { c.APIURL = "http://" }, "missing host"},
		{"negative timeout", func(c *domain.Config) { c.RequestTimeout = domain.Duration(-time.Second) }, "request_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_TimeoutFallsBack(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.RequestTimeout = 0
	assert.Equal(t, domain.DefaultRequestTimeout, cfg.Timeout())
}

func TestDuration_YAML(t *testing.T) {
	var cfg domain.Config
	require.NoError(t, yaml.Unmarshal([]byte("request_timeout: 5s\n"), &cfg))
	assert.Equal(t, 5*time.Second, cfg.Timeout())

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "request_timeout: 5s")
}
