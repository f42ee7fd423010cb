package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/openkraft/storefront/internal/domain"
)

const (
	// DefaultFileName is the config file read from the working directory.
	DefaultFileName = ".storefront.yaml"
	envFile         = ".env"
	envPrefix       = "STOREFRONT_"
)

// YAMLLoader implements domain.ConfigLoader. Settings come from, in
// increasing precedence: defaults, the YAML file, a .env file next to it,
// and STOREFRONT_* environment variables.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config file at path, or .storefront.yaml in the working
// directory when path is empty. A missing file yields the defaults.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg := domain.DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults
	default:
		return domain.Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	env, err := readDotEnv(filepath.Join(filepath.Dir(path), envFile))
	if err != nil {
		return domain.Config{}, err
	}
	if err := applyEnv(&cfg, env); err != nil {
		return domain.Config{}, err
	}

	if cfg.StorageDir == "" {
		cfg.StorageDir = DefaultStorageDir()
	}
	if cfg.Currency == "" {
		cfg.Currency = domain.DefaultCurrency
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultStorageDir is the per-user directory for session and order files.
func DefaultStorageDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "storefront")
	}
	return ".storefront"
}

func readDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return env, nil
}

// applyEnv overlays STOREFRONT_* values. Process environment wins over .env.
func applyEnv(cfg *domain.Config, dotenv map[string]string) error {
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[envPrefix+key])
	}

	if v := lookup("API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := lookup("STORAGE_DIR"); v != "" {
		cfg.StorageDir = v
	}
	if v := lookup("CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := lookup("REQUEST_TIMEOUT"); v != "" {
		if err := cfg.RequestTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
	}
	return nil
}
