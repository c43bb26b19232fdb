package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file.
const (
	EnvAPIURL       = "SITETRAFFIC_API_URL"
	EnvCacheBackend = "SITETRAFFIC_CACHE_BACKEND"
	EnvCachePath    = "SITETRAFFIC_CACHE_PATH"
	EnvLogLevel     = "SITETRAFFIC_LOG_LEVEL"
	EnvProxy        = "SITETRAFFIC_PROXY"
)

// Path returns ~/.config/sitetraffic/config.yaml, or "" without a home dir.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sitetraffic", "config.yaml")
}

// Load loads configuration from ~/.config/sitetraffic/config.yaml.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom reads path over the defaults and applies environment overrides.
// A missing or invalid file leaves the defaults in place.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			next := cfg
			if err := yaml.Unmarshal(data, &next); err != nil {
				slog.Warn("ignoring invalid config", "path", path, "err", err)
			} else {
				cfg = next
			}
		}
	}

	applyEnv(&cfg, os.Getenv)
	return cfg
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := getenv(EnvCacheBackend); v != "" {
		cfg.Cache.Backend = v
	}
	if v := getenv(EnvCachePath); v != "" {
		cfg.Cache.Path = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvProxy); v != "" {
		cfg.Proxy = v
	}
}
