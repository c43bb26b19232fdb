package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Theme      string        `yaml:"theme"`
	APIURL     string        `yaml:"api_url"`
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	Proxy      string        `yaml:"proxy"`
	NoProxy    string        `yaml:"no_proxy"`
	Cache      CacheConfig   `yaml:"cache"`
	Log        LogConfig     `yaml:"log"`
	LookupRate float64       `yaml:"lookup_rate"`
}

// CacheConfig selects the snapshot cache backend.
type CacheConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration. A zero timeout means the
// request never times out.
func DefaultConfig() Config {
	return Config{
		Theme:      "catppuccin-mocha",
		APIURL:     "https://data.similarweb.com/api/v1/data",
		Timeout:    0,
		Cache:      CacheConfig{Backend: "cookie"},
		Log:        LogConfig{Level: "info"},
		LookupRate: 2,
	}
}

// DataDir is where the cache and log live: $XDG_DATA_HOME/sitetraffic or
// ~/.local/share/sitetraffic.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "sitetraffic")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sitetraffic")
	}
	return filepath.Join(home, ".local", "share", "sitetraffic")
}

// CachePath returns the configured cache path or the backend's default
// location under DataDir. The memory backend has no path.
func (c Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	switch c.Cache.Backend {
	case "sqlite":
		return filepath.Join(DataDir(), "cache.db")
	case "pebble":
		return filepath.Join(DataDir(), "cache.pebble")
	case "memory":
		return ""
	default:
		return filepath.Join(DataDir(), "cookies.json")
	}
}

// LogPath returns the configured log file or DataDir/sitetraffic.log.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(DataDir(), "sitetraffic.log")
}
