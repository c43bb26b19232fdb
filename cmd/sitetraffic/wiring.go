package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sadopc/sitetraffic/internal/config"
	"github.com/sadopc/sitetraffic/internal/core/cache"
	"github.com/sadopc/sitetraffic/internal/logger"
	httpclient "github.com/sadopc/sitetraffic/internal/protocol/http"
	"github.com/sadopc/sitetraffic/internal/traffic"
)

// stack is everything a popup open needs, built from config.
type stack struct {
	cfg     config.Config
	backend cache.Backend
	gateway *cache.Gateway
	client  *traffic.Client
	logs    io.Closer

	closeOnce sync.Once
}

// loadConfig reads the config at path, or the default location when empty.
// noPersist swaps the cache for an in-memory one.
func loadConfig(path string, noPersist bool) config.Config {
	var cfg config.Config
	if path != "" {
		cfg = config.LoadFrom(path)
	} else {
		cfg = config.Load()
	}
	if noPersist {
		cfg.Cache.Backend = cache.BackendMemory
		cfg.Cache.Path = ""
	}
	return cfg
}

// newStack sets up logging, the cache backend and the traffic client.
func newStack(cfg config.Config) (*stack, error) {
	logs, err := logger.Setup(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		logs.Close()
		return nil, err
	}

	gw := cache.NewGateway(backend)
	gw.SetLogger(slog.Default().With("component", "cache", "backend", cfg.Cache.Backend))

	slog.Debug("stack ready", "api", cfg.APIURL, "cache", cfg.Cache.Backend, "path", cfg.CachePath())
	return &stack{
		cfg:     cfg,
		backend: backend,
		gateway: gw,
		client:  traffic.NewClient(newHTTPClient(cfg), cfg.APIURL),
		logs:    logs,
	}, nil
}

// Close releases the cache backend and the log file. It must run before
// any os.Exit; calling it again is a no-op.
func (s *stack) Close() {
	s.closeOnce.Do(func() {
		if err := s.backend.Close(); err != nil {
			slog.Warn("closing cache", "err", err)
		}
		s.logs.Close()
	})
}

func openBackend(cfg config.Config) (cache.Backend, error) {
	path := cfg.CachePath()
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating cache dir: %w", err)
		}
	}
	backend, err := cache.Open(cfg.Cache.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s cache: %w", cfg.Cache.Backend, err)
	}
	return backend, nil
}

func newHTTPClient(cfg config.Config) *httpclient.Client {
	hc := httpclient.New()
	if cfg.Timeout > 0 {
		hc.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		hc.SetUserAgent(cfg.UserAgent)
	}
	if cfg.Proxy != "" {
		hc.SetProxy(cfg.Proxy, cfg.NoProxy)
	}
	return hc
}

func fatalf(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(code)
}
