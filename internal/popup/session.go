package popup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/sitetraffic/internal/core/cache"
	"github.com/sadopc/sitetraffic/internal/core/domain"
	"github.com/sadopc/sitetraffic/internal/core/tab"
	"github.com/sadopc/sitetraffic/internal/traffic"
)

// Fetcher retrieves a formatted snapshot for a domain.
type Fetcher interface {
	Fetch(ctx context.Context, domain string) (traffic.Result, error)
}

// Session runs the steps of one popup open. The TUI calls the steps one by
// one as commands; Open runs them back to back.
type Session struct {
	ID string

	tabs    tab.Provider
	gateway *cache.Gateway
	fetcher Fetcher
	now     func() time.Time
	logger  *slog.Logger
}

// NewSession wires a session. Each session gets its own id for log
// correlation.
func NewSession(tabs tab.Provider, gw *cache.Gateway, f Fetcher) *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		tabs:    tabs,
		gateway: gw,
		fetcher: f,
		now:     time.Now,
		logger:  slog.Default().With("session", id),
	}
}

// SetClock replaces the time source used for cache freshness.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// ResolveDomain asks the provider for the active tab and extracts its
// domain. Provider failures resolve to the empty domain.
func (s *Session) ResolveDomain(ctx context.Context) string {
	rawURL, err := s.tabs.ActiveTabURL(ctx)
	if err != nil {
		s.logger.Warn("active tab unavailable", "err", err)
		return ""
	}
	d := domain.Resolve(rawURL)
	if d == "" {
		s.logger.Info("no domain in tab URL", "url", rawURL)
	}
	return d
}

// CheckCache returns the cached snapshot for d if one exists and is fresh.
func (s *Session) CheckCache(d string) (traffic.Snapshot, bool) {
	snap, ok := s.gateway.Read(d)
	if !ok {
		s.logger.Debug("cache miss", "domain", d)
		return traffic.Snapshot{}, false
	}
	if !cache.Fresh(snap, s.now()) {
		s.logger.Debug("cache stale", "domain", d)
		return traffic.Snapshot{}, false
	}
	s.logger.Debug("cache hit", "domain", d)
	return snap, true
}

// Fetch fetches d and caches the snapshot on success. A failed cache write
// is logged; the fetched snapshot is still returned.
func (s *Session) Fetch(ctx context.Context, d string) (traffic.Result, error) {
	res, err := s.fetcher.Fetch(ctx, d)
	if err != nil {
		s.logger.Error("fetching traffic failed", "domain", d, "err", err)
		return traffic.Result{}, err
	}
	if err := s.gateway.Write(d, res.Snapshot); err != nil {
		s.logger.Warn("caching snapshot failed", "domain", d, "err", err)
	}
	s.logger.Info("fetched traffic", "domain", d, "months", res.Snapshot.Len(), "duration", res.Duration)
	return res, nil
}

// Outcome is the end state of Open plus the network result, if a fetch ran.
type Outcome struct {
	Model  Model
	Result *traffic.Result
}

// Open runs a whole popup open synchronously.
func (s *Session) Open(ctx context.Context) Outcome {
	m := New().Resolved(s.ResolveDomain(ctx))

	if snap, ok := s.CheckCache(m.Domain); ok {
		return Outcome{Model: m.CacheHit(snap)}
	}

	res, err := s.Fetch(ctx, m.Domain)
	if err != nil {
		return Outcome{Model: m.FetchFailed(err)}
	}
	return Outcome{Model: m.Fetched(res.Snapshot), Result: &res}
}
