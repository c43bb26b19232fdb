package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sadopc/sitetraffic/internal/traffic"
)

// keySuffix is appended to the domain to form the storage key.
const keySuffix = "_apiData"

// StalenessMonths is how many calendar months old the latest cached month may
// be before the snapshot is refetched.
const StalenessMonths = 2

// Key returns the storage key for domain.
func Key(domain string) string {
	return domain + keySuffix
}

// DomainFromKey reverses Key. It reports false for keys not written by the
// gateway.
func DomainFromKey(key string) (string, bool) {
	return strings.CutSuffix(key, keySuffix)
}

// Gateway reads and writes per-domain snapshots through a Store.
type Gateway struct {
	store  Store
	logger *slog.Logger
}

// NewGateway wraps store.
func NewGateway(store Store) *Gateway {
	return &Gateway{store: store, logger: slog.Default()}
}

// SetLogger sets the logger used for absorbed read errors.
func (g *Gateway) SetLogger(l *slog.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Read returns the cached snapshot for domain. A missing entry, a store error
// and an undecodable value all read as absent.
func (g *Gateway) Read(domain string) (traffic.Snapshot, bool) {
	key := Key(domain)
	raw, err := g.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.Warn("cache read failed", "key", key, "err", err)
		}
		return traffic.Snapshot{}, false
	}

	var snap traffic.Snapshot
	if err := snap.UnmarshalJSON([]byte(raw)); err != nil {
		g.logger.Warn("discarding corrupt cache entry", "key", key, "err", err)
		return traffic.Snapshot{}, false
	}
	return snap, true
}

// Write stores snap for domain, replacing any previous value.
func (g *Gateway) Write(domain string, snap traffic.Snapshot) error {
	data, err := snap.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := g.store.Set(Key(domain), string(data)); err != nil {
		return fmt.Errorf("caching snapshot for %q: %w", domain, err)
	}
	return nil
}

// Fresh reports whether snap may be shown without refetching: its latest
// month must not be older than StalenessMonths calendar months before now.
// Empty snapshots and unparseable months are stale.
func Fresh(snap traffic.Snapshot, now time.Time) bool {
	latest, ok := snap.Latest()
	if !ok {
		return false
	}
	month, err := traffic.ParseMonth(latest.Month)
	if err != nil {
		return false
	}
	return !month.Before(now.AddDate(0, -StalenessMonths, 0))
}
