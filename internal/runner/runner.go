package runner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/sadopc/sitetraffic/internal/core/cache"
	"github.com/sadopc/sitetraffic/internal/core/tab"
	"github.com/sadopc/sitetraffic/internal/popup"
	"github.com/sadopc/sitetraffic/internal/traffic"
)

// Runner performs popup opens headlessly (no TUI), one per URL.
type Runner struct {
	gateway *cache.Gateway
	fetcher popup.Fetcher
	limiter *rate.Limiter
	now     func() time.Time
}

// Month is one labelled month of a result.
type Month struct {
	Month  string   `json:"month"`
	Label  string   `json:"label"`
	Visits *float64 `json:"visits,omitempty"`
}

// Result holds the outcome of a single open.
type Result struct {
	URL         string        `json:"url"`
	Domain      string        `json:"domain"`
	State       string        `json:"state"`
	Source      string        `json:"source"`
	Months      []Month       `json:"months"`
	Duration    time.Duration `json:"duration,omitempty"`
	Size        int64         `json:"size,omitempty"`
	Error       error         `json:"-"`
	ErrorString string        `json:"error,omitempty"`
}

// New creates a runner. perSecond paces network fetches across URLs; zero
// or less means unlimited. Cache hits are never delayed.
func New(gw *cache.Gateway, f popup.Fetcher, perSecond float64) *Runner {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Runner{
		gateway: gw,
		fetcher: f,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for cache freshness.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Run opens every URL in order and returns one result per URL.
func (r *Runner) Run(ctx context.Context, urls []string) ([]Result, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs to look up")
	}

	fetcher := limitedFetcher{next: r.fetcher, limiter: r.limiter}
	results := make([]Result, 0, len(urls))
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		session := popup.NewSession(tab.Static(u), r.gateway, fetcher)
		session.SetClock(r.now)
		results = append(results, newResult(u, session.Open(ctx)))
	}
	return results, nil
}

func newResult(rawURL string, out popup.Outcome) Result {
	m := out.Model
	res := Result{
		URL:    rawURL,
		Domain: m.Domain,
		State:  m.State.String(),
		Source: m.Source.String(),
		Months: []Month{},
	}
	if m.Err != nil {
		res.Error = m.Err
		res.ErrorString = m.Err.Error()
	}

	var visits map[string]float64
	if out.Result != nil {
		res.Duration = out.Result.Duration
		res.Size = out.Result.Size
		visits = make(map[string]float64, len(out.Result.Visits))
		for _, v := range out.Result.Visits {
			visits[v.Month] = v.Visits
		}
	}

	if m.State == popup.Ready {
		for _, e := range m.Snapshot.Entries() {
			month := Month{Month: e.Month, Label: e.Label}
			if v, ok := visits[e.Month]; ok {
				month.Visits = &v
			}
			res.Months = append(res.Months, month)
		}
	}
	return res
}

// limitedFetcher waits for the limiter before every network fetch.
type limitedFetcher struct {
	next    popup.Fetcher
	limiter *rate.Limiter
}

func (f limitedFetcher) Fetch(ctx context.Context, domain string) (traffic.Result, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return traffic.Result{}, &traffic.FetchError{Domain: domain, Err: err}
	}
	return f.next.Fetch(ctx, domain)
}

// ExitCode is 1 if any lookup failed and 0 otherwise.
func ExitCode(results []Result) int {
	for _, r := range results {
		if r.Error != nil {
			return 1
		}
	}
	return 0
}
