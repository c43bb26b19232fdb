package traffic

import (
	"context"
	"net/http"
	"time"

	httpclient "github.com/sadopc/sitetraffic/internal/protocol/http"
)

// DefaultEndpoint is the SimilarWeb data endpoint.
const DefaultEndpoint = "https://data.similarweb.com/api/v1/data"

// Result is a successful fetch.
type Result struct {
	Snapshot Snapshot
	Visits   []Visit
	Duration time.Duration
	Size     int64
}

// Client fetches and formats traffic estimates for a domain.
type Client struct {
	http     *httpclient.Client
	endpoint string
}

// NewClient creates a client that queries endpoint through hc. An empty
// endpoint means DefaultEndpoint.
func NewClient(hc *httpclient.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{http: hc, endpoint: endpoint}
}

// Endpoint returns the URL queried by Fetch.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch issues a single request for domain. Any failure, including a partial
// or malformed payload, is returned as a *FetchError and yields no snapshot.
func (c *Client) Fetch(ctx context.Context, domain string) (Result, error) {
	resp, err := c.http.Get(ctx, c.endpoint, map[string]string{"domain": domain})
	if err != nil {
		return Result{}, &FetchError{Domain: domain, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Result{}, &FetchError{Domain: domain, Status: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	visits, err := ParsePayload(resp.Body)
	if err != nil {
		return Result{}, &FetchError{Domain: domain, Status: resp.StatusCode, Err: err}
	}
	snap, err := BuildSnapshot(visits)
	if err != nil {
		return Result{}, &FetchError{Domain: domain, Status: resp.StatusCode, Err: err}
	}

	return Result{
		Snapshot: snap,
		Visits:   visits,
		Duration: resp.Duration,
		Size:     resp.Size,
	}, nil
}
