package mock

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/sitetraffic/internal/core/cache"
	httpclient "github.com/sadopc/sitetraffic/internal/protocol/http"
	"github.com/sadopc/sitetraffic/internal/traffic"
)

var fixedNow = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestRouteMatching(t *testing.T) {
	handler := New(WithClock(fixedClock)).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"GET data", "GET", "/api/v1/data?domain=example.com", http.StatusOK},
		{"missing domain", "GET", "/api/v1/data", http.StatusBadRequest},
		{"unmatched path", "GET", "/nonexistent", http.StatusNotFound},
		{"wrong method", "POST", "/api/v1/data?domain=example.com", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestDataResponse(t *testing.T) {
	handler := New(WithClock(fixedClock), WithMonths(3)).Handler()

	req := httptest.NewRequest("GET", "/api/v1/data?domain=example.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got Content-Type %q, want application/json", ct)
	}

	var resp struct {
		SiteName               string
		EstimatedMonthlyVisits map[string]float64
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SiteName != "example.com" {
		t.Errorf("got SiteName %q", resp.SiteName)
	}

	var months []string
	for m := range resp.EstimatedMonthlyVisits {
		months = append(months, m)
	}
	sort.Strings(months)
	want := []string{"2024-04-01", "2024-05-01", "2024-06-01"}
	if strings.Join(months, ",") != strings.Join(want, ",") {
		t.Errorf("got months %v, want %v", months, want)
	}
}

func TestVisitsDeterministic(t *testing.T) {
	a := Visits("example.com", fixedNow, 6)
	b := Visits("example.com", fixedNow, 6)
	if len(a) != 6 {
		t.Fatalf("expected 6 months, got %d", len(a))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("month %s differs: %v vs %v", k, v, b[k])
		}
		if v < 900 {
			t.Errorf("month %s has implausible estimate %v", k, v)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	handler := New().Handler()

	req := httptest.NewRequest("GET", "/api/v1/data?domain=a.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("got ACAO %q, want %q", origin, "*")
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); methods == "" {
		t.Error("expected Access-Control-Allow-Methods to be set")
	}

	// Test OPTIONS preflight
	req = httptest.NewRequest("OPTIONS", "/api/v1/data", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS got status %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestCustomCORSOrigin(t *testing.T) {
	handler := New(WithCORSOrigin("chrome-extension://abc")).Handler()

	req := httptest.NewRequest("GET", "/api/v1/data?domain=a.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "chrome-extension://abc" {
		t.Errorf("got ACAO %q", origin)
	}
}

func TestLatencySimulation(t *testing.T) {
	latency := 50 * time.Millisecond
	handler := New(WithLatency(latency)).Handler()

	req := httptest.NewRequest("GET", "/api/v1/data?domain=a.com", nil)
	rec := httptest.NewRecorder()

	start := time.Now()
	handler.ServeHTTP(rec, req)
	elapsed := time.Since(start)

	if elapsed < latency {
		t.Errorf("request took %v, expected at least %v", elapsed, latency)
	}
}

func TestErrorRateSimulation(t *testing.T) {
	// With error rate 1.0, every request should return 500
	handler := New(WithErrorRate(1.0)).Handler()

	req := httptest.NewRequest("GET", "/api/v1/data?domain=a.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d with error rate 1.0", rec.Code, http.StatusInternalServerError)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] != "Simulated server error" {
		t.Errorf("got error %q, want %q", resp["error"], "Simulated server error")
	}
}

func TestErrorRateZero(t *testing.T) {
	handler := New(WithErrorRate(0.0)).Handler()

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/api/v1/data?domain=a.com", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code == http.StatusInternalServerError {
			t.Fatal("got 500 with error rate 0.0")
		}
	}
}

func TestNotFoundWithRouteListing(t *testing.T) {
	handler := New().Handler()

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp map[string]interface{}
	body, _ := io.ReadAll(rec.Body)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode 404 response: %v (body: %s)", err, string(body))
	}
	if resp["error"] != "Route not found" {
		t.Errorf("got error %q, want %q", resp["error"], "Route not found")
	}
	routes, ok := resp["available_routes"].([]interface{})
	if !ok || len(routes) == 0 {
		t.Fatal("expected available_routes to be a non-empty array")
	}
	first := routes[0].(map[string]interface{})
	if _, ok := first["path"]; !ok {
		t.Error("expected route to have 'path' field")
	}
}

func TestWithPortOption(t *testing.T) {
	srv := New(WithPort(9090))
	if srv.Port() != 9090 {
		t.Errorf("got port %d, want 9090", srv.Port())
	}
}

func TestWithErrorRateClamping(t *testing.T) {
	srv := New(WithErrorRate(2.0))
	if srv.errorRate != 1.0 {
		t.Errorf("got error rate %f, want 1.0 (clamped)", srv.errorRate)
	}

	srv = New(WithErrorRate(-0.5))
	if srv.errorRate != 0.0 {
		t.Errorf("got error rate %f, want 0.0 (clamped)", srv.errorRate)
	}
}

func TestClientAgainstMock(t *testing.T) {
	ts := httptest.NewServer(New(WithMonths(2)).Handler())
	defer ts.Close()

	client := traffic.NewClient(httpclient.New(), ts.URL+DataPath)
	res, err := client.Fetch(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if res.Snapshot.Len() != 2 {
		t.Fatalf("expected 2 months, got %d", res.Snapshot.Len())
	}
	latest, _ := res.Snapshot.Latest()
	if !cache.Fresh(res.Snapshot, time.Now()) {
		t.Errorf("mock data should be fresh, latest month %s", latest.Month)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New().Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + DataPath + "?domain=a.com")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
