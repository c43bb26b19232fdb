// Package mock serves a local stand-in for the traffic estimation API, so
// the popup can be developed and demoed offline.
package mock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/zeebo/xxh3"
)

// DataPath is the route of the traffic endpoint.
const DataPath = "/api/v1/data"

const defaultMonths = 6

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Server is a mock traffic API server.
type Server struct {
	port       int
	latency    time.Duration
	errorRate  float64
	corsOrigin string
	months     int
	now        func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the listen port. Zero picks a free port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithLatency delays every response.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithErrorRate makes a fraction of requests fail with 500. The rate is
// clamped to [0, 1].
func WithErrorRate(rate float64) Option {
	return func(s *Server) { s.errorRate = math.Max(0, math.Min(1, rate)) }
}

// WithCORSOrigin sets the Access-Control-Allow-Origin value.
func WithCORSOrigin(origin string) Option {
	return func(s *Server) { s.corsOrigin = origin }
}

// WithMonths sets how many months each response covers.
func WithMonths(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.months = n
		}
	}
}

// WithClock sets the time source that decides the reported months.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a mock server.
func New(opts ...Option) *Server {
	s := &Server{
		port:       8080,
		corsOrigin: "*",
		months:     defaultMonths,
		now:        time.Now,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Port returns the configured port.
func (s *Server) Port() int { return s.port }

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.middleware)
	r.HandleFunc(DataPath, s.handleData).Methods(http.MethodGet, http.MethodOptions)
	r.NotFoundHandler = http.HandlerFunc(s.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.notFound)
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(s.port)))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("mock traffic API listening", "addr", ln.Addr().String(), "path", DataPath)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORS(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}

		if s.shouldFail() {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Simulated server error"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
}

func (s *Server) shouldFail() bool {
	if s.errorRate <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.errorRate
}

type dataResponse struct {
	SiteName               string             `json:"SiteName"`
	EstimatedMonthlyVisits map[string]float64 `json:"EstimatedMonthlyVisits"`
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "domain is required"})
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{
		SiteName:               domain,
		EstimatedMonthlyVisits: Visits(domain, s.now(), s.months),
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.setCORS(w)
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error": "Route not found",
		"available_routes": []map[string]string{
			{"method": http.MethodGet, "path": DataPath + "?domain={domain}"},
		},
	})
}

// Visits returns n months of deterministic estimates for domain, ending
// with the month before now. Keys are first-of-month dates. The same domain
// always gets the same order of magnitude.
func Visits(domain string, now time.Time, n int) map[string]float64 {
	seed := xxh3.HashString(domain)
	exp := 3 + float64(seed%7)
	mantissa := 1 + float64((seed>>8)%900)/100
	base := mantissa * math.Pow(10, exp)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make(map[string]float64, n)
	for i := n; i >= 1; i-- {
		month := first.AddDate(0, -i, 0).Format("2006-01-02")
		jitter := float64(xxh3.HashString(domain+"|"+month)%21) - 10
		out[month] = math.Round(base * (1 + jitter/100))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
