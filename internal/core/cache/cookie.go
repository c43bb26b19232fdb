package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// CookieOrigin is the origin the popup's cookies are scoped to.
var CookieOrigin = &url.URL{Scheme: "https", Host: "sitetraffic.local", Path: "/"}

// CookieStore keeps values as session cookies on CookieOrigin with path "/"
// and no max-age. The jar is mirrored to a JSON file after every change so a
// later popup open sees the same cookies.
type CookieStore struct {
	mu      sync.RWMutex
	jar     http.CookieJar
	updated map[string]time.Time // cookiejar cannot enumerate names
	path    string
	now     func() time.Time
}

// persistedCookie is a JSON-serializable cookie format.
type persistedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path"`
	Updated time.Time `json:"updated"`
}

type persistedJar struct {
	Origin  string            `json:"origin"`
	Cookies []persistedCookie `json:"cookies"`
}

// NewCookieStore loads the jar persisted at path. An empty path keeps the jar
// in memory only.
func NewCookieStore(path string) (*CookieStore, error) {
	jar, _ := cookiejar.New(nil)
	s := &CookieStore{
		jar:     jar,
		updated: make(map[string]time.Time),
		path:    path,
		now:     time.Now,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CookieStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.find(key)
	if c == nil {
		return "", ErrNotFound
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", fmt.Errorf("decoding cookie %q: %w", key, err)
	}
	return v, nil
}

// Set stores value URL-escaped, since raw JSON is not a valid cookie value.
func (s *CookieStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookies(CookieOrigin, []*http.Cookie{{
		Name:  key,
		Value: url.QueryEscape(value),
		Path:  "/",
	}})
	s.updated[key] = s.now()
	return s.save()
}

// Delete expires the cookie named key.
func (s *CookieStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.updated[key]; !ok {
		return nil
	}
	s.jar.SetCookies(CookieOrigin, []*http.Cookie{{Name: key, Path: "/", MaxAge: -1}})
	delete(s.updated, key)
	return s.save()
}

// List returns every cookie with its unescaped value, sorted by name.
func (s *CookieStore) List() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, c := range s.jar.Cookies(CookieOrigin) {
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			v = c.Value
		}
		out = append(out, Record{Key: c.Name, Value: v, UpdatedAt: s.updated[c.Name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Clear removes all cookies by replacing the underlying jar.
func (s *CookieStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar, _ = cookiejar.New(nil)
	s.updated = make(map[string]time.Time)
	return s.save()
}

func (s *CookieStore) Close() error { return nil }

func (s *CookieStore) find(name string) *http.Cookie {
	for _, c := range s.jar.Cookies(CookieOrigin) {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *CookieStore) load() error {
	if s.path == "" {
		return nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading cookie file: %w", err)
	}

	var data persistedJar
	if err := json.Unmarshal(b, &data); err != nil {
		// Unreadable contents are a cache miss, not a startup failure. The
		// file is kept next to the new one for inspection.
		aside := s.path + ".corrupt"
		if rerr := os.Rename(s.path, aside); rerr != nil {
			aside = ""
		}
		slog.Warn("discarding corrupt cookie file", "path", s.path, "moved_to", aside, "err", err)
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(data.Cookies))
	for _, c := range data.Cookies {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path})
		s.updated[c.Name] = c.Updated
	}
	if len(cookies) > 0 {
		s.jar.SetCookies(CookieOrigin, cookies)
	}
	return nil
}

// save writes the jar to a temp file and renames it over the old one.
func (s *CookieStore) save() error {
	if s.path == "" {
		return nil
	}
	data := persistedJar{Origin: CookieOrigin.String()}
	for _, c := range s.jar.Cookies(CookieOrigin) {
		data.Cookies = append(data.Cookies, persistedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    "/",
			Updated: s.updated[c.Name],
		})
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating cookie dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("writing cookie file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
