// Package popup models one open of the traffic popup: resolve the tab's
// domain, try the cache, fall back to the network, then render.
package popup

import "github.com/sadopc/sitetraffic/internal/traffic"

// State is the popup lifecycle stage.
type State int

const (
	Initializing State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source says where a Ready snapshot came from.
type Source int

const (
	SourceNone Source = iota
	SourceCache
	SourceNetwork
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceNetwork:
		return "network"
	default:
		return "none"
	}
}

// Model is the popup's state. Transition methods return a new Model and
// ignore events that do not apply to the current state, so Ready and Failed
// are terminal.
type Model struct {
	State    State
	Domain   string
	Snapshot traffic.Snapshot
	Source   Source
	Err      error
}

// New returns a model in Initializing.
func New() Model {
	return Model{State: Initializing}
}

// Resolved records the tab's domain and starts loading.
func (m Model) Resolved(domain string) Model {
	if m.State != Initializing {
		return m
	}
	m.Domain = domain
	m.State = Loading
	return m
}

// CacheHit shows a fresh cached snapshot.
func (m Model) CacheHit(snap traffic.Snapshot) Model {
	return m.ready(snap, SourceCache)
}

// Fetched shows a snapshot that was just fetched.
func (m Model) Fetched(snap traffic.Snapshot) Model {
	return m.ready(snap, SourceNetwork)
}

// FetchFailed stops loading without data.
func (m Model) FetchFailed(err error) Model {
	if m.State != Loading {
		return m
	}
	m.State = Failed
	m.Err = err
	return m
}

func (m Model) ready(snap traffic.Snapshot, src Source) Model {
	if m.State != Loading {
		return m
	}
	m.State = Ready
	m.Snapshot = snap
	m.Source = src
	return m
}

// Loading reports whether the loading indicator should be shown.
func (m Model) Loading() bool {
	return m.State == Loading
}

// Terminal reports whether the open sequence has finished.
func (m Model) Terminal() bool {
	return m.State == Ready || m.State == Failed
}

// Items returns the display strings to list. It is nil unless Ready.
func (m Model) Items() []string {
	if m.State != Ready {
		return nil
	}
	return m.Snapshot.Labels()
}
