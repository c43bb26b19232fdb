package msgs

import "github.com/sadopc/sitetraffic/internal/traffic"

// DomainResolvedMsg carries the domain extracted from the active tab. An
// empty Domain means the tab URL could not be resolved.
type DomainResolvedMsg struct {
	Domain string
}

// CacheCheckedMsg reports the cache lookup for Domain. Snapshot is only
// meaningful when Hit is true.
type CacheCheckedMsg struct {
	Domain   string
	Snapshot traffic.Snapshot
	Hit      bool
}

// FetchDoneMsg is emitted when the traffic request completes.
type FetchDoneMsg struct {
	Domain string
	Result traffic.Result
	Err    error
}

// CopyDoneMsg reports the outcome of copying the list to the clipboard.
type CopyDoneMsg struct {
	Lines int
	Err   error
}
