package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/sitetraffic/internal/core/cache"
	"github.com/sadopc/sitetraffic/internal/traffic"
)

func cacheCmd(args []string) {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	configFlag := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sitetraffic cache <list|delete|clear> [args] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Inspect the snapshots cached by the popup.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  list [pattern]   List cached domains, fuzzy-filtered by pattern\n")
		fmt.Fprintf(os.Stderr, "  delete DOMAIN    Remove one domain's snapshot\n")
		fmt.Fprintf(os.Stderr, "  clear            Remove every cached snapshot\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: cache command is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	cfg := loadConfig(*configFlag, false)
	backend, err := openBackend(cfg)
	if err != nil {
		fatalf(1, "%v", err)
	}
	defer backend.Close()

	sub, rest := fs.Arg(0), fs.Args()[1:]
	switch sub {
	case "list":
		err = listCache(os.Stdout, backend, strings.Join(rest, " "), time.Now())
	case "delete":
		if len(rest) != 1 {
			fmt.Fprintf(os.Stderr, "Error: delete takes exactly one domain\n")
			backend.Close()
			os.Exit(2)
		}
		err = deleteCache(os.Stdout, backend, rest[0])
	case "clear":
		err = clearCache(os.Stdout, backend)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown cache command %q\n\n", sub)
		fs.Usage()
		backend.Close()
		os.Exit(2)
	}
	if err != nil {
		backend.Close()
		fatalf(1, "%v", err)
	}
}

type cachedDomain struct {
	domain  string
	record  cache.Record
	snap    traffic.Snapshot
	corrupt bool
}

// listCache prints one line per cached domain matching pattern. An empty
// pattern lists everything, sorted by domain; otherwise the fuzzy rank
// decides the order.
func listCache(w io.Writer, b cache.Backend, pattern string, now time.Time) error {
	records, err := b.List()
	if err != nil {
		return fmt.Errorf("listing cache: %w", err)
	}

	var entries []cachedDomain
	for _, rec := range records {
		domain, ok := cache.DomainFromKey(rec.Key)
		if !ok {
			continue
		}
		e := cachedDomain{domain: domain, record: rec}
		if err := e.snap.UnmarshalJSON([]byte(rec.Value)); err != nil {
			e.corrupt = true
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].domain < entries[j].domain })

	if pattern != "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.domain
		}
		matches := fuzzy.Find(pattern, names)
		ranked := make([]cachedDomain, 0, len(matches))
		for _, m := range matches {
			ranked = append(ranked, entries[m.Index])
		}
		entries = ranked
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No cached domains.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-32s %s\n", e.domain, describeEntry(e, now))
	}
	return nil
}

func describeEntry(e cachedDomain, now time.Time) string {
	if e.corrupt {
		return "corrupt"
	}
	state := "stale"
	if cache.Fresh(e.snap, now) {
		state = "fresh"
	}
	parts := []string{state, fmt.Sprintf("%d months", e.snap.Len())}
	if latest, ok := e.snap.Latest(); ok {
		parts = append(parts, "latest "+latest.Month+" "+latest.Label)
	}
	if !e.record.UpdatedAt.IsZero() {
		parts = append(parts, "cached "+humanize.RelTime(e.record.UpdatedAt, now, "ago", "from now"))
	}
	return strings.Join(parts, " | ")
}

func deleteCache(w io.Writer, b cache.Backend, domain string) error {
	key := cache.Key(domain)
	if _, err := b.Get(key); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return fmt.Errorf("%s is not cached", domain)
		}
		return fmt.Errorf("reading %s: %w", domain, err)
	}
	if err := b.Delete(key); err != nil {
		return fmt.Errorf("deleting %s: %w", domain, err)
	}
	fmt.Fprintf(w, "Deleted %s\n", domain)
	return nil
}

func clearCache(w io.Writer, b cache.Backend) error {
	if err := b.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Fprintln(w, "Cache cleared.")
	return nil
}
