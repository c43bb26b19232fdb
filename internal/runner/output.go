package runner

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrintText outputs results in human-readable format.
func PrintText(w io.Writer, results []Result, verbose bool) {
	failed := 0

	for _, r := range results {
		icon := "✓" // checkmark
		if r.Error != nil {
			icon = "✗" // x mark
			failed++
		}

		domain := r.Domain
		if domain == "" {
			domain = "(no domain)"
		}

		if r.Error != nil {
			fmt.Fprintf(w, "%s %-30s %s\n", icon, truncate(domain, 30), r.State)
			fmt.Fprintf(w, "  └ Error: %s\n", r.Error)
			continue
		}

		line := fmt.Sprintf("%s %-30s %-8s", icon, truncate(domain, 30), r.Source)
		if r.Duration > 0 {
			line += fmt.Sprintf("  %s  %s", formatDuration(r.Duration), humanize.Bytes(uint64(r.Size)))
		}
		fmt.Fprintln(w, line)

		if len(r.Months) == 0 {
			fmt.Fprintln(w, "  (no monthly data)")
		}
		for _, m := range r.Months {
			if verbose && m.Visits != nil {
				fmt.Fprintf(w, "  %-20s %s visits\n", m.Label, humanize.Comma(int64(*m.Visits)))
				continue
			}
			fmt.Fprintf(w, "  %s\n", m.Label)
		}

		if verbose && r.URL != r.Domain {
			fmt.Fprintf(w, "  [url] %s\n", r.URL)
		}
	}

	// Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Lookups: %d total, %d failed\n", len(results), failed)
}

// PrintJSON outputs results as pretty-printed JSON, syntax highlighted when
// color is set.
func PrintJSON(w io.Writer, results []Result, color bool) error {
	data, err := jsonAPI.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	data = pretty.Pretty(data)
	if color {
		data = []byte(highlight(string(data)))
	}
	_, err = w.Write(data)
	return err
}

// highlight applies chroma JSON highlighting for a 256-color terminal.
func highlight(source string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
