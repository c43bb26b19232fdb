package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sadopc/sitetraffic/internal/runner"
)

func lookupCmd(args []string) {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	outputFlag := fs.String("output", "text", "Output format: text, json")
	colorFlag := fs.Bool("color", false, "Syntax highlight JSON output")
	verboseFlag := fs.Bool("verbose", false, "Show raw visit counts and source URLs")
	rateFlag := fs.Float64("rate", -1, "Max API requests per second (default from config, 0 = unlimited)")
	configFlag := fs.String("config", "", "Path to config file")
	noPersistFlag := fs.Bool("no-persist", false, "Use an in-memory cache")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sitetraffic lookup [flags] [URL...]\n\n")
		fmt.Fprintf(os.Stderr, "Run the popup sequence for each URL and print the result.\n")
		fmt.Fprintf(os.Stderr, "With no URL arguments, URLs are read one per line from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic lookup https://www.example.com/page\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic lookup --output json --color example.com example.org\n")
		fmt.Fprintf(os.Stderr, "  cat urls.txt | sitetraffic lookup --rate 0.5\n")
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Every lookup succeeded\n")
		fmt.Fprintf(os.Stderr, "  1  One or more lookups failed\n")
		fmt.Fprintf(os.Stderr, "  2  Usage or setup error\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	switch *outputFlag {
	case "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid output format %q (must be text or json)\n", *outputFlag)
		os.Exit(2)
	}

	urls := fs.Args()
	if len(urls) == 0 && stdinPiped() {
		urls = readURLs(os.Stdin)
	}
	if len(urls) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one URL is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	cfg := loadConfig(*configFlag, *noPersistFlag)
	perSecond := cfg.LookupRate
	if *rateFlag >= 0 {
		perSecond = *rateFlag
	}

	st, err := newStack(cfg)
	if err != nil {
		fatalf(2, "%v", err)
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := runner.New(st.gateway, st.client, perSecond).Run(ctx, urls)
	if err != nil && len(results) == 0 {
		st.Close()
		fatalf(2, "%v", err)
	}

	switch *outputFlag {
	case "json":
		if err := runner.PrintJSON(os.Stdout, results, *colorFlag); err != nil {
			st.Close()
			fatalf(2, "writing JSON: %v", err)
		}
	default:
		runner.PrintText(os.Stdout, results, *verboseFlag)
	}

	st.Close()
	os.Exit(runner.ExitCode(results))
}

// readURLs returns the non-blank lines of r.
func readURLs(r io.Reader) []string {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
