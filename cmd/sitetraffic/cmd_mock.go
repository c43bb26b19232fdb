package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sadopc/sitetraffic/internal/logger"
	"github.com/sadopc/sitetraffic/internal/mock"
)

func mockCmd(args []string) {
	fs := flag.NewFlagSet("mock", flag.ExitOnError)
	portFlag := fs.Int("port", 8080, "Port to listen on")
	latencyFlag := fs.Duration("latency", 0, "Artificial response latency (e.g., 200ms, 1s)")
	errorRateFlag := fs.Float64("error-rate", 0, "Random error rate (0.0-1.0)")
	corsOriginFlag := fs.String("cors-origin", "*", "Access-Control-Allow-Origin header value")
	monthsFlag := fs.Int("months", 6, "Months of history per domain")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sitetraffic mock [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Start a local fake of the traffic API.\n\n")
		fmt.Fprintf(os.Stderr, "GET /api/v1/data?domain=<d> answers with deterministic monthly visit\n")
		fmt.Fprintf(os.Stderr, "estimates for the domain, ending with last month. Point api_url (or\n")
		fmt.Fprintf(os.Stderr, "SITETRAFFIC_API_URL) at the server to use it.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic mock --port 3000\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic mock --latency 800ms --error-rate 0.2\n")
		fmt.Fprintf(os.Stderr, "  SITETRAFFIC_API_URL=http://127.0.0.1:3000/api/v1/data sitetraffic example.com\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if *errorRateFlag < 0 || *errorRateFlag > 1 {
		fmt.Fprintf(os.Stderr, "Error: error-rate must be between 0.0 and 1.0\n")
		os.Exit(2)
	}
	if *portFlag < 0 || *portFlag > 65535 {
		fmt.Fprintf(os.Stderr, "Error: port must be between 0 and 65535\n")
		os.Exit(2)
	}
	if *monthsFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: months must not be negative\n")
		os.Exit(2)
	}

	opts := []mock.Option{
		mock.WithPort(*portFlag),
		mock.WithMonths(*monthsFlag),
	}
	if *latencyFlag > 0 {
		opts = append(opts, mock.WithLatency(*latencyFlag))
	}
	if *errorRateFlag > 0 {
		opts = append(opts, mock.WithErrorRate(*errorRateFlag))
	}
	if *corsOriginFlag != "*" {
		opts = append(opts, mock.WithCORSOrigin(*corsOriginFlag))
	}

	srv := mock.New(opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.SetDefault(logger.New(os.Stderr, "info"))
	if *latencyFlag > 0 {
		fmt.Fprintf(os.Stderr, "Artificial latency: %s\n", latencyFlag.String())
	}
	if *errorRateFlag > 0 {
		fmt.Fprintf(os.Stderr, "Error rate: %.0f%%\n", *errorRateFlag*100)
	}

	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
