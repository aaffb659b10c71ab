package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/playtest"
)

// Default configuration constants.
const (
	defaultNumResults = 200
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9090", "Base URL of the engine")
		numResults = flag.Int("results", defaultNumResults, "Number of level results to generate and submit")
		workers    = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile    = flag.String("log", "", "Log file for run output (default: playtest_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		playtest.ShowHelp()
		return
	}

	if err := playtest.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &playtest.Config{
		BaseURL:    *baseURL,
		NumResults: *numResults,
		Workers:    *workers,
		Timeout:    *timeout,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := playtest.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Playtest failed: " + err.Error() + "\n")
		return
	}
}
