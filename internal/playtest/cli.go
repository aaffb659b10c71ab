package playtest

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "playtest_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the playtest tool.
func ShowHelp() {
	os.Stdout.WriteString(`ChefsQuest Playtest Tool
========================

Drives a running ChefsQuest engine with simulated play sessions and
verifies the aggregated state afterwards.

Usage:
  go run cmd/playtest/main.go [options]

Options:
  -url string
        Base URL of the engine (default "http://localhost:9090")
  -results int
        Number of level results to generate and submit (default 200)
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for run output (default: playtest_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Run with default settings
  go run cmd/playtest/main.go

  # Longer run against a custom address
  go run cmd/playtest/main.go -results 2000 -workers 8 -url http://localhost:8080
`)
}
