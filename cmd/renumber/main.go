// Command renumber is the full-variant CLI: it renames the image files in a
// folder to a zero-padded sequential scheme (0001.jpg, 0002.png, …), with
// dry-run preview and a configurable start number.
package main

import (
	"fmt"
	"os"

	"renumber/internal/config"
	"renumber/internal/logging"
	"renumber/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "renumber: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "renumber: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "renumber: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	log.Info("=== Renumber v%s (%s) ===", version, commit)
	log.Info("Folder: %s", cfg.FolderPath)
	if cfg.StartNumber != 1 {
		log.Info("Start number: %d", cfg.StartNumber)
	}

	// Phase 3: Run the batch. Directory-level errors are fatal; per-file
	// skips and failures are reported in the summary, not via exit status.
	if _, err := pipeline.Run(&cfg, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
