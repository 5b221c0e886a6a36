// Package pipeline orchestrates file enumeration, plan building, sequential
// apply, and batch summary reporting.
package pipeline

import (
	"fmt"
	"sort"

	"renumber/internal/config"
	"renumber/internal/display"
	"renumber/internal/logging"
)

// Run is the top-level batch entry point. It enumerates eligible files,
// builds the rename plan, applies it in order (or classifies it in dry-run),
// logs each outcome as it occurs, and returns aggregate stats.
//
// The returned error is non-nil only for directory-level failures
// (ErrNotFound, ErrNotADirectory, unreadable folder); per-file problems are
// folded into the stats and never abort the run.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Enumerate(cfg.FolderPath, cfg.Extensions)
	if err != nil {
		return stats, err
	}

	if len(files) == 0 {
		log.Warn("No image files found in %s", cfg.FolderPath)
		return stats, nil
	}

	stats.Total = len(files)
	log.Info("Found %d image %s in %s", len(files), display.Plural("file", len(files)), cfg.FolderPath)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be renamed")
	}
	fmt.Println()

	plan := BuildPlan(files, cfg.StartNumber, cfg.PadWidth)
	results := Apply(cfg.FolderPath, plan, cfg.DryRun, OSFS{}, func(r Result) {
		logResult(log, r)
		stats.Record(r.Outcome)
	})

	if cfg.DryRun && stats.Renamed > 0 {
		logListingPreview(cfg, log, results)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// logResult prints one outcome line in the order outcomes occur.
func logResult(log *logging.Logger, r Result) {
	src := r.Entry.Source.Name
	switch r.Outcome {
	case Renamed:
		log.Success("  %s -> %s", src, r.Entry.Target)
	case WouldRename:
		log.Info("  [DRY] %s -> %s", src, r.Entry.Target)
	case SkippedAlreadyNamed:
		log.Info("  Skip %s (already correctly named)", src)
	case SkippedCollision:
		log.Warn("  Skip %s (target %s already exists)", src, r.Entry.Target)
	case Failed:
		log.Error("  Failed %s: %v", src, r.Err)
	}
}

// logListingPreview prints a unified diff of the directory listing as it is
// now versus as it would be after a live run with the same classifications.
func logListingPreview(cfg *config.Config, log *logging.Logger, results []Result) {
	before := make([]string, 0, len(results))
	after := make([]string, 0, len(results))
	for _, r := range results {
		before = append(before, r.Entry.Source.Name)
		if r.Outcome == WouldRename {
			after = append(after, r.Entry.Target)
		} else {
			after = append(after, r.Entry.Source.Name)
		}
	}
	// A directory listing is shown sorted; before already is.
	sort.Strings(after)

	diff, err := display.ListingDiff(cfg.FolderPath, before, after)
	if err != nil {
		log.Debug(cfg.Verbose, "listing preview unavailable: %v", err)
		return
	}
	if diff == "" {
		return
	}
	fmt.Println()
	log.Info("Listing preview:")
	fmt.Print(diff)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	fmt.Println()
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Would rename %d %s (%d skipped: %d already named, %d collisions)",
			stats.Renamed, display.Plural("file", stats.Renamed),
			stats.Skipped(), stats.AlreadyNamed, stats.Collisions)
		return
	}

	if stats.Failed > 0 {
		log.Warn("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped(), stats.Failed)
	} else {
		log.Success("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped(), stats.Failed)
	}
	log.Debug(cfg.Verbose, "  Skip breakdown: %d already named, %d collisions", stats.AlreadyNamed, stats.Collisions)
}
