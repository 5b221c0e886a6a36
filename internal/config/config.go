// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The recognized extension sets live here as configuration values
// so the two variants (full and lite) stay distinct.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] (or
// [LiteConfig]) and then mutated by [ParseFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Path (set from the positional arg).
	FolderPath string

	// Rename settings.
	StartNumber int             // Default: 1. Overridden by --start-number.
	PadWidth    int             // Fixed: 4 digits.
	Extensions  map[string]bool // Recognized extensions, lowercase with leading dot.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the full variant's defaults.
// Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		StartNumber: 1,
		PadWidth:    4,
		Extensions:  DefaultExtensions(),
		DryRun:      false,
		Verbose:     false,
		ColorMode:   ColorAuto,
	}
}

// LiteConfig returns the minimal variant's configuration for folder:
// defaults only, the smaller extension set, no dry-run.
func LiteConfig(folder string) Config {
	return Config{
		FolderPath:  NormalizeDirArg(folder),
		StartNumber: 1,
		PadWidth:    4,
		Extensions:  LiteExtensions(),
		ColorMode:   ColorAuto,
	}
}

// DefaultExtensions returns the full variant's recognized image extensions.
// A fresh map is returned on every call so callers cannot mutate a shared set.
func DefaultExtensions() map[string]bool {
	return map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".bmp":  true,
		".tiff": true,
		".tif":  true,
		".webp": true,
		".svg":  true,
		".ico":  true,
		".raw":  true,
		".cr2":  true,
		".nef":  true,
		".arw":  true,
	}
}

// LiteExtensions returns the minimal variant's smaller extension set.
// Kept separate from [DefaultExtensions]; the two sets must not be merged.
func LiteExtensions() map[string]bool {
	return map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".bmp":  true,
		".tiff": true,
		".webp": true,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks semantic constraints after flag parsing: a folder must be
// set, the start number must not be negative (negative values would produce
// names like "-001.jpg" that break the fixed-width scheme), and the
// extension set must be non-empty.
func (c *Config) Validate() error {
	if c.FolderPath == "" {
		return errors.New("need a folder path")
	}
	if c.StartNumber < 0 {
		return fmt.Errorf("start number must not be negative (got %d)", c.StartNumber)
	}
	if c.PadWidth <= 0 {
		return fmt.Errorf("invalid pad width %d", c.PadWidth)
	}
	if len(c.Extensions) == 0 {
		return errors.New("extension set must not be empty")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}
