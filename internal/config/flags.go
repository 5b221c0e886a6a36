package config

// This file implements CLI flag parsing and help text for the full variant.
// Exit-triggering flags (--help, --version) are captured and applied after
// Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, non-integer start number,
// missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("renumber", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Override flags: captured here and applied to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var aux auxFlags

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&aux.startNumber, "start-number", "", "First sequence number (default 1)")
	fs.StringVar(&aux.startNumber, "n", "", "Same as --start-number")
	fs.BoolVar(&aux.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&aux.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&aux.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&aux.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&aux.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&aux.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if aux.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if aux.showVersion {
		fmt.Fprintln(os.Stdout, "renumber v"+version)
		os.Exit(0)
	}

	if aux.noColor {
		cfg.ColorMode = ColorNever
	} else if aux.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if aux.startNumber != "" {
		n, err := strconv.Atoi(strings.TrimSpace(aux.startNumber))
		if err != nil {
			return fmt.Errorf("start number must be a whole number (got %q)", aux.startNumber)
		}
		cfg.StartNumber = n
	}

	return parsePositionalArgs(fs, cfg, version)
}

// auxFlags holds flags that are applied after Parse: string-valued overrides
// that need their own parse error messages, and flags that trigger exit.
type auxFlags struct {
	startNumber string
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets FolderPath from the single positional arg.
// With no folder argument the full usage text is shown before the error.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config, version string) error {
	args := fs.Args()
	if len(args) == 0 {
		printUsage(fs, version)
		return errors.New("need a folder path")
	}
	if len(args) != 1 {
		return errors.New("need exactly one folder path")
	}
	cfg.FolderPath = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Renumber v" + version + " — sequential image renamer"},
		{"", ""},
		{"  renumber [OPTIONS] <folder_path>", ""},
		{"", ""},
		{"Renaming", ""},
		{"  -n, --start-number <N>", "First sequence number (default: 1)"},
		{"  -d, --dry-run", "Preview only; do not rename"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
