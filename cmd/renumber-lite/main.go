// Command renumber-lite is the minimal variant: one folder argument, default
// start number, the smaller extension set, no flags and no dry-run.
package main

import (
	"fmt"
	"os"

	"renumber/internal/config"
	"renumber/internal/logging"
	"renumber/internal/pipeline"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: renumber-lite <folder_path>")
		os.Exit(1)
	}

	cfg := config.LiteConfig(os.Args[1])
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "renumber-lite: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "renumber-lite: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if _, err := pipeline.Run(&cfg, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
