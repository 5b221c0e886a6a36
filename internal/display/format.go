// Package display provides output formatting helpers for the CLI, including
// the dry-run listing preview. It uses github.com/pmezard/go-difflib/difflib
// to render the before/after directory listing as a classic unified diff.
package display

import (
	"github.com/pmezard/go-difflib/difflib"
)

// ListingDiff returns a unified diff of the folder's listing before and
// after the planned renames. Both slices must hold bare filenames in listing
// (sorted) order. An empty string means the listings are identical.
func ListingDiff(dir string, before, after []string) (string, error) {
	u := difflib.UnifiedDiff{
		A:        lines(before),
		B:        lines(after),
		FromFile: dir + " (current)",
		ToFile:   dir + " (planned)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(u)
}

// lines converts bare filenames into newline-terminated diff input lines.
func lines(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n+"\n")
	}
	return out
}

// Plural returns word with an "s" appended when n != 1.
func Plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
