package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors returned by Enumerate for directory-level failures.
// Both abort the run before any file is touched.
var (
	ErrNotFound      = errors.New("folder not found")
	ErrNotADirectory = errors.New("path is not a directory")
)

// Candidate is one eligible file inside the target folder.
type Candidate struct {
	Name string // Basename as it appears in the directory listing.
	Ext  string // Lower-cased extension with leading dot.
	Path string // Full path (folder + name).
}

// Enumerate lists dir one level deep (no recursion) and returns the regular
// files whose lower-cased extension is in exts, sorted by name with plain
// lexicographic comparison. Names with inconsistent digit widths sort
// lexicographically, not numerically; that ordering is part of the contract.
func Enumerate(dir string, exts map[string]bool) ([]Candidate, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []Candidate
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !exts[ext] {
			continue
		}
		files = append(files, Candidate{
			Name: e.Name(),
			Ext:  ext,
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
