package pipeline

import (
	"os"
	"path/filepath"
)

// Outcome classifies what happened to one plan entry.
type Outcome int

const (
	// Renamed: the rename call succeeded.
	Renamed Outcome = iota
	// WouldRename: dry-run classification for an entry live mode would rename.
	WouldRename
	// SkippedAlreadyNamed: the file already bears its target name.
	SkippedAlreadyNamed
	// SkippedCollision: an unrelated entry already exists at the target name.
	SkippedCollision
	// Failed: the rename call returned an OS-level error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Renamed:
		return "renamed"
	case WouldRename:
		return "would rename"
	case SkippedAlreadyNamed:
		return "skipped (already named)"
	case SkippedCollision:
		return "skipped (collision)"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the applied outcome for one plan entry. Err is set only when
// Outcome is Failed.
type Result struct {
	Entry   Entry
	Outcome Outcome
	Err     error
}

// FS is the subset of filesystem operations Apply needs. The seam exists so
// tests can record or fail calls; production code uses [OSFS].
type FS interface {
	Stat(name string) (os.FileInfo, error)
	Rename(oldpath, newpath string) error
	SameFile(a, b os.FileInfo) bool
}

// OSFS is the real filesystem.
type OSFS struct{}

func (OSFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (OSFS) Rename(oldpath, newpath string) error  { return os.Rename(oldpath, newpath) }
func (OSFS) SameFile(a, b os.FileInfo) bool        { return os.SameFile(a, b) }

// Apply executes the plan entries strictly in order against fsys and returns
// one Result per entry. Ordering is a correctness mechanism: earlier renames
// may create the very name a later entry would collide with, so the collision
// check stats the target at the moment of each rename, never against the
// pre-scan snapshot. A per-entry failure never aborts the batch.
//
// With dryRun set, no mutating call is made; entries that live mode would
// rename classify as WouldRename using the same predicate logic.
//
// onResult, when non-nil, is invoked once per entry as its outcome is known,
// so callers can report progress as it occurs.
func Apply(dir string, plan []Entry, dryRun bool, fsys FS, onResult func(Result)) []Result {
	results := make([]Result, 0, len(plan))
	for _, e := range plan {
		r := applyEntry(dir, e, dryRun, fsys)
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}
	return results
}

// applyEntry classifies and (outside dry-run) executes one rename.
func applyEntry(dir string, e Entry, dryRun bool, fsys FS) Result {
	if e.Target == e.Source.Name {
		return Result{Entry: e, Outcome: SkippedAlreadyNamed}
	}

	targetPath := filepath.Join(dir, e.Target)
	if ti, err := fsys.Stat(targetPath); err == nil {
		// Something lives at the target name. Only proceed when it is the
		// source itself (case-insensitive filesystems report the source for
		// a case-only rename); anything else is a collision.
		same := false
		if si, serr := fsys.Stat(e.Source.Path); serr == nil {
			same = fsys.SameFile(si, ti)
		}
		if !same {
			return Result{Entry: e, Outcome: SkippedCollision}
		}
	}

	if dryRun {
		return Result{Entry: e, Outcome: WouldRename}
	}

	if err := fsys.Rename(e.Source.Path, targetPath); err != nil {
		return Result{Entry: e, Outcome: Failed, Err: err}
	}
	return Result{Entry: e, Outcome: Renamed}
}
