package pipeline

import "renumber/internal/naming"

// Entry pairs one candidate with its computed target name.
type Entry struct {
	Source Candidate
	Target string
}

// BuildPlan assigns sequential targets to the sorted candidates: the file at
// position i gets naming.SequenceName(start+i, width, ext). Pure function of
// input order and start; no filesystem access, no randomness.
func BuildPlan(files []Candidate, start, width int) []Entry {
	plan := make([]Entry, 0, len(files))
	for i, f := range files {
		plan = append(plan, Entry{
			Source: f,
			Target: naming.SequenceName(start+i, width, f.Ext),
		})
	}
	return plan
}
