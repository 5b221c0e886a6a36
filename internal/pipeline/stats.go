package pipeline

// RunStats tracks aggregate counters across a batch run. Renamed counts
// WouldRename outcomes too, so dry-run summaries use the classification
// produced by Apply rather than re-deriving indices.
type RunStats struct {
	Total        int
	Renamed      int
	AlreadyNamed int
	Collisions   int
	Failed       int
}

// Record folds one outcome into the counters.
func (s *RunStats) Record(o Outcome) {
	switch o {
	case Renamed, WouldRename:
		s.Renamed++
	case SkippedAlreadyNamed:
		s.AlreadyNamed++
	case SkippedCollision:
		s.Collisions++
	case Failed:
		s.Failed++
	}
}

// Skipped returns the combined skip count across both skip reasons.
func (s *RunStats) Skipped() int {
	return s.AlreadyNamed + s.Collisions
}
