package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total      int
	Changed    int
	Unchanged  int
	Collisions int
}

// Tally counts entries into a fresh RunStats.
func Tally(entries []Entry, collisions int) RunStats {
	s := RunStats{Total: len(entries), Collisions: collisions}
	for _, e := range entries {
		if e.Changed {
			s.Changed++
		} else {
			s.Unchanged++
		}
	}
	return s
}
