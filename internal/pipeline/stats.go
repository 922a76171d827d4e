package pipeline

// FileFailure records one candidate that failed during a run.
type FileFailure struct {
	Path string
	Err  error
}

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total         int
	Current       int
	Copied        int // Includes dry-run "would copy" results.
	Existing      int // Destination already present; left untouched.
	NotApplicable int // Name is not chapter_section[_subsection].
	Failed        int
	BytesCopied   int64
	Failures      []FileFailure
}

// Attempted returns how many candidates reached a final outcome.
func (s *RunStats) Attempted() int {
	return s.Copied + s.Existing + s.NotApplicable + s.Failed
}

func (s *RunStats) recordFailure(path string, err error) {
	s.Failed++
	s.Failures = append(s.Failures, FileFailure{Path: path, Err: err})
}
