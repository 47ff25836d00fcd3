package download

// Outcome is the terminal status of one download attempt.
type Outcome int

const (
	// OutcomeDownloaded means the destination did not exist and the transfer
	// succeeded.
	OutcomeDownloaded Outcome = iota
	// OutcomeOverwritten means the destination existed and was replaced.
	OutcomeOverwritten
	// OutcomeSkipped means the destination existed and overwrite was off; no
	// transfer was performed.
	OutcomeSkipped
	// OutcomeFailed means the transfer was attempted and failed.
	OutcomeFailed
	// OutcomeTimedOut means the per-item deadline expired before the
	// transfer finished.
	OutcomeTimedOut
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// OK reports whether the outcome left a usable file behind.
func (o Outcome) OK() bool {
	return o == OutcomeDownloaded || o == OutcomeOverwritten || o == OutcomeSkipped
}

// Summary counts outcomes of a finished batch.
type Summary struct {
	Downloaded  int
	Overwritten int
	Skipped     int
	Failed      int
	TimedOut    int
}

// Summarize tallies the outcomes of a result list.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case OutcomeDownloaded:
			s.Downloaded++
		case OutcomeOverwritten:
			s.Overwritten++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		case OutcomeTimedOut:
			s.TimedOut++
		}
	}
	return s
}

// OK returns the number of items that ended with a usable file.
func (s Summary) OK() int {
	return s.Downloaded + s.Overwritten + s.Skipped
}

// Total returns the number of items in the batch.
func (s Summary) Total() int {
	return s.OK() + s.Failed + s.TimedOut
}
