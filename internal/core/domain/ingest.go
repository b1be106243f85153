package domain

// IngestStatus is the terminal state of one candidate file.
type IngestStatus string

const (
	// IngestAdded means the candidate was accepted and persisted.
	IngestAdded IngestStatus = "added"

	// IngestSkippedDuplicate means the content hash (or, in resume
	// mode, the source file) was already in the store.
	IngestSkippedDuplicate IngestStatus = "skipped_duplicate"

	// IngestRejected means the reviewer declined the candidate.
	IngestRejected IngestStatus = "rejected"

	// IngestFailed means extraction or the write failed for this
	// candidate. The batch continues.
	IngestFailed IngestStatus = "failed"
)

// IngestOptions controls a single ingestion run.
type IngestOptions struct {
	// Resume skips files whose source path was already processed, even
	// if the OCR text drifted between runs.
	Resume bool

	// Extensions filters directory ingestion to the given file
	// extensions (lowercase, with leading dot). Empty means defaults.
	Extensions []string
}

// IngestResult records the outcome for one candidate file.
type IngestResult struct {
	// SourceFile is the candidate's path.
	SourceFile string

	// Status is the terminal state.
	Status IngestStatus

	// ComponentID is set when the candidate was persisted.
	ComponentID string

	// Err holds the per-file failure, if any.
	Err error
}

// IngestReport summarizes one ingestion run. Accepted candidates were
// appended to storage in the order they appear in Results.
type IngestReport struct {
	Results []IngestResult
}

// Counts returns the number of results per terminal status.
func (r *IngestReport) Counts() (added, skipped, rejected, failed int) {
	for i := range r.Results {
		switch r.Results[i].Status {
		case IngestAdded:
			added++
		case IngestSkippedDuplicate:
			skipped++
		case IngestRejected:
			rejected++
		case IngestFailed:
			failed++
		}
	}
	return added, skipped, rejected, failed
}
