package primary

import "context"

// ExpiryService defines the primary port for the stale record batch.
type ExpiryService interface {
	// ExpireStalePendingFee expires records left in the pending fee status past
	// the configured threshold. With no ids, every pending record is considered.
	ExpireStalePendingFee(ctx context.Context, recordIDs []string) (*BatchReport, error)
}

// BatchReport summarises one batch run.
type BatchReport struct {
	Considered int
	Expired    []string
	Skipped    []BatchSkip
	Failed     []BatchFailure
	// Warnings lists expired records whose comment could not be written.
	Warnings []BatchFailure
}

// BatchSkip names a record the batch left alone and why.
type BatchSkip struct {
	RecordID string
	Reason   string
}

// BatchFailure names a record whose update failed, or an expired record
// whose follow-up comment failed.
type BatchFailure struct {
	RecordID string
	Err      error
}
