package primary

import "context"

// InspectionService defines the primary port for inspection operations.
type InspectionService interface {
	// RecordResult stores an inspection result and, on failure, notifies the
	// primary contact and schedules a re-inspection (inspection-result handler).
	RecordResult(ctx context.Context, req RecordResultRequest) (*InspectionOutcome, error)

	// ListInspections retrieves the inspections of a record.
	ListInspections(ctx context.Context, recordID string) ([]*Inspection, error)
}

// RecordResultRequest contains parameters for recording an inspection result.
type RecordResultRequest struct {
	RecordID       string
	InspectionType string
	Result         string
}

// InspectionOutcome reports what the inspection-result handler did.
type InspectionOutcome struct {
	HandlerOutcome
	NotifiedEmail string // empty if no email was sent
	Rescheduled   *Inspection
}

// Inspection represents an inspection at the port boundary.
type Inspection struct {
	ID            string
	RecordID      string
	Type          string
	Status        string
	Result        string
	ScheduledDate string
	ScheduledTime string
}
