// Package primary defines the primary ports (driving adapters) for the application.
// Each lifecycle event the host dispatches maps to one service operation here.
package primary

import "context"

// RecordService defines the primary port for permit record operations.
type RecordService interface {
	// CreateRecord creates a record and fires the record-created handlers.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (*CreateRecordResponse, error)

	// GetRecord retrieves a record by ID.
	GetRecord(ctx context.Context, recordID string) (*Record, error)

	// ListRecords lists records with optional filters.
	ListRecords(ctx context.Context, filters RecordFilters) ([]*Record, error)

	// SubmitApplication moves a record to the submitted status and fires the
	// application-submitted handlers.
	SubmitApplication(ctx context.Context, recordID string) (*HandlerOutcome, error)

	// ListComments retrieves the comments of a record, oldest first.
	ListComments(ctx context.Context, recordID string) ([]*Comment, error)
}

// CreateRecordRequest contains parameters for creating a record.
type CreateRecordRequest struct {
	RecordID string // ID1-ID2-ID3
	CustomID string // Optional
	ParentID string // Optional
	Type     string
	Status   string // Optional, defaults to the configured initial status
	FileDate string // Optional, ISO or MM/DD/YYYY
	Fields   map[string]string
}

// CreateRecordResponse contains the result of creating a record.
type CreateRecordResponse struct {
	Record *Record
	// CopyOutcome is the result of the record-created value copy.
	CopyOutcome *HandlerOutcome
}

// Record represents a permit record at the port boundary.
type Record struct {
	ID        string
	CustomID  string
	ParentID  string
	Type      string
	Status    string
	FileDate  string // YYYY-MM-DD, empty if missing
	CreatedAt string
	UpdatedAt string
}

// Comment represents a record comment at the port boundary.
type Comment struct {
	ID        string
	Body      string
	Actor     string
	CreatedAt string
}

// RecordFilters contains filter options for querying records.
type RecordFilters struct {
	Status   string
	ParentID string
	Limit    int
}

// HandlerOutcome reports what an event handler did.
type HandlerOutcome struct {
	Applied bool
	// Reason explains why nothing was applied; empty when Applied.
	Reason string
	// Detail describes the applied change, e.g. the copied value.
	Detail string
}
