package primary

import "context"

// FieldService defines the primary port for custom field operations.
type FieldService interface {
	// CopyEstimatedValue copies the child's estimated value to the parent's
	// latest sub-value field (record-created handler).
	CopyEstimatedValue(ctx context.Context, recordID string) (*HandlerOutcome, error)

	// SetField sets a custom field value on a record.
	SetField(ctx context.Context, recordID, label, value string) error

	// ListFields retrieves the custom fields of a record.
	ListFields(ctx context.Context, recordID string) ([]*CustomField, error)
}

// CustomField represents a custom field at the port boundary.
type CustomField struct {
	ID    string
	Label string
	Value string
}
