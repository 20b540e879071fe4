package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// FieldAdapter is a thin adapter that translates CLI operations to FieldService calls.
type FieldAdapter struct {
	service primary.FieldService
	out     io.Writer
}

// NewFieldAdapter creates a new FieldAdapter with the given service.
func NewFieldAdapter(service primary.FieldService, out io.Writer) *FieldAdapter {
	return &FieldAdapter{
		service: service,
		out:     out,
	}
}

// Set sets a custom field value.
func (a *FieldAdapter) Set(ctx context.Context, recordID, label, value string) error {
	if err := a.service.SetField(ctx, recordID, label, value); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s '%s' = %s\n", okMark, recordID, label, value)
	return nil
}

// List lists the custom fields of a record.
func (a *FieldAdapter) List(ctx context.Context, recordID string) error {
	fields, err := a.service.ListFields(ctx, recordID)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		fmt.Fprintln(a.out, "No custom fields found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-30s %s\n", "FIELD", "VALUE")
	fmt.Fprintln(a.out, rule)
	for _, f := range fields {
		fmt.Fprintf(a.out, "%-30s %s\n", f.Label, f.Value)
	}
	fmt.Fprintln(a.out)

	return nil
}

// CopyEstimatedValue re-runs the record-created value copy.
func (a *FieldAdapter) CopyEstimatedValue(ctx context.Context, recordID string) error {
	outcome, err := a.service.CopyEstimatedValue(ctx, recordID)
	if err != nil {
		return err
	}

	writeOutcome(a.out, "Estimated value copy", outcome)
	return nil
}
