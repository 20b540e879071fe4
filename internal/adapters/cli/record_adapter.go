package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// RecordAdapter is a thin adapter that translates CLI operations to RecordService calls.
type RecordAdapter struct {
	service primary.RecordService
	out     io.Writer
}

// NewRecordAdapter creates a new RecordAdapter with the given service.
func NewRecordAdapter(service primary.RecordService, out io.Writer) *RecordAdapter {
	return &RecordAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a record and reports the record-created handler outcome.
func (a *RecordAdapter) Create(ctx context.Context, req primary.CreateRecordRequest) error {
	resp, err := a.service.CreateRecord(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Created record %s (%s)\n", okMark, resp.Record.ID, resp.Record.Status)
	writeOutcome(a.out, "Estimated value copy", resp.CopyOutcome)
	return nil
}

// Submit submits the application and reports the phone copy outcome.
func (a *RecordAdapter) Submit(ctx context.Context, recordID string) error {
	outcome, err := a.service.SubmitApplication(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to submit application: %w", err)
	}

	fmt.Fprintf(a.out, "%s Record %s submitted\n", okMark, recordID)
	writeOutcome(a.out, "Applicant phone copy", outcome)
	return nil
}

// List lists records with optional filters.
func (a *RecordAdapter) List(ctx context.Context, filters primary.RecordFilters) error {
	records, err := a.service.ListRecords(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No records found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-26s %-14s %-12s %s\n", "ID", "STATUS", "FILED", "PARENT")
	fmt.Fprintln(a.out, rule)
	for _, r := range records {
		fmt.Fprintf(a.out, "%-26s %-14s %-12s %s\n", r.ID, r.Status, orDash(r.FileDate), orDash(r.ParentID))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays a record with its comments.
func (a *RecordAdapter) Show(ctx context.Context, recordID string) error {
	record, err := a.service.GetRecord(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	fmt.Fprintf(a.out, "\nRecord:  %s\n", record.ID)
	if record.CustomID != "" {
		fmt.Fprintf(a.out, "Alt ID:  %s\n", record.CustomID)
	}
	if record.Type != "" {
		fmt.Fprintf(a.out, "Type:    %s\n", record.Type)
	}
	fmt.Fprintf(a.out, "Status:  %s\n", record.Status)
	fmt.Fprintf(a.out, "Filed:   %s\n", orDash(record.FileDate))
	if record.ParentID != "" {
		fmt.Fprintf(a.out, "Parent:  %s\n", record.ParentID)
	}
	fmt.Fprintf(a.out, "Created: %s\n", record.CreatedAt)

	comments, err := a.service.ListComments(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) > 0 {
		fmt.Fprintln(a.out, "\nComments:")
		for _, c := range comments {
			fmt.Fprintf(a.out, "  [%s] %s: %s\n", c.CreatedAt, orDash(c.Actor), c.Body)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
