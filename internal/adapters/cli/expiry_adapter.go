package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// ExpiryAdapter is a thin adapter that runs the stale record batch.
type ExpiryAdapter struct {
	service primary.ExpiryService
	out     io.Writer
}

// NewExpiryAdapter creates a new ExpiryAdapter with the given service.
func NewExpiryAdapter(service primary.ExpiryService, out io.Writer) *ExpiryAdapter {
	return &ExpiryAdapter{
		service: service,
		out:     out,
	}
}

// Run runs the batch and prints a per-record report.
// It returns an error if any record failed or lost its comment so the exit
// code reflects it.
func (a *ExpiryAdapter) Run(ctx context.Context, recordIDs []string, verbose bool) error {
	report, err := a.service.ExpireStalePendingFee(ctx, recordIDs)
	if err != nil {
		return err
	}

	for _, id := range report.Expired {
		fmt.Fprintf(a.out, "%s %s expired\n", okMark, id)
	}
	if verbose {
		for _, s := range report.Skipped {
			fmt.Fprintf(a.out, "%s %s\n", skipMark, s.Reason)
		}
	}
	for _, f := range report.Failed {
		fmt.Fprintf(a.out, "%s %s: %v\n", failMark, f.RecordID, f.Err)
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(a.out, "%s %s: %v\n", failMark, w.RecordID, w.Err)
	}

	fmt.Fprintf(a.out, "\n%d considered, %d expired, %d skipped, %d failed",
		report.Considered, len(report.Expired), len(report.Skipped), len(report.Failed))
	if len(report.Warnings) > 0 {
		fmt.Fprintf(a.out, ", %d missing comment", len(report.Warnings))
	}
	fmt.Fprintln(a.out)

	switch {
	case len(report.Failed) > 0:
		return fmt.Errorf("%d record(s) failed to expire", len(report.Failed))
	case len(report.Warnings) > 0:
		return fmt.Errorf("%d expired record(s) are missing their comment", len(report.Warnings))
	}
	return nil
}
