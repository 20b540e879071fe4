package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// InspectionAdapter is a thin adapter that translates CLI operations to InspectionService calls.
type InspectionAdapter struct {
	service primary.InspectionService
	out     io.Writer
}

// NewInspectionAdapter creates a new InspectionAdapter with the given service.
func NewInspectionAdapter(service primary.InspectionService, out io.Writer) *InspectionAdapter {
	return &InspectionAdapter{
		service: service,
		out:     out,
	}
}

// Result records an inspection result and reports what the handler did.
func (a *InspectionAdapter) Result(ctx context.Context, req primary.RecordResultRequest) error {
	outcome, err := a.service.RecordResult(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Recorded %s result '%s' on %s\n", okMark, req.InspectionType, req.Result, req.RecordID)
	writeOutcome(a.out, "Re-inspection", &outcome.HandlerOutcome)
	if outcome.NotifiedEmail != "" {
		fmt.Fprintf(a.out, "  notice queued for %s\n", outcome.NotifiedEmail)
	}
	return nil
}

// List lists the inspections of a record.
func (a *InspectionAdapter) List(ctx context.Context, recordID string) error {
	inspections, err := a.service.ListInspections(ctx, recordID)
	if err != nil {
		return err
	}

	if len(inspections) == 0 {
		fmt.Fprintln(a.out, "No inspections found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-16s %-10s %-12s %-6s %s\n", "TYPE", "STATUS", "DATE", "TIME", "RESULT")
	fmt.Fprintln(a.out, rule)
	for _, in := range inspections {
		fmt.Fprintf(a.out, "%-16s %-10s %-12s %-6s %s\n", in.Type, in.Status, in.ScheduledDate, orDash(in.ScheduledTime), orDash(in.Result))
	}
	fmt.Fprintln(a.out)

	return nil
}
