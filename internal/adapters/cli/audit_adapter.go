package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// AuditAdapter is a thin adapter that translates CLI operations to AuditService calls.
type AuditAdapter struct {
	service primary.AuditService
	out     io.Writer
}

// NewAuditAdapter creates a new AuditAdapter with the given service.
func NewAuditAdapter(service primary.AuditService, out io.Writer) *AuditAdapter {
	return &AuditAdapter{
		service: service,
		out:     out,
	}
}

// List lists audit entries.
func (a *AuditAdapter) List(ctx context.Context, filters primary.AuditFilters) error {
	entries, err := a.service.ListEntries(ctx, filters)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found")
		return nil
	}

	for _, e := range entries {
		actor := orDash(e.ActorID)
		switch e.Action {
		case "update":
			fmt.Fprintf(a.out, "%s %-10s %s %s.%s: %q -> %q\n", e.Timestamp, actor, e.EntityType, e.EntityID, e.FieldName, e.OldValue, e.NewValue)
		default:
			fmt.Fprintf(a.out, "%s %-10s %s %s %s\n", e.Timestamp, actor, e.Action, e.EntityType, e.EntityID)
		}
	}

	return nil
}

// Prune deletes entries older than the given number of days.
func (a *AuditAdapter) Prune(ctx context.Context, days int) error {
	n, err := a.service.PruneEntries(ctx, days)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Pruned %d audit entries older than %d days\n", okMark, n, days)
	return nil
}
