// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/permitflow/internal/ports/primary"
)

const rule = "────────────────────────────────────────────────────────────────"

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("-")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// writeOutcome prints a handler outcome under the given heading.
func writeOutcome(out io.Writer, heading string, o *primary.HandlerOutcome) {
	if o == nil {
		return
	}
	if o.Applied {
		fmt.Fprintf(out, "%s %s: %s\n", okMark, heading, o.Detail)
		return
	}
	fmt.Fprintf(out, "%s %s skipped: %s\n", skipMark, heading, o.Reason)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
