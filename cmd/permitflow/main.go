package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/cli"
	"github.com/example/permitflow/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "permitflow",
		Short:   "permitflow - permit record workflow automation",
		Version: version.String(),
		Long: `permitflow records permit applications, custom fields, contacts, and
inspections, and runs the workflow handlers that react to them: value
roll-up to parent records, applicant phone copy, failed-inspection
notices with re-inspection scheduling, and the stale pending-fee expiry
batch.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			actor, _ := cmd.Flags().GetString("actor")
			debug, _ := cmd.Flags().GetBool("debug")
			cli.ApplyGlobalFlags(actor, debug)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("actor", "", "Actor recorded in the audit trail (default $PERMITFLOW_ACTOR or $USER)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Workflow entities
	rootCmd.AddCommand(cli.RecordCmd())
	rootCmd.AddCommand(cli.FieldCmd())
	rootCmd.AddCommand(cli.ContactCmd())
	rootCmd.AddCommand(cli.InspectionCmd())

	// Batch and maintenance
	rootCmd.AddCommand(cli.ExpireCmd())
	rootCmd.AddCommand(cli.AuditCmd())

	// Tools
	rootCmd.AddCommand(cli.CalendarCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
