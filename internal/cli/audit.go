package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/wire"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "View the audit trail",
	Long:  "View and prune the audit trail of record, field, contact, and inspection changes",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent audit entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entityType, _ := cmd.Flags().GetString("type")
		entityID, _ := cmd.Flags().GetString("entity")
		actorID, _ := cmd.Flags().GetString("by")
		limit, _ := cmd.Flags().GetInt("limit")

		return wire.AuditAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), primary.AuditFilters{
			EntityType: entityType,
			EntityID:   entityID,
			ActorID:    actorID,
			Limit:      limit,
		})
	},
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old audit entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		return wire.AuditAdapterWithOutput(cmd.OutOrStdout()).Prune(NewContext(), days)
	},
}

// AuditCmd returns the audit command
func AuditCmd() *cobra.Command {
	auditListCmd.Flags().String("type", "", "Filter by entity type")
	auditListCmd.Flags().String("entity", "", "Filter by entity ID")
	auditListCmd.Flags().String("by", "", "Filter by actor ID")
	auditListCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")

	auditPruneCmd.Flags().Int("days", 30, "Delete entries older than N days")

	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditPruneCmd)

	return auditCmd
}
