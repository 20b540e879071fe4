package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/wire"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage permit records",
	Long:  "Create, inspect, and submit permit records",
}

var recordCreateCmd = &cobra.Command{
	Use:   "create [record-id]",
	Short: "Create a record",
	Long: `Create a record and run the record-created handler.

When --parent is given, the child's Estimated Value is copied to the
parent's Latest Sub-Value field.

Examples:
  permitflow record create BLD25-00000-00001 --field "Latest Sub-Value="
  permitflow record create BLD25-00000-00002 --parent BLD25-00000-00001 --field "Estimated Value=98000"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		customID, _ := cmd.Flags().GetString("custom-id")
		parentID, _ := cmd.Flags().GetString("parent")
		recordType, _ := cmd.Flags().GetString("type")
		status, _ := cmd.Flags().GetString("status")
		fileDate, _ := cmd.Flags().GetString("file-date")
		pairs, _ := cmd.Flags().GetStringArray("field")

		fields, err := parseFieldPairs(pairs)
		if err != nil {
			return err
		}

		return wire.RecordAdapterWithOutput(cmd.OutOrStdout()).Create(ctx, primary.CreateRecordRequest{
			RecordID: args[0],
			CustomID: customID,
			ParentID: parentID,
			Type:     recordType,
			Status:   status,
			FileDate: fileDate,
			Fields:   fields,
		})
	},
}

var recordShowCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Show record details and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RecordAdapterWithOutput(cmd.OutOrStdout()).Show(NewContext(), args[0])
	},
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		parentID, _ := cmd.Flags().GetString("parent")
		limit, _ := cmd.Flags().GetInt("limit")

		return wire.RecordAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), primary.RecordFilters{
			Status:   status,
			ParentID: parentID,
			Limit:    limit,
		})
	},
}

var recordSubmitCmd = &cobra.Command{
	Use:   "submit [record-id]",
	Short: "Submit an application",
	Long:  "Mark the record submitted and copy the Applicant phone onto the Owner contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RecordAdapterWithOutput(cmd.OutOrStdout()).Submit(NewContext(), args[0])
	},
}

// RecordCmd returns the record command
func RecordCmd() *cobra.Command {
	recordCreateCmd.Flags().String("custom-id", "", "Alternate record identifier")
	recordCreateCmd.Flags().String("parent", "", "Parent record ID")
	recordCreateCmd.Flags().String("type", "", "Record type")
	recordCreateCmd.Flags().String("status", "", "Initial status (defaults to config)")
	recordCreateCmd.Flags().String("file-date", "", "File date (YYYY-MM-DD or MM/DD/YYYY)")
	recordCreateCmd.Flags().StringArrayP("field", "f", nil, "Custom field as Label=Value (repeatable)")

	recordListCmd.Flags().StringP("status", "s", "", "Filter by status")
	recordListCmd.Flags().String("parent", "", "Filter by parent record ID")
	recordListCmd.Flags().IntP("limit", "n", 0, "Maximum records to show")

	recordCmd.AddCommand(recordCreateCmd)
	recordCmd.AddCommand(recordShowCmd)
	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordSubmitCmd)

	return recordCmd
}
