package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/wire"
)

var inspectionCmd = &cobra.Command{
	Use:   "inspection",
	Short: "Record and list inspections",
}

var inspectionResultCmd = &cobra.Command{
	Use:   "result [record-id] [inspection-type] [result]",
	Short: "Record an inspection result",
	Long: `Record an inspection result and run the inspection-resulted handler.

A failing result emails the first Owner or Applicant contact and schedules
a re-inspection of the same type.

Examples:
  permitflow inspection result BLD25-00000-00042 Framing Fail`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.InspectionAdapterWithOutput(cmd.OutOrStdout()).Result(NewContext(), primary.RecordResultRequest{
			RecordID:       args[0],
			InspectionType: args[1],
			Result:         args[2],
		})
	},
}

var inspectionListCmd = &cobra.Command{
	Use:   "list [record-id]",
	Short: "List inspections on a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.InspectionAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), args[0])
	},
}

// InspectionCmd returns the inspection command
func InspectionCmd() *cobra.Command {
	inspectionCmd.AddCommand(inspectionResultCmd)
	inspectionCmd.AddCommand(inspectionListCmd)

	return inspectionCmd
}
