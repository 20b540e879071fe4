package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/wire"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage custom fields on records",
}

var fieldSetCmd = &cobra.Command{
	Use:   "set [record-id] [label] [value]",
	Short: "Set a custom field value",
	Long: `Set a custom field value, creating the field if it does not exist.

Examples:
  permitflow field set BLD25-00000-00002 "Estimated Value" 98000`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.FieldAdapterWithOutput(cmd.OutOrStdout()).Set(NewContext(), args[0], args[1], args[2])
	},
}

var fieldListCmd = &cobra.Command{
	Use:   "list [record-id]",
	Short: "List custom fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.FieldAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), args[0])
	},
}

var fieldCopyCmd = &cobra.Command{
	Use:   "copy [record-id]",
	Short: "Copy the Estimated Value to the parent record",
	Long:  "Re-run the record-created handler: copy the child's Estimated Value into the parent's Latest Sub-Value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.FieldAdapterWithOutput(cmd.OutOrStdout()).CopyEstimatedValue(NewContext(), args[0])
	},
}

// FieldCmd returns the field command
func FieldCmd() *cobra.Command {
	fieldCmd.AddCommand(fieldSetCmd)
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldCopyCmd)

	return fieldCmd
}
