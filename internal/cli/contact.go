package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/wire"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage record contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add [record-id] [contact-type]",
	Short: "Add a contact to a record",
	Long: `Add a contact to a record.

Examples:
  permitflow contact add BLD25-00000-00042 Owner --name "Pat Doe" --email pat@example.com
  permitflow contact add BLD25-00000-00042 Applicant --phone 555-0100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")

		return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).Add(NewContext(), primary.AddContactRequest{
			RecordID:    args[0],
			ContactType: args[1],
			Name:        name,
			Phone:       phone,
			Email:       email,
		})
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list [record-id]",
	Short: "List contacts in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).List(NewContext(), args[0])
	},
}

var contactCopyPhoneCmd = &cobra.Command{
	Use:   "copy-phone [record-id]",
	Short: "Copy the Applicant phone onto the Owner contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).CopyApplicantPhone(NewContext(), args[0])
	},
}

// ContactCmd returns the contact command
func ContactCmd() *cobra.Command {
	contactAddCmd.Flags().String("name", "", "Contact name")
	contactAddCmd.Flags().String("phone", "", "Primary phone")
	contactAddCmd.Flags().String("email", "", "Email address")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactCopyPhoneCmd)

	return contactCmd
}
