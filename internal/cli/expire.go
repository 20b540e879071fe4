package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/wire"
)

// ExpireCmd returns the expire command
func ExpireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire [record-id...]",
		Short: "Expire stale records pending fee",
		Long: `Run the expiry batch over the given records, or over every record in
the pending status when none are given. Records filed at least the
configured number of days ago move to the expired status and receive a
comment.

Exits non-zero when any record failed to update.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return wire.ExpiryAdapterWithOutput(cmd.OutOrStdout()).Run(NewContext(), args, verbose)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "List skipped records with reasons")

	return cmd
}
