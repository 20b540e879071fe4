package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise workflow configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after applying .permitflow/config.yaml, .env, and PERMITFLOW_* variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := cfg.Workflow
			fmt.Fprintf(out, "Database:          %s\n", cfg.DBPath)
			fmt.Fprintf(out, "Log level:         %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "Mail from:         %s\n", cfg.Mail.From)
			fmt.Fprintf(out, "Field labels:      %s\n", cfg.Matching.FieldLabels)
			fmt.Fprintf(out, "Contact types:     %s\n", cfg.Matching.ContactTypes)
			fmt.Fprintf(out, "Statuses:          %s -> %s, %s -> %s\n", w.InitialStatus, w.SubmittedStatus, w.PendingStatus, w.ExpiredStatus)
			fmt.Fprintf(out, "Expiry threshold:  %d days\n", w.ExpiryThresholdDays)
			fmt.Fprintf(out, "Re-inspection:     +%d business days at %s\n", w.ReinspectionBusinessDays, w.ReinspectionTime)
			fmt.Fprintf(out, "System actor:      %s\n", w.SystemActor)
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			path := config.Path(cwd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(cwd, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", color.New(color.FgGreen).Sprint("✓"), path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cmd.AddCommand(showCmd)
	cmd.AddCommand(initCmd)

	return cmd
}
