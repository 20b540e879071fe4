package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/permitflow/internal/core/calendar"
)

// CalendarCmd returns the calendar command. Its subcommands only do date
// arithmetic and never open the database.
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Date arithmetic helpers",
	}

	diffCmd := &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Whole calendar days between two dates",
		Long: `Print the number of whole calendar days from the first date to the second.
The second date defaults to today.

Examples:
  permitflow calendar diff 2025-05-01 2025-06-30
  permitflow calendar diff 05/01/2025`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}
			to := time.Now()
			if len(args) == 2 {
				if to, err = calendar.ParseDate(args[1]); err != nil {
					return err
				}
			}

			days, err := calendar.DayDifference(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), days)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add-business-days [date] [n]",
		Short: "Date reached after n weekdays",
		Long: `Print the date, in MM/DD/YYYY form, reached after stepping n weekdays
forward. Saturdays and Sundays are not counted.

Examples:
  permitflow calendar add-business-days 2025-06-06 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[1], err)
			}

			date, err := calendar.AddBusinessDays(start, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatHostDate(date))
			return nil
		},
	}

	cmd.AddCommand(diffCmd)
	cmd.AddCommand(addCmd)

	return cmd
}
