package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <payroll.pdf>",
	Short: "Split a payroll PDF into one payslip per page",
	Long: `Splits a payroll PDF into one file per page. Each page is read for the
employee reference and the pay period, and written to the output directory
as REF_Month_YEAR.pdf. Pages without both markers are skipped and listed in
the split log.

An existing payslip with the same name is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if splitter == nil {
		return fmt.Errorf("split service %w", errNotConfigured)
	}

	cmd.Printf("Splitting %s...\n", args[0])
	report, err := splitter.Split(cmd.Context(), args[0])
	cmd.Println(report.Summary())
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}
	return nil
}
