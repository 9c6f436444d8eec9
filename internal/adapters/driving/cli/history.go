package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent split and upload runs",
	Long: `Lists recent runs, newest first. With --export the runs are written to an
Excel workbook instead.

Examples:
  payslip history
  payslip history --limit 50 --export runs.xlsx`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

// Flags for history.
var (
	historyLimit  int
	historyExport string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs (0 for all)")
	historyCmd.Flags().StringVar(&historyExport, "export", "", "Write the runs to an .xlsx file")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return fmt.Errorf("history %w", errNotConfigured)
	}

	if historyExport != "" {
		return exportHistory(cmd)
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range runs {
		r := &runs[i]
		status := "ok"
		if !r.Success {
			status = "FAILED"
		}
		counts := fmt.Sprintf("ok=%d failed=%d", r.Succeeded, r.Failed)
		if r.Kind == domain.RunKindUpload {
			counts += fmt.Sprintf(" folders=%d", r.FoldersCreated)
		}
		cmd.Printf("%s  %-6s  %-6s  %s  %s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Kind.Title(), status, counts, r.Source)
		if r.Message != "" {
			cmd.Printf("    %s\n", r.Message)
		}
	}
	return nil
}

func exportHistory(cmd *cobra.Command) error {
	f, err := os.Create(historyExport)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", historyExport, err)
	}

	if err := historyService.Export(cmd.Context(), f, historyLimit); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export runs: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", historyExport, err)
	}

	cmd.Printf("Runs exported to %s\n", historyExport)
	return nil
}
