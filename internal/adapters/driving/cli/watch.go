package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/watcher"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <inbox-dir>",
	Short: "Split every payroll PDF dropped into a directory",
	Long: `Watches a directory and splits each PDF created or modified in it, once the
file has been quiet for watch.debounce_seconds. Runs until interrupted.

Watching never uploads; run 'payslip upload' when the batch is ready.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchInitial bool

func init() {
	watchCmd.Flags().BoolVar(&watchInitial, "initial", false, "Also split PDFs already in the directory")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if splitter == nil {
		return fmt.Errorf("split service %w", errNotConfigured)
	}

	dir := args[0]
	if sameDir(dir, settings.OutputDir) {
		return fmt.Errorf("%w: the inbox cannot be the output directory", domain.ErrInvalidInput)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watcher.New(splitter, watcher.Config{
		Dir:         dir,
		Debounce:    settings.WatchDebounce,
		InitialScan: watchInitial,
	}, func(path string, report *domain.RunReport, _ error) {
		cmd.Printf("%s\n%s\n\n", path, report.Summary())
	})

	cmd.Printf("Watching %s. Press Ctrl+C to stop.\n", dir)
	return w.Run(ctx)
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
