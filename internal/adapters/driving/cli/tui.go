package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [payroll.pdf]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface.

Type or drop the payroll PDF path, press enter to split it, then ctrl+u to
upload the payslips once a split has succeeded.

Controls:
  enter       Split the document
  ctrl+u      Upload (asks for confirmation)
  ↑/↓ pgup    Scroll the activity log
  ctrl+l      Clear the activity log
  ctrl+c      Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUI builds the application; replaced in tests.
var newTUI = func(cmd *cobra.Command, args []string) (*tui.App, error) {
	app, err := tui.NewApp(&tui.Ports{Splitter: splitter, Uploader: uploader})
	if err != nil {
		return nil, err
	}
	app.WithContext(cmd.Context())
	if len(args) == 1 {
		app.WithPath(args[0])
	}
	return app, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUI(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Warnings would draw over the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
