// Package cli implements the payslip command line.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/auth"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// AuthManager drives the Google sign-in from the command line.
type AuthManager interface {
	Login(ctx context.Context) (*oauth2.Token, error)
	Status() (auth.Status, error)
}

// ConfigEditor reads and writes the configuration file.
type ConfigEditor interface {
	Keys() []string
	Get(key string) (any, bool)
	Set(key string, value any) error
	Save() error
	Path() string
}

// Services holds everything the commands operate on.
type Services struct {
	Settings       domain.Settings
	Config         ConfigEditor
	Splitter       driving.Splitter
	Uploader       driving.Uploader
	DryRunUploader driving.Uploader
	History        driving.HistoryService
	Auth           AuthManager
	// Close releases resources once the command finishes. May be nil.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, configDir string) (*Services, error)

var (
	bootstrap      Bootstrap
	closeServices  func() error
	settings       = domain.DefaultSettings()
	configEditor   ConfigEditor
	splitter       driving.Splitter
	uploader       driving.Uploader
	dryRunUploader driving.Uploader
	historyService driving.HistoryService
	authManager    AuthManager
)

var rootCmd = &cobra.Command{
	Use:   "payslip",
	Short: "Split payroll PDFs and file the payslips in Google Drive",
	Long: `Payslip Drive splits a monthly payroll PDF into one file per employee page,
named REF_Month_YEAR.pdf, and uploads each file into the employee's folder
in Google Drive.

Run 'payslip tui' for the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap == nil {
			return nil
		}
		svc, err := bootstrap(cmd.Context(), configDir)
		if err != nil {
			return err
		}
		SetServices(svc)
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if closeServices == nil {
			return nil
		}
		err := closeServices()
		closeServices = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.payslip)")
}

// SetBootstrap registers the function that wires services for each command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly.
func SetServices(svc *Services) {
	if svc == nil {
		return
	}
	settings = svc.Settings
	configEditor = svc.Config
	splitter = svc.Splitter
	uploader = svc.Uploader
	dryRunUploader = svc.DryRunUploader
	historyService = svc.History
	authManager = svc.Auth
	closeServices = svc.Close
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var errNotConfigured = errors.New("not configured")
