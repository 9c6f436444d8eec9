// Command payslip splits payroll PDFs into payslips and files them in
// Google Drive.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/auth"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/config/file"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/pdfdoc"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/storage/localfs"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/cli"
	"github.com/custodia-labs/payslip-drive/internal/connectors/google/drive"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/core/services"
	"github.com/custodia-labs/payslip-drive/internal/logger"
	"github.com/custodia-labs/payslip-drive/internal/normalisers/text"
)

// dryRunParent is the parent folder ID used when none is configured.
const dryRunParent = "dry-run-root"

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(_ context.Context, configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Config %s: output %s, logs %s", cfg.Path(), settings.OutputDir, settings.LogDir)

	history, err := openHistory(settings.HistoryEnabled, settings.HistoryDir)
	if err != nil {
		return nil, err
	}

	payslips := localfs.NewPayslipStore(settings.OutputDir)
	logs := localfs.NewRunLogWriter(settings.LogDir)

	authenticator := auth.NewGoogleAuthenticator(
		settings.CredentialsFile,
		settings.TokenFile,
		auth.WithNotify(func(url string) {
			fmt.Fprintf(os.Stderr, "If the browser does not open, visit:\n%s\n", url)
		}),
		// Without a terminal (MCP over stdio, cron) nobody can complete the
		// browser consent, so uploads fail fast instead of waiting for it.
		auth.WithInteractive(term.IsTerminal(int(os.Stdin.Fd()))),
	)

	dryParent := settings.DriveParentFolderID
	if dryParent == "" {
		dryParent = dryRunParent
	}

	return &cli.Services{
		Settings: settings,
		Config:   cfg,
		Splitter: services.NewSplitService(pdfdoc.NewReader(), text.New(), payslips, logs, history),
		Uploader: services.NewUploadService(
			payslips, drive.NewConnector(authenticator), settings.DriveParentFolderID, logs, history,
		),
		DryRunUploader: services.NewUploadService(
			payslips,
			memory.NewStorageClient(),
			dryParent,
			localfs.NewRunLogWriter(filepath.Join(settings.LogDir, "dry-run")),
			nil,
		),
		History: services.NewHistoryService(history),
		Auth:    authenticator,
		Close:   history.Close,
	}, nil
}

// openHistory returns the SQLite run history, or a throwaway in-memory
// one when history is disabled.
func openHistory(enabled bool, dir string) (driven.RunHistoryStore, error) {
	if !enabled {
		return memory.NewRunHistoryStore(), nil
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}
