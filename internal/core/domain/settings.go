package domain

import (
	"fmt"
	"time"
)

// Default settings values.
const (
	DefaultOutputDir     = "output_bulletins"
	DefaultLogDir        = "logs"
	DefaultWatchDebounce = 2 * time.Second
)

// Settings is the immutable configuration handed to every component at start-up.
type Settings struct {
	// OutputDir receives one PDF per matched page.
	OutputDir string

	// LogDir receives the dated run logs.
	LogDir string

	// DriveParentFolderID is the remote folder holding one folder per employee.
	DriveParentFolderID string

	// CredentialsFile is the OAuth client descriptor. It must pre-exist.
	CredentialsFile string

	// TokenFile caches the OAuth token between runs.
	TokenFile string

	// HistoryEnabled turns on persistent run history.
	HistoryEnabled bool

	// HistoryDir holds the run history database.
	HistoryDir string

	// WatchDebounce is the quiet period before a watched file is split.
	WatchDebounce time.Duration
}

// DefaultSettings returns settings with the local defaults applied.
// Remote storage and credentials remain unset.
func DefaultSettings() Settings {
	return Settings{
		OutputDir:      DefaultOutputDir,
		LogDir:         DefaultLogDir,
		HistoryEnabled: true,
		WatchDebounce:  DefaultWatchDebounce,
	}
}

// Validate checks the settings every stage needs.
func (s Settings) Validate() error {
	if s.OutputDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrConfigInvalid)
	}
	if s.LogDir == "" {
		return fmt.Errorf("%w: log directory is empty", ErrConfigInvalid)
	}
	return nil
}

// ValidateForUpload additionally checks the settings the upload stage needs.
func (s Settings) ValidateForUpload() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.DriveParentFolderID == "" {
		return fmt.Errorf("%w: drive.parent_folder_id is not set", ErrConfigInvalid)
	}
	if s.CredentialsFile == "" || s.TokenFile == "" {
		return fmt.Errorf("%w: auth.credentials_file and auth.token_file are required", ErrConfigInvalid)
	}
	return nil
}
