package file

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/custodia-labs/payslip-drive/internal/connectors/google/drive"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyOutputDir       = "output_dir"
	KeyLogDir          = "log_dir"
	KeyDriveParent     = "drive.parent_folder_id"
	KeyCredentialsFile = "auth.credentials_file"
	KeyTokenFile       = "auth.token_file"
	KeyHistoryEnabled  = "history.enabled"
	KeyHistoryDataDir  = "history.data_dir"
	KeyWatchDebounce   = "watch.debounce_seconds"
)

// keyKind is the TOML type stored under a key.
type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
)

// knownKeys lists every supported key with its type.
var knownKeys = map[string]keyKind{
	KeyOutputDir:       kindString,
	KeyLogDir:          kindString,
	KeyDriveParent:     kindString,
	KeyCredentialsFile: kindString,
	KeyTokenFile:       kindString,
	KeyHistoryEnabled:  kindBool,
	KeyHistoryDataDir:  kindString,
	KeyWatchDebounce:   kindInt,
}

// ParseValue converts a command-line value to the type stored under key.
func ParseValue(key, raw string) (any, error) {
	kind, ok := knownKeys[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}

	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case kindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
		}
		return n, nil
	default:
		return raw, nil
	}
}

// Settings resolves the stored configuration into domain.Settings.
func (s *ConfigStore) Settings() domain.Settings {
	return ResolveSettings(s, s.dir)
}

// ResolveSettings reads store into domain.Settings. Relative credential,
// token and history paths are taken relative to dir; output and log
// directories stay relative to the working directory.
func ResolveSettings(store driven.ConfigStore, dir string) domain.Settings {
	settings := domain.DefaultSettings()

	if v := store.GetString(KeyOutputDir); v != "" {
		settings.OutputDir = v
	}
	if v := store.GetString(KeyLogDir); v != "" {
		settings.LogDir = v
	}
	// Accept a folder URL pasted from the browser as well as a bare ID.
	settings.DriveParentFolderID = drive.ParseFolderID(store.GetString(KeyDriveParent))

	settings.CredentialsFile = inDir(dir, store.GetString(KeyCredentialsFile), "credentials.json")
	settings.TokenFile = inDir(dir, store.GetString(KeyTokenFile), "token.json")
	settings.HistoryDir = inDir(dir, store.GetString(KeyHistoryDataDir), "data")

	if _, ok := store.Get(KeyHistoryEnabled); ok {
		settings.HistoryEnabled = store.GetBool(KeyHistoryEnabled)
	}
	if _, ok := store.Get(KeyWatchDebounce); ok {
		settings.WatchDebounce = time.Duration(store.GetInt(KeyWatchDebounce)) * time.Second
	}

	return settings
}

func inDir(dir, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(dir, value)
}
