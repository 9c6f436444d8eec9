package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
	Long: `Show or change the settings stored in config.toml.

Keys:
  output_dir                Directory receiving the split payslips
  log_dir                   Directory receiving the run logs
  drive.parent_folder_id    Drive folder holding one folder per employee
  auth.credentials_file     OAuth client descriptor (credentials.json)
  auth.token_file           Stored OAuth token (token.json)
  history.enabled           Record runs in the history database
  history.data_dir          Directory of the history database
  watch.debounce_seconds    Quiet period before a watched file is split`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configEditor != nil {
		cmd.Printf("Config file: %s\n\n", configEditor.Path())
	}

	parent := settings.DriveParentFolderID
	if parent == "" {
		parent = "(not set)"
	}

	cmd.Printf("%-24s %s\n", file.KeyOutputDir, settings.OutputDir)
	cmd.Printf("%-24s %s\n", file.KeyLogDir, settings.LogDir)
	cmd.Printf("%-24s %s\n", file.KeyDriveParent, parent)
	cmd.Printf("%-24s %s\n", file.KeyCredentialsFile, settings.CredentialsFile)
	cmd.Printf("%-24s %s\n", file.KeyTokenFile, settings.TokenFile)
	cmd.Printf("%-24s %t\n", file.KeyHistoryEnabled, settings.HistoryEnabled)
	cmd.Printf("%-24s %s\n", file.KeyHistoryDataDir, settings.HistoryDir)
	cmd.Printf("%-24s %d\n", file.KeyWatchDebounce, int(settings.WatchDebounce.Seconds()))

	if err := settings.ValidateForUpload(); err != nil {
		cmd.Printf("\nWarning: %v\n", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configEditor == nil {
		return fmt.Errorf("config %w", errNotConfigured)
	}

	key, raw := args[0], args[1]
	value, err := file.ParseValue(key, raw)
	if err != nil {
		return err
	}
	if err := configEditor.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configEditor.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("%s = %v\n", key, value)
	return nil
}
