package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Google Drive authorisation",
	Long: `Sign in to Google Drive and inspect the stored token.

The OAuth client descriptor (credentials.json) must be downloaded from the
Google Cloud console first and placed in the configuration directory, or
pointed to with 'payslip config set auth.credentials_file <path>'.

An upload signs in automatically when no usable token is stored.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in through the browser and store the token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored authorisation",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return fmt.Errorf("authentication %w", errNotConfigured)
	}

	cmd.Println("Opening the browser for Google sign-in...")
	if _, err := authManager.Login(cmd.Context()); err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}
	cmd.Printf("Signed in. Token saved to %s\n", settings.TokenFile)
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return fmt.Errorf("authentication %w", errNotConfigured)
	}

	st, err := authManager.Status()
	if err != nil {
		return fmt.Errorf("failed to read authorisation: %w", err)
	}

	cmd.Printf("Credentials: %s (%s)\n", st.CredentialsFile, presence(st.CredentialsPresent))
	cmd.Printf("Token:       %s (%s)\n", st.TokenFile, presence(st.TokenPresent))

	switch {
	case !st.TokenPresent:
		cmd.Println("Status:      not signed in. Run 'payslip auth login'.")
	case st.Valid:
		cmd.Printf("Status:      valid until %s\n", st.Expiry.Local().Format(time.DateTime))
	case st.Refreshable:
		cmd.Println("Status:      expired, will refresh on next upload")
	default:
		cmd.Println("Status:      expired. Run 'payslip auth login'.")
	}
	return nil
}

func presence(ok bool) string {
	if ok {
		return "found"
	}
	return "missing"
}
