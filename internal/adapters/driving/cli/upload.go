package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload payslips to the employees' Drive folders",
	Long: `Uploads every PDF in the output directory to Google Drive. Each file goes
into a folder named after the employee reference (the part of the file name
before the first underscore), created under drive.parent_folder_id when it
does not exist yet.

The first error stops the batch. Files are never deduplicated: uploading the
same payslip twice stores it twice.

Use --dry-run to rehearse the batch against an in-memory store.`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

// Flags for upload.
var (
	uploadYes    bool
	uploadDryRun bool
)

// isTerminal reports whether stdin is interactive.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	uploadCmd.Flags().BoolVarP(&uploadYes, "yes", "y", false, "Upload without asking for confirmation")
	uploadCmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "Run against an in-memory store instead of Drive")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	svc := uploader
	if uploadDryRun {
		svc = dryRunUploader
	}
	if svc == nil {
		return fmt.Errorf("upload service %w", errNotConfigured)
	}

	pending, err := svc.Pending()
	if err != nil {
		return err
	}
	// An empty directory goes straight to the service, which reports it.
	if len(pending) > 0 && !uploadYes && !uploadDryRun {
		ok, err := confirm(cmd, fmt.Sprintf("Upload %d files to Google Drive?", len(pending)))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Upload cancelled.")
			return nil
		}
	}

	return doUpload(cmd, svc, len(pending))
}

func doUpload(cmd *cobra.Command, svc driving.Uploader, count int) error {
	if uploadDryRun {
		cmd.Printf("Dry run: uploading %d files to an in-memory store...\n", count)
	} else {
		cmd.Printf("Uploading %d files...\n", count)
	}

	report, err := svc.Upload(cmd.Context())
	cmd.Println(report.Summary())
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}

// confirm asks a yes/no question. Without a terminal it refuses, so that
// scripts must pass --yes explicitly.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if !isTerminal() {
		return false, errors.New("stdin is not a terminal: pass --yes to upload without confirmation")
	}

	cmd.Printf("%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "o", "oui":
		return true, nil
	default:
		return false, nil
	}
}
