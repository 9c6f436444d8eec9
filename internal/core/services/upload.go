package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.Uploader = (*UploadService)(nil)

// UploadService uploads every local payslip into a per-employee folder
// under a fixed remote parent folder.
//
// Every run re-scans the whole output directory and uploads every file.
// Files already uploaded by an earlier run are uploaded again.
type UploadService struct {
	store          driven.PayslipStore
	connector      driven.StorageConnector
	parentFolderID string
	runRecorder

	mu sync.Mutex
}

// NewUploadService creates an upload service. history may be nil.
func NewUploadService(
	store driven.PayslipStore,
	connector driven.StorageConnector,
	parentFolderID string,
	logs driven.RunLogWriter,
	history driven.RunHistoryStore,
) *UploadService {
	return &UploadService{
		store:          store,
		connector:      connector,
		parentFolderID: parentFolderID,
		runRecorder:    runRecorder{logs: logs, history: history, now: time.Now},
	}
}

// Pending lists the payslip files an upload would send, sorted by name.
func (s *UploadService) Pending() ([]string, error) {
	names, err := s.store.List(domain.PayslipExtension)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.store.Dir(), err)
	}
	return names, nil
}

// Upload runs one batch. When the output directory holds no payslips the
// run fails immediately, without authenticating and without a run log.
// Any later error aborts the batch: files already uploaded stay uploaded,
// the rest are skipped and the partial log is written.
func (s *UploadService) Upload(ctx context.Context) (*domain.RunReport, error) {
	report := s.start(domain.RunKindUpload, s.store.Dir())
	if !s.mu.TryLock() {
		report.Message = domain.ErrRunInProgress.Error()
		return report, domain.ErrRunInProgress
	}
	defer s.mu.Unlock()

	logger.Section("Upload")

	names, err := s.Pending()
	if err != nil {
		report.Message = err.Error()
		s.record(ctx, report)
		return report, err
	}
	if len(names) == 0 {
		report.Message = domain.ErrNoPayslips.Error()
		logger.Info("No payslips in %s", s.store.Dir())
		s.record(ctx, report)
		return report, domain.ErrNoPayslips
	}

	var runLog domain.RunLog
	runLog.Add("# Upload log - %s", report.StartedAt.Format(time.DateTime))
	runLog.Add("")
	runLog.Add("Source directory: %s", s.store.Dir())
	runLog.Add("Files found: %d", len(names))
	runLog.Add("")

	if err := s.logs.EnsureDir(); err != nil {
		err = fmt.Errorf("create log directory: %w", err)
		report.Message = err.Error()
		s.record(ctx, report)
		return report, err
	}

	if s.parentFolderID == "" {
		return s.abort(ctx, report, &runLog,
			fmt.Errorf("%w: remote parent folder is not configured", domain.ErrConfigInvalid))
	}

	client, err := s.connector.Connect(ctx)
	if err != nil {
		return s.abort(ctx, report, &runLog, fmt.Errorf("connect: %w", err))
	}

	for _, name := range names {
		if err := s.uploadOne(ctx, client, name, &runLog, report); err != nil {
			return s.abort(ctx, report, &runLog, err)
		}
	}

	runLog.Add("")
	runLog.Add("Files uploaded: %d", report.Succeeded)
	report.Success = true

	logger.Info("Upload complete: %d files, %d folders created", report.Succeeded, report.FoldersCreated)
	if err := s.finish(ctx, report, &runLog); err != nil {
		return report, err
	}
	return report, nil
}

func (s *UploadService) uploadOne(
	ctx context.Context,
	client driven.StorageClient,
	name string,
	runLog *domain.RunLog,
	report *domain.RunReport,
) error {
	key := domain.EmployeeKey(name)

	folderID, found, err := client.FindFolder(ctx, key, s.parentFolderID)
	if err != nil {
		return fmt.Errorf("find folder %s: %w", key, err)
	}
	if found {
		runLog.Add("- [FOUND] Folder for %s (ID: %s)%s", key, folderID, folderLink(client, folderID))
	} else {
		folderID, err = client.CreateFolder(ctx, key, s.parentFolderID)
		if err != nil {
			return fmt.Errorf("create folder %s: %w", key, err)
		}
		report.FoldersCreated++
		runLog.Add("- [NEW] Folder created for %s (ID: %s)%s", key, folderID, folderLink(client, folderID))
	}

	f, err := s.store.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	fileID, err := client.CreateFile(ctx, name, folderID, f)
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	logger.Debug("Uploaded %s to %s (%s)", name, key, fileID)
	runLog.Add("  -> Uploaded: %s (ID: %s)%s", name, fileID, fileLink(client, fileID))
	report.Succeeded++
	return nil
}

// folderLink and fileLink return " <url>" when client can link to the item.
func folderLink(client driven.StorageClient, id string) string {
	if l, ok := client.(driven.Linker); ok && id != "" {
		return " " + l.FolderURL(id)
	}
	return ""
}

func fileLink(client driven.StorageClient, id string) string {
	if l, ok := client.(driven.Linker); ok && id != "" {
		return " " + l.FileURL(id)
	}
	return ""
}

func (s *UploadService) abort(
	ctx context.Context, report *domain.RunReport, runLog *domain.RunLog, err error,
) (*domain.RunReport, error) {
	logger.Error("Upload aborted after %d files: %v", report.Succeeded, err)

	runLog.Add("")
	runLog.Add("[CRITICAL] Upload error: %v", err)
	report.Success = false
	report.Message = err.Error()
	if ferr := s.finish(ctx, report, runLog); ferr != nil {
		return report, errors.Join(err, ferr)
	}
	return report, err
}
