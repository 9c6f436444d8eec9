// Package drive stores payslips in Google Drive, one folder per employee
// under a configured parent folder.
package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/payslip-drive/internal/connectors/google"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.StorageClient = (*Client)(nil)
	_ driven.Linker        = (*Client)(nil)
)

// Client performs folder lookups, folder creation and file uploads.
// Every request waits on the rate limiter first. Failed requests are
// returned as is, without retry.
type Client struct {
	svc     *drive.Service
	limiter *google.RateLimiter
}

// NewClient creates a client over an authenticated Drive service.
func NewClient(svc *drive.Service, limiter *google.RateLimiter) *Client {
	if limiter == nil {
		limiter = google.NewRateLimiter()
	}
	return &Client{svc: svc, limiter: limiter}
}

// FindFolder returns the ID of the first non-trashed folder called name
// directly under parentID.
func (c *Client) FindFolder(ctx context.Context, name, parentID string) (string, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false, err
	}

	res, err := c.svc.Files.List().
		Q(FolderQuery(name, parentID)).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", false, apiError("list folders", parentID, err)
	}
	if len(res.Files) == 0 {
		return "", false, nil
	}
	if len(res.Files) > 1 {
		logger.Debug("%d folders named %q under %s, using %s", len(res.Files), name, parentID, res.Files[0].Id)
	}
	return res.Files[0].Id, true, nil
}

// CreateFolder creates a folder called name under parentID.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	folder := &drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{parentID},
	}
	created, err := c.svc.Files.Create(folder).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", apiError("create folder", parentID, err)
	}
	return created.Id, nil
}

// CreateFile uploads content as a new PDF under parentID. Drive allows
// several files with the same name in a folder; nothing is replaced.
func (c *Client) CreateFile(ctx context.Context, name, parentID string, content io.Reader) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	file := &drive.File{
		Name:    name,
		Parents: []string{parentID},
	}
	created, err := c.svc.Files.Create(file).
		Media(content, googleapi.ContentType(MimeTypePDF)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", apiError("create file", parentID, err)
	}
	return created.Id, nil
}

// apiError wraps a Drive API failure. A parent folder that Drive reports as
// missing or forbidden is named in the message, since a wrong
// drive.parent_folder_id is the usual cause.
func apiError(op, parentID string, err error) error {
	err = google.WrapError(err)
	switch {
	case google.IsNotFound(err), google.IsForbidden(err):
		return fmt.Errorf("%s: folder %s missing or not shared with this account: %w", op, parentID, err)
	case google.IsRateLimited(err):
		logger.Warn("Drive rate limit reached during %s", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// FolderURL implements driven.Linker.
func (c *Client) FolderURL(id string) string { return FolderURL(id) }

// FileURL implements driven.Linker.
func (c *Client) FileURL(id string) string { return FileURL(id) }
