package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure StorageClient implements the interfaces.
var (
	_ driven.StorageClient    = (*StorageClient)(nil)
	_ driven.StorageConnector = (*StorageClient)(nil)
)

// StoredFile is a file held by StorageClient.
type StoredFile struct {
	ID       string
	Name     string
	ParentID string
	Content  []byte
}

// StorageClient is an in-memory remote storage. It backs dry-run uploads
// and tests. Like the real service, it never replaces files that share a
// name: every CreateFile adds a new file.
type StorageClient struct {
	mu      sync.Mutex
	nextID  int
	folders map[string]string // parentID + "/" + name -> folder ID
	files   []StoredFile
	calls   int
}

// NewStorageClient creates an empty in-memory storage.
func NewStorageClient() *StorageClient {
	return &StorageClient{
		folders: make(map[string]string),
	}
}

// Connect returns the client itself.
func (c *StorageClient) Connect(_ context.Context) (driven.StorageClient, error) {
	return c, nil
}

// AddFolder seeds an existing folder and returns its ID.
func (c *StorageClient) AddFolder(name, parentID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addFolder(name, parentID)
}

// FindFolder implements driven.StorageClient.
func (c *StorageClient) FindFolder(ctx context.Context, name, parentID string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	id, ok := c.folders[folderKey(name, parentID)]
	return id, ok, nil
}

// CreateFolder implements driven.StorageClient.
func (c *StorageClient) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.addFolder(name, parentID), nil
}

// CreateFile implements driven.StorageClient.
func (c *StorageClient) CreateFile(ctx context.Context, name, parentID string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	id := c.newID("file")
	c.files = append(c.files, StoredFile{ID: id, Name: name, ParentID: parentID, Content: data})
	return id, nil
}

// Files returns the uploaded files in upload order.
func (c *StorageClient) Files() []StoredFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StoredFile, len(c.files))
	copy(out, c.files)
	return out
}

// FolderCount returns the number of folders.
func (c *StorageClient) FolderCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.folders)
}

// Calls returns the number of remote operations performed.
func (c *StorageClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *StorageClient) addFolder(name, parentID string) string {
	id := c.newID("folder")
	c.folders[folderKey(name, parentID)] = id
	return id
}

func (c *StorageClient) newID(kind string) string {
	c.nextID++
	return fmt.Sprintf("mem-%s-%d", kind, c.nextID)
}

func folderKey(name, parentID string) string {
	return parentID + "/" + name
}
