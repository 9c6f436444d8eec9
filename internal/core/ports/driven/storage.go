package driven

import (
	"context"
	"io"
)

// StorageConnector authenticates against remote storage.
type StorageConnector interface {
	// Connect returns a client ready for use. It may prompt the user
	// to authorise the application.
	Connect(ctx context.Context) (StorageClient, error)
}

// StorageClient is the narrow surface of remote storage used by uploads.
type StorageClient interface {
	// FindFolder looks up a non-trashed folder called name directly under parentID.
	FindFolder(ctx context.Context, name, parentID string) (id string, found bool, err error)

	// CreateFolder creates a folder called name under parentID.
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// CreateFile uploads content as a new PDF file under parentID.
	// Existing files with the same name are not replaced.
	CreateFile(ctx context.Context, name, parentID string, content io.Reader) (string, error)
}

// Linker is implemented by clients whose folders and files can be opened
// in a browser. Upload logs include the links when the client provides them.
type Linker interface {
	FolderURL(id string) string
	FileURL(id string) string
}
