package driven

import "io"

// PayslipStore is the flat local directory holding split payslips.
type PayslipStore interface {
	// Dir returns the directory path, for display.
	Dir() string

	// EnsureDir creates the directory if missing. It is idempotent.
	EnsureDir() error

	// Create opens name for writing, replacing any existing file.
	Create(name string) (io.WriteCloser, error)

	// List returns the names of regular files directly in the directory
	// whose name ends with ext, sorted. A missing directory yields no names.
	List(ext string) ([]string, error)

	// Open opens name for reading.
	Open(name string) (io.ReadCloser, error)
}
