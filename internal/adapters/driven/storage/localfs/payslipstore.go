// Package localfs keeps payslips and run logs in plain local directories.
package localfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure PayslipStore implements the interface.
var _ driven.PayslipStore = (*PayslipStore)(nil)

// PayslipStore is a flat directory of payslip files.
type PayslipStore struct {
	dir string
}

// NewPayslipStore creates a store rooted at dir. The directory is created
// lazily by EnsureDir.
func NewPayslipStore(dir string) *PayslipStore {
	return &PayslipStore{dir: dir}
}

// Dir returns the directory path.
func (s *PayslipStore) Dir() string {
	return s.dir
}

// EnsureDir creates the directory and any missing parents.
func (s *PayslipStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	return nil
}

// Create opens name for writing, truncating any existing file.
func (s *PayslipStore) Create(name string) (io.WriteCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return f, nil
}

// List returns regular files directly in the directory whose name ends
// with ext. The match is case-sensitive and subdirectories are ignored.
func (s *PayslipStore) List(ext string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Open opens name for reading.
func (s *PayslipStore) Open(name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// path rejects names that would escape the directory.
func (s *PayslipStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid payslip name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
