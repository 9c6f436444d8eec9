package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// --- Fakes shared by split and upload tests ---

// fakeDocument is a document whose page N writes "page-N".
type fakeDocument struct {
	pages    []string
	textErrs map[int]error
	closed   bool
}

func (d *fakeDocument) PageCount() int { return len(d.pages) }

func (d *fakeDocument) PageText(n int) (string, error) {
	if err := d.textErrs[n]; err != nil {
		return "", err
	}
	return d.pages[n-1], nil
}

func (d *fakeDocument) WritePage(n int, w io.Writer) error {
	_, err := io.WriteString(w, "page-"+string(rune('0'+n)))
	return err
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

// fakeReader returns doc or err for every path.
type fakeReader struct {
	doc    *fakeDocument
	err    error
	opened []string
}

func (r *fakeReader) Open(path string) (driven.Document, error) {
	r.opened = append(r.opened, path)
	if r.err != nil {
		return nil, r.err
	}
	return r.doc, nil
}

// identityNormaliser lowercases only, enough for ASCII fixtures.
type identityNormaliser struct{}

func (identityNormaliser) Normalise(raw string) string { return strings.ToLower(raw) }

// fakePayslipStore keeps files in memory.
type fakePayslipStore struct {
	files     map[string][]byte
	createErr map[string]error
	ensured   int
}

func newFakePayslipStore() *fakePayslipStore {
	return &fakePayslipStore{files: map[string][]byte{}, createErr: map[string]error{}}
}

func (s *fakePayslipStore) Dir() string { return "output_bulletins" }

func (s *fakePayslipStore) EnsureDir() error {
	s.ensured++
	return nil
}

func (s *fakePayslipStore) Create(name string) (io.WriteCloser, error) {
	if err := s.createErr[name]; err != nil {
		return nil, err
	}
	return &memFile{name: name, store: s}, nil
}

func (s *fakePayslipStore) List(ext string) ([]string, error) {
	var names []string
	for name := range s.files {
		if strings.HasSuffix(name, ext) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *fakePayslipStore) Open(name string) (io.ReadCloser, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type memFile struct {
	bytes.Buffer
	name  string
	store *fakePayslipStore
}

func (f *memFile) Close() error {
	f.store.files[f.name] = f.Bytes()
	return nil
}

// fakeLogWriter records every log written.
type fakeLogWriter struct {
	written  map[string]string
	writeErr error
}

func newFakeLogWriter() *fakeLogWriter {
	return &fakeLogWriter{written: map[string]string{}}
}

func (w *fakeLogWriter) EnsureDir() error { return nil }

func (w *fakeLogWriter) Write(kind domain.RunKind, day time.Time, content string) (string, error) {
	if w.writeErr != nil {
		return "", w.writeErr
	}
	path := "logs/" + domain.LogFileName(kind, day)
	w.written[path] = content
	return path, nil
}

// failingConnector fails to connect.
type failingConnector struct {
	err   error
	calls int
}

func (c *failingConnector) Connect(_ context.Context) (driven.StorageClient, error) {
	c.calls++
	return nil, c.err
}

// flakyClient wraps a client and fails CreateFile for one file name.
type flakyClient struct {
	driven.StorageClient
	failOn string
}

func (c *flakyClient) CreateFile(ctx context.Context, name, parentID string, content io.Reader) (string, error) {
	if name == c.failOn {
		return "", errors.New("quota exceeded")
	}
	return c.StorageClient.CreateFile(ctx, name, parentID, content)
}

type flakyConnector struct {
	client *flakyClient
}

func (c *flakyConnector) Connect(_ context.Context) (driven.StorageClient, error) {
	return c.client, nil
}

// linkingClient wraps a client and links folders and files like Drive does.
type linkingClient struct {
	driven.StorageClient
}

func (linkingClient) FolderURL(id string) string { return "https://drive.test/folders/" + id }
func (linkingClient) FileURL(id string) string   { return "https://drive.test/file/" + id }

type linkingConnector struct {
	client linkingClient
}

func (c linkingConnector) Connect(_ context.Context) (driven.StorageClient, error) {
	return c.client, nil
}

func fixedClock() func() time.Time {
	t := time.Date(2025, time.October, 31, 14, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}
