package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// mockSplitter is a mock implementation of driving.Splitter.
type mockSplitter struct {
	report *domain.RunReport
	err    error
	paths  []string
}

func (m *mockSplitter) Split(_ context.Context, path string) (*domain.RunReport, error) {
	m.paths = append(m.paths, path)
	return m.report, m.err
}

// mockUploader is a mock implementation of driving.Uploader.
type mockUploader struct {
	pending    []string
	pendingErr error
	report     *domain.RunReport
	err        error
	uploads    int
}

func (m *mockUploader) Pending() ([]string, error) {
	return m.pending, m.pendingErr
}

func (m *mockUploader) Upload(_ context.Context) (*domain.RunReport, error) {
	m.uploads++
	return m.report, m.err
}

// mockHistory is a mock implementation of driving.HistoryService.
type mockHistory struct {
	runs []domain.RunRecord
	err  error
}

func (m *mockHistory) List(_ context.Context, _ int) ([]domain.RunRecord, error) {
	return m.runs, m.err
}

func (m *mockHistory) Export(_ context.Context, _ io.Writer, _ int) error {
	return m.err
}
