package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
)

const (
	pageM1001 = "Reference Salarie: M1001 Periode de paie : Octobre 2025"
	pageM1002 = "reference salarie m1002 net a payer periode de paie octobre 2025"
	pageBlank = "Page de garde sans marqueur"
)

func newTestSplitService(doc *fakeDocument) (*SplitService, *fakePayslipStore, *fakeLogWriter, *memory.RunHistoryStore) {
	store := newFakePayslipStore()
	logs := newFakeLogWriter()
	history := memory.NewRunHistoryStore()
	svc := NewSplitService(&fakeReader{doc: doc}, identityNormaliser{}, store, logs, history)
	svc.now = fixedClock()
	return svc, store, logs, history
}

func TestSplitService_ImplementsInterface(t *testing.T) {
	var _ driving.Splitter = (*SplitService)(nil)
}

func TestSplitService_Split_MatchedAndUnmatched(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001, pageBlank, pageM1002}}
	svc, store, logs, _ := newTestSplitService(doc)

	report, err := svc.Split(context.Background(), "paie.pdf")

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "logs/log_eclatement_2025-10-31.md", report.LogPath)
	assert.True(t, doc.closed)
	assert.Equal(t, 1, store.ensured)

	assert.Equal(t, []byte("page-1"), store.files["M1001_Octobre_2025.pdf"])
	assert.Equal(t, []byte("page-3"), store.files["M1002_Octobre_2025.pdf"])
	assert.Len(t, store.files, 2)

	content := logs.written[report.LogPath]
	assert.Contains(t, content, "Source file: paie.pdf")
	assert.Contains(t, content, "Pages detected: 3")
	assert.Contains(t, content, "- [OK] Page 1: M1001_Octobre_2025.pdf")
	assert.Contains(t, content, "- [FAIL] Page 2: no reference or pay period found.")
	assert.Contains(t, content, "page de garde sans marqueur")
	assert.Contains(t, content, "- [OK] Page 3: M1002_Octobre_2025.pdf")
	assert.Contains(t, content, "Succeeded: 2")
	assert.Contains(t, content, "Failed: 1")

	summary := report.Summary()
	assert.Contains(t, summary, "Succeeded: 2")
	assert.Contains(t, summary, "Failed: 1")
	assert.Contains(t, summary, report.LogPath)
}

func TestSplitService_Split_CollisionKeepsLaterPage(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001, pageM1001}}
	svc, store, _, _ := newTestSplitService(doc)

	report, err := svc.Split(context.Background(), "paie.pdf")

	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
	require.Len(t, store.files, 1)
	assert.Equal(t, []byte("page-2"), store.files["M1001_Octobre_2025.pdf"])
}

func TestSplitService_Split_EmptyDocumentIsFatal(t *testing.T) {
	svc, store, logs, _ := newTestSplitService(&fakeDocument{})

	report, err := svc.Split(context.Background(), "empty.pdf")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCritical))
	assert.True(t, errors.Is(err, domain.ErrEmptyDocument))
	require.NotNil(t, report)
	assert.False(t, report.Success)
	assert.Empty(t, store.files)

	content := logs.written[report.LogPath]
	assert.Contains(t, content, "[CRITICAL]")
	assert.NotContains(t, content, "Page ")
}

func TestSplitService_Split_UnreadableDocumentIsFatal(t *testing.T) {
	store := newFakePayslipStore()
	logs := newFakeLogWriter()
	svc := NewSplitService(&fakeReader{err: errors.New("not a PDF")}, identityNormaliser{}, store, logs, nil)
	svc.now = fixedClock()

	report, err := svc.Split(context.Background(), "broken.pdf")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCritical))
	assert.False(t, report.Success)
	assert.Contains(t, report.Message, "not a PDF")
	assert.Equal(t, 0, report.Succeeded+report.Failed)

	content := logs.written[report.LogPath]
	assert.Contains(t, content, "[CRITICAL]")
	assert.NotContains(t, content, "- [")
}

func TestSplitService_Split_TextErrorCountsAsUnmatched(t *testing.T) {
	doc := &fakeDocument{
		pages:    []string{pageM1001, pageM1002},
		textErrs: map[int]error{2: errors.New("bad content stream")},
	}
	svc, store, _, _ := newTestSplitService(doc)

	report, err := svc.Split(context.Background(), "paie.pdf")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, store.files, 1)
}

func TestSplitService_Split_WriteErrorIsPerPage(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001, pageM1002}}
	svc, store, logs, _ := newTestSplitService(doc)
	store.createErr["M1001_Octobre_2025.pdf"] = errors.New("disk full")

	report, err := svc.Split(context.Background(), "paie.pdf")

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, logs.written[report.LogPath], "disk full")
}

func TestSplitService_Split_LogWriteFailure(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001}}
	svc, _, logs, _ := newTestSplitService(doc)
	logs.writeErr = errors.New("read-only file system")

	report, err := svc.Split(context.Background(), "paie.pdf")

	require.Error(t, err)
	assert.False(t, report.Success)
	assert.Empty(t, report.LogPath)
	assert.Equal(t, 1, report.Succeeded)
}

func TestSplitService_Split_RecordsHistory(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001, pageBlank}}
	svc, _, _, history := newTestSplitService(doc)

	report, err := svc.Split(context.Background(), "paie.pdf")
	require.NoError(t, err)

	records, err := history.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, report.ID, records[0].ID)
	assert.Equal(t, domain.RunKindSplit, records[0].Kind)
	assert.Equal(t, "paie.pdf", records[0].Source)
	assert.Equal(t, 1, records[0].Succeeded)
	assert.Equal(t, 1, records[0].Failed)
}

func TestSplitService_Split_IgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := &fakeDocument{pages: []string{pageM1001, pageM1002}}
	svc, store, _, _ := newTestSplitService(doc)

	report, err := svc.Split(ctx, "paie.pdf")

	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
	assert.Len(t, store.files, 2)
}

func TestSplitService_Split_ReportIDsAreUnique(t *testing.T) {
	doc := &fakeDocument{pages: []string{pageM1001}}
	svc, _, _, _ := newTestSplitService(doc)

	first, err := svc.Split(context.Background(), "paie.pdf")
	require.NoError(t, err)
	second, err := svc.Split(context.Background(), "paie.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.LogPath, second.LogPath)
	assert.False(t, strings.Contains(first.ID, " "))
}
