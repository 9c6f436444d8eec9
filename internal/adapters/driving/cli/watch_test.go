package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

func TestWatchCmd_StopsWhenCancelled(t *testing.T) {
	inbox := t.TempDir()
	install(t, &Services{Splitter: &fakeSplitter{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeContext(t, ctx, "", "watch", inbox)

	require.NoError(t, err)
	assert.Contains(t, out, "Watching "+inbox)
}

func TestWatchCmd_RejectsOutputDir(t *testing.T) {
	out := t.TempDir()
	s := domain.DefaultSettings()
	s.OutputDir = out
	install(t, &Services{Settings: s, Splitter: &fakeSplitter{}})

	_, err := execute(t, "", "watch", out)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWatchCmd_MissingDir(t *testing.T) {
	install(t, &Services{Splitter: &fakeSplitter{}})

	_, err := execute(t, "", "watch", filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	install(t, &Services{})

	_, err := execute(t, "", "watch", t.TempDir())

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestSameDir(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, sameDir(dir, dir+string(filepath.Separator)))
	assert.True(t, sameDir("out", "./out"))
	assert.False(t, sameDir(dir, filepath.Join(dir, "inbox")))
}
