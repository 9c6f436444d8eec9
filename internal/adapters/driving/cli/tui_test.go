package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui [payroll.pdf]", tuiCmd.Use)
}

func TestNewTUI_RequiresServices(t *testing.T) {
	install(t, &Services{})

	_, err := newTUI(tuiCmd, nil)

	assert.ErrorIs(t, err, tui.ErrMissingSplitter)
}

func TestNewTUI_PrefillsPath(t *testing.T) {
	install(t, &Services{Splitter: &fakeSplitter{}, Uploader: &fakeUploader{}})

	app, err := newTUI(tuiCmd, []string{"paie.pdf"})

	require.NoError(t, err)
	require.NotNil(t, app)
	app.SetDimensions(100, 40)
	assert.Contains(t, app.View(), "paie.pdf")
}

func TestTUICmd_CreateError(t *testing.T) {
	install(t, &Services{})

	_, err := execute(t, "", "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}
