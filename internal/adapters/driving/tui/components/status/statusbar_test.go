package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	b := NewBar(nil, nil)

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 80, b.Width())
}

func TestState_Busy(t *testing.T) {
	assert.True(t, StateSplitting.Busy())
	assert.True(t, StateUploading.Busy())
	assert.False(t, StateReady.Busy())
	assert.False(t, StateConfirm.Busy())
	assert.False(t, StateError.Busy())
}

func TestBar_ViewPerState(t *testing.T) {
	tests := []struct {
		state    State
		message  string
		contains []string
	}{
		{StateReady, "", []string{"Ready", "enter: split", "ctrl+u: upload"}},
		{StateSplitting, "", []string{"Splitting...", "ctrl+c: quit"}},
		{StateUploading, "", []string{"Uploading..."}},
		{StateConfirm, "Upload 3 files?", []string{"Upload 3 files?", "y: yes", "n: no"}},
		{StateError, "boom", []string{"Error: boom"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			b := NewBar(nil, nil)
			b.SetWidth(160)
			b.SetState(tt.state)
			b.SetMessage(tt.message)

			view := b.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestBar_SetStateClearsMessage(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetMessage("old")

	b.SetState(StateSplitting)

	assert.Empty(t, b.Message())
}

func TestBar_SpinnerShownWhileBusy(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(160)
	b.SetSpinner("@@")

	b.SetState(StateSplitting)
	assert.Contains(t, b.View(), "@@")

	b.SetState(StateReady)
	assert.NotContains(t, b.View(), "@@")
}
