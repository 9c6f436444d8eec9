package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Split.Keys(), "enter")
	assert.Contains(t, km.Upload.Keys(), "ctrl+u")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Deny.Keys(), "esc")
}

func TestKeyMap_MatchesMessages(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"enter splits", tea.KeyMsg{Type: tea.KeyEnter}, km.Split},
		{"ctrl+u uploads", tea.KeyMsg{Type: tea.KeyCtrlU}, km.Upload},
		{"y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, km.Confirm},
		{"o confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}, km.Confirm},
		{"n denies", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, km.Deny},
		{"esc denies", tea.KeyMsg{Type: tea.KeyEsc}, km.Deny},
		{"pgup scrolls", tea.KeyMsg{Type: tea.KeyPgUp}, km.ScrollUp},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_ConfirmDoesNotMatchOtherLetters(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, km.Confirm))
}

func TestKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.IdleHelp(), 5)
	assert.Len(t, km.ConfirmHelp(), 2)
	assert.Len(t, km.BusyHelp(), 2)
	for _, b := range km.IdleHelp() {
		assert.NotEmpty(t, b.Help().Desc)
	}
}
