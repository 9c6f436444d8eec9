// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Split starts splitting the document named in the path field.
	Split key.Binding

	// Upload asks to upload the split payslips.
	Upload key.Binding

	// Confirm and Deny answer the upload question.
	Confirm key.Binding
	Deny    key.Binding

	// ScrollUp and ScrollDown move through the activity log.
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// ClearLog empties the activity log.
	ClearLog key.Binding

	// Quit exits the application.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Split: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "split"),
		),
		Upload: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "upload"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "o", "O"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
			key.WithHelp("↑/pgup", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
			key.WithHelp("↓/pgdn", "scroll"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// IdleHelp returns the hints shown while nothing runs.
func (k *KeyMap) IdleHelp() []key.Binding {
	return []key.Binding{k.Split, k.Upload, k.ScrollUp, k.ClearLog, k.Quit}
}

// ConfirmHelp returns the hints shown while the upload question is open.
func (k *KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Deny}
}

// BusyHelp returns the hints shown while a stage runs.
func (k *KeyMap) BusyHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.Quit}
}
