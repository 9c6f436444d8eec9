// Package status provides the status bar of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/styles"
)

// State represents what the application is doing.
type State string

const (
	StateReady     State = "ready"
	StateSplitting State = "splitting"
	StateConfirm   State = "confirm"
	StateUploading State = "uploading"
	StateError     State = "error"
)

// Busy reports whether a stage is running.
func (s State) Busy() bool {
	return s == StateSplitting || s == StateUploading
}

// Bar displays the application state and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	spinner string
	width   int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return b.styles.Status.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSplitting:
		return b.spinner + " " + b.text("Splitting...")
	case StateUploading:
		return b.spinner + " " + b.text("Uploading...")
	case StateConfirm:
		return b.styles.Prompt.Render(b.text("Confirm upload?"))
	case StateError:
		return b.styles.Error.Render(fmt.Sprintf("Error: %s", b.message))
	case StateReady:
	}
	return b.text("Ready")
}

func (b *Bar) text(fallback string) string {
	if b.message != "" {
		return b.message
	}
	return fallback
}

func (b *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case b.state == StateConfirm:
		bindings = b.keymap.ConfirmHelp()
	case b.state.Busy():
		bindings = b.keymap.BusyHelp()
	default:
		bindings = b.keymap.IdleHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the state and clears the message.
func (b *Bar) SetState(state State) {
	b.state = state
	b.message = ""
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage replaces the text shown for the current state.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetSpinner sets the rendered spinner frame shown while busy.
func (b *Bar) SetSpinner(frame string) {
	b.spinner = frame
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
