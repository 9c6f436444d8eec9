// Package activity provides the scrollable activity log of the TUI.
package activity

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/styles"
)

// Level selects how a line is coloured.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Log is an append-only, scrollable list of lines.
type Log struct {
	viewport viewport.Model
	styles   *styles.Styles
	lines    []string
	width    int
	height   int
}

// NewLog creates an empty activity log.
func NewLog(s *styles.Styles) *Log {
	if s == nil {
		s = styles.DefaultStyles()
	}
	l := &Log{styles: s, viewport: viewport.New(78, 10), width: 80, height: 12}
	l.refresh()
	return l
}

// Append adds text at the bottom and scrolls to it. Multi-line text is
// split into separate lines.
func (l *Log) Append(level Level, text string) {
	style := l.styles.Normal
	switch level {
	case LevelSuccess:
		style = l.styles.Success
	case LevelWarning:
		style = l.styles.Warning
	case LevelError:
		style = l.styles.Error
	case LevelInfo:
	}
	for _, line := range strings.Split(text, "\n") {
		l.lines = append(l.lines, style.Render(line))
	}
	l.refresh()
	l.viewport.GotoBottom()
}

// Clear removes every line.
func (l *Log) Clear() {
	l.lines = nil
	l.refresh()
}

// Len returns the number of lines.
func (l *Log) Len() int {
	return len(l.lines)
}

// Content returns the log as plain rendered text.
func (l *Log) Content() string {
	return strings.Join(l.lines, "\n")
}

func (l *Log) refresh() {
	if len(l.lines) == 0 {
		l.viewport.SetContent(l.styles.Muted.Render("Activity will appear here."))
		return
	}
	l.viewport.SetContent(l.Content())
}

// Update forwards scrolling messages to the viewport.
func (l *Log) Update(msg tea.Msg) (*Log, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// ScrollUp moves half a page up.
func (l *Log) ScrollUp() {
	l.viewport.HalfViewUp()
}

// ScrollDown moves half a page down.
func (l *Log) ScrollDown() {
	l.viewport.HalfViewDown()
}

// AtBottom reports whether the last line is visible.
func (l *Log) AtBottom() bool {
	return l.viewport.AtBottom()
}

// SetSize sets the outer size, border included.
func (l *Log) SetSize(width, height int) {
	l.width, l.height = width, height
	innerW := width - 4
	innerH := height - 2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 1 {
		innerH = 1
	}
	l.viewport.Width = innerW
	l.viewport.Height = innerH
	l.refresh()
}

// View renders the bordered log.
func (l *Log) View() string {
	return l.styles.LogBox.Width(l.width - 2).Render(l.viewport.View())
}
