package domain

import (
	"fmt"
	"strings"
)

// RunLog is the ordered, append-only log of a single run.
// It is written to disk once, when the run ends.
type RunLog struct {
	lines []string
}

// Add appends a formatted line.
func (l *RunLog) Add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the lines recorded so far.
func (l *RunLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of lines.
func (l *RunLog) Len() int {
	return len(l.lines)
}

// String renders the log as newline-separated text.
func (l *RunLog) String() string {
	return strings.Join(l.lines, "\n") + "\n"
}
