package activity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog_Empty(t *testing.T) {
	l := NewLog(nil)

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
	assert.Contains(t, l.View(), "Activity will appear here.")
}

func TestLog_AppendSplitsLines(t *testing.T) {
	l := NewLog(nil)

	l.Append(LevelInfo, "Split complete.\nSucceeded: 2\nFailed: 0")
	l.Append(LevelError, "boom")

	assert.Equal(t, 4, l.Len())
	assert.Contains(t, l.Content(), "Succeeded: 2")
	assert.Contains(t, l.Content(), "boom")
}

func TestLog_FollowsBottom(t *testing.T) {
	l := NewLog(nil)
	l.SetSize(60, 5)

	for i := 0; i < 50; i++ {
		l.Append(LevelInfo, fmt.Sprintf("line %d", i))
	}

	assert.True(t, l.AtBottom())
	assert.Contains(t, l.View(), "line 49")

	l.ScrollUp()
	assert.False(t, l.AtBottom())

	for i := 0; i < 20; i++ {
		l.ScrollDown()
	}
	assert.True(t, l.AtBottom())
}

func TestLog_Clear(t *testing.T) {
	l := NewLog(nil)
	l.Append(LevelSuccess, "ok")

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Contains(t, l.View(), "Activity will appear here.")
}

func TestLog_SetSizeMinimums(t *testing.T) {
	l := NewLog(nil)

	l.SetSize(2, 1)

	assert.Equal(t, 10, l.viewport.Width)
	assert.Equal(t, 1, l.viewport.Height)
}
