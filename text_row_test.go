package vlist

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestTextRowHeight(t *testing.T) {
	t.Parallel()

	row := NewTextRow("hello world")
	assert.Equal(t, 1, row.Height(20))
	assert.Equal(t, 2, row.Height(7))

	row.SetPrefix("#1 ", tcell.StyleDefault)
	assert.Equal(t, 2, row.Height(10))

	row.SetBorderPadding(0, 1, 1, 1)
	assert.Equal(t, 3, row.Height(12))

	row.SetText("hi")
	assert.Equal(t, 2, row.Height(12))
}

func TestTextRowDraw(t *testing.T) {
	t.Parallel()

	screen := NewCaptureScreen(12, 3)
	row := NewTextRow("hello world")
	row.SetPrefix("#1 ", tcell.StyleDefault)
	row.SetBorderPadding(0, 1, 1, 1)
	row.SetRect(0, 0, 12, row.Height(12))
	row.Draw(screen)

	assert.Equal(t, []string{" #1 hello", "    world", ""}, screen.Lines())
}
