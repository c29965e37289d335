package vlist

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ayn2op/vlist/window"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem string

func (i testItem) ID() string {
	return string(i)
}

func testItems(n int) []window.Item {
	items := make([]window.Item, n)
	for i := range items {
		items[i] = testItem(fmt.Sprintf("row-%02d", i))
	}
	return items
}

type fixedRow struct {
	*Box
	label  string
	height int
}

func (r *fixedRow) Height(int) int {
	return r.height
}

func (r *fixedRow) Draw(screen tcell.Screen) {
	x, y, width, _ := r.GetRect()
	Print(screen, r.label, x, y, width, AlignmentLeft, Styles.PrimaryTextColor)
}

func fixedRows(height int) RowBuilder {
	return func(item window.Item) Row {
		return &fixedRow{Box: NewBox(), label: item.ID(), height: height}
	}
}

// newTestList draws a list of n one-row items on a 20x10 screen. The footer
// takes the bottom line, which leaves nine visible rows.
func newTestList(t *testing.T, n int, opts ...window.Option) (*VirtualList, *CaptureScreen, *Application) {
	t.Helper()

	list := NewVirtualList(fixedRows(1), opts...)
	list.SetErrorHandler(func(err error) {
		t.Errorf("unexpected error: %v", err)
	})
	list.SetItems(testItems(n))

	screen := NewCaptureScreen(20, 10)
	app := NewApplication().SetScreen(screen).SetRoot(list)
	app.ForceDraw()
	return list, screen, app
}

func TestVirtualListInitialDraw(t *testing.T) {
	list, screen, _ := newTestList(t, 30)

	ctrl := list.Controller()
	require.True(t, ctrl.Ready())
	require.False(t, ctrl.Pending())
	require.Equal(t, window.ModeActive, ctrl.Mode())
	require.False(t, list.IsDirty())

	state := ctrl.State()
	assert.Equal(t, 0, state.StartIndex)
	assert.Equal(t, 10, state.EndIndex)
	assert.Equal(t, 30, state.ScrollHeight)

	lines := screen.Lines()
	for i := range 9 {
		assert.True(t, strings.HasPrefix(lines[i], fmt.Sprintf("row-%02d", i)), "line %d: %q", i, lines[i])
	}
	assert.Contains(t, lines[9], "0-10/30")
}

func TestVirtualListScrollBy(t *testing.T) {
	list, screen, app := newTestList(t, 30)

	list.ScrollBy(12)
	app.ForceDraw()

	require.Equal(t, 12, list.ScrollOffset())
	w := list.Controller().Window()
	assert.Equal(t, 2, w.Start)
	assert.Equal(t, 22, w.End)

	lines := screen.Lines()
	assert.True(t, strings.HasPrefix(lines[0], "row-12"), lines[0])
	assert.True(t, strings.HasPrefix(lines[8], "row-20"), lines[8])
}

func TestVirtualListScrollClamp(t *testing.T) {
	list, screen, app := newTestList(t, 30)

	list.ScrollToEnd()
	app.ForceDraw()
	require.Equal(t, 21, list.ScrollOffset())
	assert.True(t, strings.HasPrefix(screen.Lines()[8], "row-29"))

	list.ScrollBy(-100)
	app.ForceDraw()
	require.Equal(t, 0, list.ScrollOffset())
	assert.True(t, strings.HasPrefix(screen.Lines()[0], "row-00"))
}

func TestVirtualListCoalescesScrollTargets(t *testing.T) {
	list, _, app := newTestList(t, 30)

	list.ScrollBy(4).ScrollBy(4).ScrollBy(-2)
	app.ForceDraw()
	assert.Equal(t, 6, list.ScrollOffset())
}

func TestVirtualListInputHandler(t *testing.T) {
	list, _, app := newTestList(t, 30)

	assert.Equal(t, RedrawCommand{}, list.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
	assert.Equal(t, RedrawCommand{}, list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone)))
	assert.Equal(t, RedrawCommand{}, list.InputHandler(tcell.NewEventKey(tcell.KeyPgDn, "", tcell.ModNone)))
	app.ForceDraw()
	assert.Equal(t, 11, list.ScrollOffset())

	list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModNone))
	app.ForceDraw()
	assert.Equal(t, 10, list.ScrollOffset())

	list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "G", tcell.ModNone))
	app.ForceDraw()
	assert.Equal(t, 21, list.ScrollOffset())

	list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "g", tcell.ModNone))
	app.ForceDraw()
	assert.Equal(t, 0, list.ScrollOffset())

	assert.Nil(t, list.InputHandler(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)))
}

func TestVirtualListMouseWheel(t *testing.T) {
	list, _, app := newTestList(t, 30)

	_, cmd := list.MouseHandler(MouseScrollDown, tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	app.ForceDraw()
	assert.Equal(t, wheelStep, list.ScrollOffset())

	_, cmd = list.MouseHandler(MouseScrollDown, tcell.NewEventMouse(40, 40, tcell.WheelDown, tcell.ModNone))
	assert.Nil(t, cmd)
}

func TestVirtualListInsertKeepsTopRow(t *testing.T) {
	list, screen, app := newTestList(t, 30)
	list.ScrollBy(12)
	app.ForceDraw()

	items := testItems(30)
	items = append(items[:5:5], append([]window.Item{testItem("new")}, items[5:]...)...)
	list.SetItems(items)
	app.ForceDraw()

	ctrl := list.Controller()
	require.False(t, ctrl.Pending())
	require.Len(t, ctrl.Items(), 31)
	assert.Equal(t, 31, ctrl.State().ScrollHeight)
	assert.Equal(t, 13, list.ScrollOffset())
	assert.True(t, strings.HasPrefix(screen.Lines()[0], "row-12"), screen.Lines()[0])
}

func TestVirtualListInsertVerbatimKeepsOffset(t *testing.T) {
	list, screen, app := newTestList(t, 30, window.WithRestoreMode(window.RestoreVerbatim))
	list.ScrollBy(12)
	app.ForceDraw()

	items := append([]window.Item{testItem("new")}, testItems(30)...)
	list.SetItems(items)
	app.ForceDraw()

	assert.Equal(t, 12, list.ScrollOffset())
	assert.True(t, strings.HasPrefix(screen.Lines()[0], "row-11"), screen.Lines()[0])
}

func TestVirtualListRemoveAll(t *testing.T) {
	list, screen, app := newTestList(t, 30)

	list.SetItems([]window.Item{})
	app.ForceDraw()

	ctrl := list.Controller()
	require.False(t, ctrl.Pending())
	assert.Empty(t, ctrl.Items())
	assert.Equal(t, 0, list.ScrollOffset())
	for _, line := range screen.Lines() {
		assert.NotContains(t, line, "row-")
	}
	assert.Contains(t, screen.Lines()[9], "0-0/0")
}

func TestVirtualListPause(t *testing.T) {
	list, screen, app := newTestList(t, 30)

	require.True(t, list.TogglePause())
	app.ForceDraw()
	assert.Contains(t, screen.Lines()[9], "paused")

	list.ScrollBy(5)
	app.ForceDraw()
	assert.Equal(t, 5, list.ScrollOffset())
	assert.Equal(t, 10, list.Controller().Window().End)

	require.False(t, list.TogglePause())
	app.ForceDraw()
	assert.Equal(t, 15, list.Controller().Window().End)
	assert.True(t, strings.HasPrefix(screen.Lines()[8], "row-13"), screen.Lines()[8])
	assert.NotContains(t, screen.Lines()[9], "paused")
}

func TestVirtualListRemeasuresOnWidthChange(t *testing.T) {
	list := NewVirtualList(func(item window.Item) Row {
		return NewTextRow("aaaa bbbb cccc dddd")
	})
	list.SetItems(testItems(5))

	// Ten columns of content next to the scroll bar.
	screen := NewCaptureScreen(11, 12)
	app := NewApplication().SetScreen(screen).SetRoot(list)
	app.ForceDraw()
	require.Equal(t, 10, list.Controller().State().ScrollHeight)
	assert.True(t, strings.HasPrefix(screen.Lines()[0], "aaaa bbbb"), screen.Lines()[0])
	assert.True(t, strings.HasPrefix(screen.Lines()[1], "cccc dddd"), screen.Lines()[1])

	screen.SetSize(21, 12)
	app.ForceDraw()
	require.False(t, list.Controller().Pending())
	assert.Equal(t, 5, list.Controller().State().ScrollHeight)
}

func TestVirtualListRejectsDuplicateIDs(t *testing.T) {
	var got error
	list := NewVirtualList(fixedRows(1))
	list.SetErrorHandler(func(err error) {
		got = err
	})
	list.SetItems([]window.Item{testItem("a"), testItem("a")})

	app := NewApplication().SetScreen(NewCaptureScreen(20, 10)).SetRoot(list)
	app.ForceDraw()

	var collision *window.IdentityCollisionError
	require.True(t, errors.As(got, &collision))
	assert.Nil(t, list.Items())
	assert.False(t, list.Controller().Ready())
}

func TestVirtualListRejectsReorder(t *testing.T) {
	var got error
	list, _, app := newTestList(t, 3)
	list.SetErrorHandler(func(err error) {
		got = err
	})

	items := testItems(3)
	items[0], items[1] = items[1], items[0]
	list.SetItems(items)
	app.ForceDraw()

	require.ErrorIs(t, got, window.ErrReordered)
	assert.Equal(t, testItems(3), list.Items())
}

func TestVirtualListMeasure(t *testing.T) {
	list := NewVirtualList(fixedRows(2))
	list.SetRect(0, 0, 11, 5)
	list.SetPaintOffset(3)
	list.Mount(testItems(3))

	assert.Equal(t, []window.Measurement{
		{OffsetTop: 3, Height: 2},
		{OffsetTop: 5, Height: 2},
		{OffsetTop: 7, Height: 2},
	}, list.Measure())
}

func TestVirtualListMountReusesRows(t *testing.T) {
	built := 0
	list := NewVirtualList(func(item window.Item) Row {
		built++
		return &fixedRow{Box: NewBox(), label: item.ID(), height: 1}
	})

	list.Mount(testItems(3))
	list.Mount(testItems(4))
	assert.Equal(t, 4, built)
}

func TestVirtualListRejectsReorderWithDeletion(t *testing.T) {
	var got error
	list, _, app := newTestList(t, 3)
	list.SetErrorHandler(func(err error) {
		got = err
	})

	list.SetItems([]window.Item{testItem("row-02"), testItem("row-01")})
	app.ForceDraw()

	require.ErrorIs(t, got, window.ErrReordered)
	assert.Equal(t, testItems(3), list.Items())
	assert.Equal(t, testItems(3), list.Controller().Items())

	got = nil
	list.SetItems(append(testItems(3), testItem("row-99")))
	app.ForceDraw()

	require.NoError(t, got)
	require.False(t, list.Controller().Pending())
	assert.Len(t, list.Controller().Items(), 4)
}

func TestVirtualListRecoversFromMeasurementMismatch(t *testing.T) {
	var got error
	list, _, app := newTestList(t, 3)
	list.SetErrorHandler(func(err error) {
		got = err
	})

	list.SetItems(append(testItems(3), testItem("row-99")))
	list.sync()
	require.True(t, list.Controller().Pending())

	// Rows vanish before the measurement tick runs.
	list.Mount(testItems(1))
	list.ticks.Tick()

	var mismatch *window.MeasurementMismatchError
	require.True(t, errors.As(got, &mismatch))
	assert.Equal(t, 4, mismatch.Want)
	assert.Equal(t, 1, mismatch.Got)
	require.False(t, list.Controller().Pending())
	assert.Equal(t, testItems(3), list.Items())

	got = nil
	list.SetItems(append(testItems(3), testItem("row-50"), testItem("row-51")))
	app.ForceDraw()

	require.NoError(t, got)
	assert.Len(t, list.Controller().Items(), 5)
}
