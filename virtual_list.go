package vlist

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/ayn2op/vlist/keybind"
	"github.com/ayn2op/vlist/window"
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// wheelStep is the number of rows scrolled per mouse wheel notch.
const wheelStep = 3

// Row is a primitive which can be measured for a given width.
//
// Rows report their own height so the list can lay out and scroll rows of
// varying height.
type Row interface {
	Primitive
	Height(width int) int
}

// RowBuilder returns the row displaying item.
type RowBuilder func(item window.Item) Row

// VirtualList displays a list of items of which only the rows around the
// viewport are mounted. The rows are selected by a [window.Controller]; the
// list serves as its renderer, measurer, viewport and scheduler.
//
// Item changes passed to SetItems are reconciled on the next draw, and scroll
// requests made while the controller is measuring are held back and coalesced.
type VirtualList struct {
	*Box

	builder RowBuilder
	keys    KeyMap

	ctrl   *window.Controller
	ticks  window.TickQueue
	logger *slog.Logger

	onError func(error)

	scrollBar     *ScrollBar
	showScrollBar bool

	// items is the latest list passed to SetItems. synced is the list the
	// controller was last told about.
	items     []window.Item
	synced    []window.Item
	hasSynced bool

	// mounted holds the rows the controller asked for, in mount order.
	mounted []mountedRow
	rows    map[string]Row

	scrollOffset  int
	paintOffset   int
	contentHeight int

	// A scroll request waiting for the controller to become idle. Only the
	// latest target is kept.
	scrollTarget    int
	hasScrollTarget bool

	layoutWidth int
}

type mountedRow struct {
	item   window.Item
	row    Row
	height int
}

// NewVirtualList returns a list rendering each item with builder. The options
// configure the underlying controller.
func NewVirtualList(builder RowBuilder, opts ...window.Option) *VirtualList {
	l := &VirtualList{
		Box:           NewBox(),
		builder:       builder,
		keys:          DefaultKeyMap(),
		logger:        slog.New(slog.DiscardHandler),
		scrollBar:     NewScrollBar(),
		showScrollBar: true,
		rows:          make(map[string]Row),
		layoutWidth:   -1,
	}
	l.onError = l.logError
	l.scrollBar.SetBackgroundColor(l.GetBackgroundColor())

	opts = append([]window.Option{window.WithErrorHandler(l.rollback)}, opts...)
	l.ctrl = window.NewController(l, l, l, &l.ticks, opts...)
	return l
}

// SetLogger sets the logger used for list events. The controller logger is
// configured separately with [window.WithLogger].
func (l *VirtualList) SetLogger(logger *slog.Logger) *VirtualList {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// SetErrorHandler sets the function receiving errors raised while
// reconciling or measuring. The default handler logs them.
func (l *VirtualList) SetErrorHandler(handler func(error)) *VirtualList {
	if handler == nil {
		handler = l.logError
	}
	l.onError = handler
	return l
}

// SetKeyMap sets the key bindings.
func (l *VirtualList) SetKeyMap(keys KeyMap) *VirtualList {
	l.keys = keys
	return l
}

// KeyMap returns the key bindings.
func (l *VirtualList) KeyMap() KeyMap {
	return l.keys
}

// SetScrollBar toggles the scroll bar column.
func (l *VirtualList) SetScrollBar(show bool) *VirtualList {
	if l.showScrollBar != show {
		l.showScrollBar = show
		l.MarkDirty()
	}
	return l
}

// Controller returns the controller selecting the mounted rows.
func (l *VirtualList) Controller() *window.Controller {
	return l.ctrl
}

// SetItems replaces the displayed items. The first call measures every item;
// later calls are diffed against the previous list on the next draw.
func (l *VirtualList) SetItems(items []window.Item) *VirtualList {
	l.items = items
	l.MarkDirty()
	return l
}

// Items returns the latest list passed to SetItems.
func (l *VirtualList) Items() []window.Item {
	return l.items
}

// ScrollOffset returns the scroll position in rows.
func (l *VirtualList) ScrollOffset() int {
	return l.scrollOffset
}

// SetScrollOffset moves the scroll position, clamped to the content.
func (l *VirtualList) SetScrollOffset(offset int) {
	offset = l.clampOffset(offset)
	if l.scrollOffset != offset {
		l.scrollOffset = offset
		l.MarkDirty()
	}
}

// ViewportHeight returns the number of visible rows.
func (l *VirtualList) ViewportHeight() int {
	_, _, _, height := l.GetInnerRect()
	return height
}

// ScrollbarWidth returns the number of columns reserved for the scroll bar.
func (l *VirtualList) ScrollbarWidth() int {
	if l.showScrollBar {
		return 1
	}
	return 0
}

// SetPaintOffset sets where the first mounted row starts in the content.
func (l *VirtualList) SetPaintOffset(offset int) {
	if l.paintOffset != offset {
		l.paintOffset = offset
		l.MarkDirty()
	}
}

// SetContentHeight sets the height of the full content.
func (l *VirtualList) SetContentHeight(height int) {
	if l.contentHeight != height {
		l.contentHeight = max(height, 0)
		l.MarkDirty()
	}
}

// Mount replaces the mounted rows. Rows of items that stay mounted are
// reused.
func (l *VirtualList) Mount(items []window.Item) {
	rows := make(map[string]Row, len(items))
	mounted := make([]mountedRow, 0, len(items))
	for _, item := range items {
		id := item.ID()
		row, ok := l.rows[id]
		if !ok {
			row = l.builder(item)
		}
		rows[id] = row
		mounted = append(mounted, mountedRow{item: item, row: row, height: -1})
	}
	l.rows = rows
	l.mounted = mounted
	l.MarkDirty()
}

// Measure reports the laid out geometry of the mounted rows.
func (l *VirtualList) Measure() []window.Measurement {
	width := l.contentWidth()
	rows := make([]window.Measurement, len(l.mounted))
	top := l.paintOffset
	for i := range l.mounted {
		height := l.mounted[i].height
		if height < 0 {
			height = rowHeight(l.mounted[i].row, width)
		}
		rows[i] = window.Measurement{OffsetTop: top, Height: height}
		top += height
	}
	return rows
}

// ScrollBy requests scrolling by delta rows. Positive values scroll down.
func (l *VirtualList) ScrollBy(delta int) *VirtualList {
	target := l.scrollOffset
	if l.hasScrollTarget {
		target = l.scrollTarget
	}
	return l.scrollTo(target + delta)
}

// ScrollToStart requests scrolling to the first row.
func (l *VirtualList) ScrollToStart() *VirtualList {
	return l.scrollTo(0)
}

// ScrollToEnd requests scrolling so the last row is at the bottom.
func (l *VirtualList) ScrollToEnd() *VirtualList {
	return l.scrollTo(math.MaxInt32)
}

func (l *VirtualList) scrollTo(offset int) *VirtualList {
	l.scrollTarget = max(offset, 0)
	l.hasScrollTarget = true
	l.MarkDirty()
	return l
}

// TogglePause pauses or resumes window updates on scroll. When resumed, the
// window is recomputed for the current position.
func (l *VirtualList) TogglePause() bool {
	paused := l.ctrl.ToggleScrollHandling()
	if !paused && l.ctrl.Ready() {
		l.onScroll(l.scrollOffset)
	}
	l.MarkDirty()
	return paused
}

// Draw synchronizes the list with the controller and draws the mounted rows.
func (l *VirtualList) Draw(screen tcell.Screen) {
	l.SetFooter(l.status())
	l.MarkClean()
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 || l.builder == nil {
		return
	}
	l.sync()

	contentWidth := l.contentWidth()
	clipped := newClippedScreen(screen, x, y, contentWidth, height)
	top := y + l.paintOffset - l.scrollOffset
	for i := range l.mounted {
		m := &l.mounted[i]
		m.height = rowHeight(m.row, contentWidth)
		if top+m.height > y && top < y+height {
			m.row.SetRect(x, top, contentWidth, m.height)
			m.row.Draw(clipped)
		}
		top += m.height
	}

	if l.showScrollBar {
		l.scrollBar.SetLengths(ScrollLengths{ContentLen: l.contentHeight, ViewportLen: height})
		l.scrollBar.SetOffset(l.scrollOffset)
		l.scrollBar.SetRect(x+width-1, y, 1, height)
		l.scrollBar.Draw(screen)
	}

	// The rows are laid out now; run whatever waited for that.
	if l.ticks.Tick() > 0 {
		l.MarkDirty()
	}
}

// sync performs at most one step towards the requested state. Further steps
// run in later layout passes.
func (l *VirtualList) sync() {
	if l.ctrl.Pending() {
		return
	}

	width := l.contentWidth()
	switch {
	case !l.hasSynced && l.items != nil, l.hasSynced && width != l.layoutWidth:
		l.layoutWidth = width
		l.paintOffset = 0
		if err := l.ctrl.Init(l.items); err != nil {
			l.reportError(fmt.Errorf("failed to measure rows: %w", err))
			l.items = l.synced
			return
		}
		l.synced = l.items
		l.hasSynced = true
	case l.hasSynced && !sameItems(l.synced, l.items):
		if err := l.ctrl.OnItemsChanged(l.synced, l.items); err != nil {
			l.reportError(fmt.Errorf("failed to update rows: %w", err))
			l.items = l.synced
			return
		}
		l.synced = l.items
	case l.hasScrollTarget && l.ctrl.Ready():
		l.hasScrollTarget = false
		offset := l.clampOffset(l.scrollTarget)
		if offset == l.scrollOffset {
			return
		}
		l.scrollOffset = offset
		l.onScroll(offset)
	}
}

func (l *VirtualList) onScroll(offset int) {
	changed, err := l.ctrl.OnScroll(offset)
	switch {
	case errors.Is(err, window.ErrEmptyIndex):
	case err != nil:
		l.reportError(err)
	case changed:
		l.MarkDirty()
	}
}

func (l *VirtualList) clampOffset(offset int) int {
	return min(max(offset, 0), max(l.contentHeight-l.ViewportHeight(), 0))
}

func (l *VirtualList) contentWidth() int {
	_, _, width, _ := l.GetInnerRect()
	return max(width-l.ScrollbarWidth(), 0)
}

func (l *VirtualList) status() string {
	state := l.ctrl.State()
	total := len(l.ctrl.Items())
	status := fmt.Sprintf(" %d-%d/%d ", state.StartIndex, state.EndIndex, total)
	if mode := l.ctrl.Mode(); mode != window.ModeActive {
		status = fmt.Sprintf(" %s%s ", status[1:], mode)
	}

	style := tcell.StyleDefault.Foreground(Styles.TitleColor)
	if l.ctrl.Mode() == window.ModeUserPaused {
		style = style.Foreground(Styles.PausedColor)
	}
	l.SetFooterStyle(style)
	return status
}

// rollback handles an error raised after the controller accepted a change.
// The list falls back to the items the controller still indexes so the next
// SetItems is diffed against them.
func (l *VirtualList) rollback(err error) {
	if l.ctrl.Ready() {
		l.items = l.ctrl.Items()
	} else {
		l.items, l.hasSynced = nil, false
	}
	l.synced = l.items
	l.reportError(err)
}

func (l *VirtualList) reportError(err error) {
	l.MarkDirty()
	l.onError(err)
}

func (l *VirtualList) logError(err error) {
	l.logger.Error("virtual list", "error", err)
}

// InputHandler handles scrolling keys.
func (l *VirtualList) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, l.keys.LineUp):
		l.ScrollBy(-1)
	case keybind.Matches(event, l.keys.LineDown):
		l.ScrollBy(1)
	case keybind.Matches(event, l.keys.PageUp):
		l.ScrollBy(-max(l.ViewportHeight(), 1))
	case keybind.Matches(event, l.keys.PageDown):
		l.ScrollBy(max(l.ViewportHeight(), 1))
	case keybind.Matches(event, l.keys.Top):
		l.ScrollToStart()
	case keybind.Matches(event, l.keys.Bottom):
		l.ScrollToEnd()
	case keybind.Matches(event, l.keys.TogglePause):
		l.TogglePause()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler handles the mouse wheel and focus clicks.
func (l *VirtualList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: l}
	case MouseScrollUp:
		l.ScrollBy(-wheelStep)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.ScrollBy(wheelStep)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

func rowHeight(row Row, width int) int {
	if row == nil {
		return 0
	}
	return max(row.Height(width), 0)
}

func sameItems(a, b []window.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID() != b[i].ID() {
			return false
		}
	}
	return true
}

var (
	_ Primitive       = &VirtualList{}
	_ window.Renderer = &VirtualList{}
	_ window.Measurer = &VirtualList{}
	_ window.Viewport = &VirtualList{}
)

type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
