package window

import (
	"slices"
	"sort"
)

// Mode is the scroll handling mode of a Controller.
type Mode int

const (
	// ModeActive recomputes the window on every scroll.
	ModeActive Mode = iota
	// ModeProgrammaticRestore ignores scrolls while the controller restores
	// the scroll position after a mutation or a measurement pass.
	ModeProgrammaticRestore
	// ModeUserPaused ignores scrolls until scroll handling is toggled back on.
	ModeUserPaused
)

func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModeProgrammaticRestore:
		return "restoring"
	case ModeUserPaused:
		return "paused"
	}
	return "unknown"
}

// WindowState describes the mounted window and the size of the full content.
type WindowState struct {
	StartIndex   int
	EndIndex     int
	MaxYOffset   int
	ScrollHeight int
	PaintOffset  int
}

// Controller owns the position index and keeps the mounted window in sync
// with the scroll position and the item list.
//
// A Controller is driven from a single goroutine: scroll events, item changes
// and the scheduler's callbacks must not run concurrently.
type Controller struct {
	config

	renderer  Renderer
	measurer  Measurer
	viewport  Viewport
	scheduler Scheduler

	index  *Index
	window Window
	state  WindowState

	// Set by the user through ToggleScrollHandling.
	paused bool
	// Set while the controller itself moves the scroll position.
	restoring bool
	// Set while a measurement or restore tick is outstanding.
	pending bool
}

// NewController returns a controller wired to its collaborators. Nothing is
// mounted until Init is called.
func NewController(r Renderer, m Measurer, v Viewport, s Scheduler, opts ...Option) *Controller {
	c := &Controller{
		config:    defaultConfig(),
		renderer:  r,
		measurer:  m,
		viewport:  v,
		scheduler: s,
	}
	for _, opt := range opts {
		opt(&c.config)
	}
	return c
}

// Init mounts every item once, measures them after the next layout and builds
// the position index from that pass. Calling Init again discards the index
// and measures everything anew, which is needed when row heights change for
// reasons the controller cannot see, such as a new viewport width.
func (c *Controller) Init(items []Item) error {
	if c.pending {
		return ErrBusy
	}
	if _, err := checkUnique(items); err != nil {
		return err
	}

	items = slices.Clone(items)
	saved := c.viewport.ScrollOffset()
	c.pending, c.restoring = true, true
	c.renderer.Mount(items)
	c.logger.Debug("measuring all rows", "items", len(items))

	c.scheduler.AfterNextLayout(func() {
		rows := c.measurer.Measure()
		idx, err := Build(rows, items)
		if err != nil {
			c.abort(err, saved)
			return
		}
		c.index = idx
		c.logGaps(rows)
		c.settle(min(saved, idx.ScrollHeight()))
	})
	return nil
}

// Ready reports whether the first measurement pass has completed.
func (c *Controller) Ready() bool {
	return c.index != nil
}

// Pending reports whether a measurement or restore tick is outstanding.
func (c *Controller) Pending() bool {
	return c.pending
}

// State returns the current window state.
func (c *Controller) State() WindowState {
	return c.state
}

// Window returns the currently mounted window.
func (c *Controller) Window() Window {
	return c.window
}

// Index returns a copy of the position index, or nil before Init completes.
func (c *Controller) Index() *Index {
	if c.index == nil {
		return nil
	}
	return c.index.Clone()
}

// Items returns the items currently tracked by the index.
func (c *Controller) Items() []Item {
	return c.index.Items()
}

// BufferSize returns the number of rows mounted beyond each viewport edge.
func (c *Controller) BufferSize() int {
	return c.bufferSize
}

// Mode returns the scroll handling mode. A user pause takes precedence over a
// programmatic restore in progress.
func (c *Controller) Mode() Mode {
	switch {
	case c.paused:
		return ModeUserPaused
	case c.restoring:
		return ModeProgrammaticRestore
	}
	return ModeActive
}

// ToggleScrollHandling pauses or resumes window recomputation on scroll and
// reports whether handling is now paused.
func (c *Controller) ToggleScrollHandling() bool {
	c.paused = !c.paused
	c.logger.Debug("scroll handling toggled", "paused", c.paused)
	return c.paused
}

// OnScroll recomputes the window for offset. It reports whether a different
// window was mounted. Scrolls are ignored while paused or restoring; only the
// latest offset matters, so dropped scrolls need no replay.
func (c *Controller) OnScroll(offset int) (bool, error) {
	if c.paused || c.restoring {
		return false, nil
	}
	if c.index.Len() == 0 {
		return false, ErrEmptyIndex
	}

	w, err := Select(offset, c.index, c.bufferSize)
	if err != nil {
		return false, err
	}
	if w == c.window {
		return false, nil
	}
	c.apply(w)
	return true, nil
}

// OnItemsChanged reconciles the index with a new item list. Added items are
// mounted with the current window, measured after the next layout and spliced
// into the index; removed items are dropped right away. Once the index is
// updated the window is recomputed and the scroll position restored.
//
// Duplicate identifiers and surviving items that change their relative order
// are rejected before anything is mounted. Errors found in the deferred
// measurement step go to the error handler, and the index is left as it was.
func (c *Controller) OnItemsChanged(oldItems, newItems []Item) error {
	changes, err := Diff(oldItems, newItems)
	if err != nil {
		return err
	}
	if err := CheckOrder(oldItems, newItems, changes); err != nil {
		return err
	}
	if changes.Empty() {
		return nil
	}
	if c.index == nil {
		return ErrEmptyIndex
	}
	if c.pending {
		return ErrBusy
	}

	newItems = slices.Clone(newItems)
	saved := c.viewport.ScrollOffset()
	a := captureAnchor(c.index, saved)
	c.pending, c.restoring = true, true

	if len(changes.Additions) == 0 {
		c.commit(changes, newItems, saved, a)
		return nil
	}

	mounted := c.index.Slice(c.window.Start, c.window.End)
	windowLen := len(mounted)
	for _, add := range changes.Additions {
		mounted = append(mounted, add.Item)
	}
	c.renderer.Mount(mounted)

	c.scheduler.AfterNextLayout(func() {
		rows := c.measurer.Measure()
		if len(rows) != len(mounted) {
			c.abort(&MeasurementMismatchError{Want: len(mounted), Got: len(rows)}, saved)
			return
		}
		for i := range changes.Additions {
			changes.Additions[i].Height = max(rows[windowLen+i].Height, 0)
		}
		c.commit(changes, newItems, saved, a)
	})
	return nil
}

func (c *Controller) commit(changes Changes, newItems []Item, saved int, a anchor) {
	next, err := Reconcile(c.index, changes, newItems)
	if err != nil {
		c.abort(err, saved)
		return
	}
	c.index = next

	offset := saved
	if c.restoreMode == RestoreAnchor {
		offset = a.resolve(next, saved)
	}
	c.logger.Debug("items reconciled",
		"added", len(changes.Additions),
		"removed", len(changes.Deletions),
		"scrollHeight", next.ScrollHeight(),
		"savedOffset", saved,
		"offset", offset,
	)
	c.settle(offset)
}

// settle mounts the window for offset, restores the scroll position and
// leaves restore mode one tick later, after the surface has applied it.
func (c *Controller) settle(offset int) {
	c.show(offset)
	c.viewport.SetScrollOffset(offset)
	// The viewport may clamp to the new content height.
	if applied := c.viewport.ScrollOffset(); applied != offset {
		c.show(applied)
	}
	c.scheduler.AfterNextLayout(func() {
		c.restoring, c.pending = false, false
	})
}

func (c *Controller) abort(err error, saved int) {
	if c.index != nil {
		c.show(saved)
	} else {
		c.renderer.Mount(nil)
	}
	c.viewport.SetScrollOffset(saved)
	c.restoring, c.pending = false, false
	c.logger.Error("window update aborted", "error", err)
	c.onError(err)
}

// show mounts the window for offset, or nothing if the index is empty.
func (c *Controller) show(offset int) {
	w, err := Select(offset, c.index, c.bufferSize)
	if err != nil {
		c.window = Window{}
		c.state = WindowState{}
		c.renderer.Mount(nil)
		c.viewport.SetPaintOffset(0)
		c.viewport.SetContentHeight(0)
		return
	}
	c.apply(w)
}

func (c *Controller) apply(w Window) {
	c.window = w
	c.state = WindowState{
		StartIndex:   w.Start,
		EndIndex:     w.End,
		MaxYOffset:   c.index.MaxYOffset(),
		ScrollHeight: c.index.ScrollHeight(),
		PaintOffset:  w.PaintOffset,
	}
	c.renderer.Mount(c.index.Slice(w.Start, w.End))
	c.viewport.SetPaintOffset(w.MountOffset(c.index))
	c.viewport.SetContentHeight(c.state.ScrollHeight)
	c.logger.Debug("window selected",
		"start", w.Start,
		"end", w.End,
		"paintOffset", w.PaintOffset,
		"scrollHeight", c.state.ScrollHeight,
	)
}

func (c *Controller) logGaps(rows []Measurement) {
	if len(rows) == 0 {
		return
	}
	base := rows[0].OffsetTop
	for i, row := range rows {
		if want := c.index.entries[i].OffsetTop; row.OffsetTop-base != want {
			c.logger.Debug("measured offset differs from running height", "row", i, "measured", row.OffsetTop-base, "derived", want)
			return
		}
	}
}

// anchor is the row under the scroll position and how far into it the
// position is.
type anchor struct {
	id    string
	delta int
	ok    bool
}

func captureAnchor(idx *Index, offset int) anchor {
	n := idx.Len()
	if n == 0 {
		return anchor{}
	}
	i := sort.Search(n, func(i int) bool {
		return idx.entries[i].OffsetTop > offset
	}) - 1
	i = max(i, 0)
	entry := idx.entries[i]
	return anchor{id: entry.Item.ID(), delta: offset - entry.OffsetTop, ok: true}
}

// resolve returns the offset that puts the anchor row back at the same screen
// position, or fallback if the row is gone.
func (a anchor) resolve(idx *Index, fallback int) int {
	if !a.ok {
		return fallback
	}
	for _, entry := range idx.entries {
		if entry.Item.ID() == a.id {
			return entry.OffsetTop + a.delta
		}
	}
	return fallback
}
