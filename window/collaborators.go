package window

// Item is a logical record tracked by the engine. The engine never looks at
// anything but its identity.
type Item interface {
	ID() string
}

// Measurement is the rendered geometry of one mounted row.
type Measurement struct {
	// Vertical offset of the row within the scroll content.
	OffsetTop int
	// Rendered height of the row.
	Height int
}

// Measurer reports the geometry of the currently mounted rows, in mount order.
type Measurer interface {
	Measure() []Measurement
}

// Renderer mounts exactly the given rows, in order.
type Renderer interface {
	Mount(items []Item)
}

// Viewport is the scroll surface the engine drives.
type Viewport interface {
	// ScrollOffset returns the current scroll position in content units.
	ScrollOffset() int
	// SetScrollOffset moves the scroll position.
	SetScrollOffset(offset int)
	// ViewportHeight returns the visible height.
	ViewportHeight() int
	// ScrollbarWidth returns the width taken by the scroll bar, if any.
	ScrollbarWidth() int
	// SetPaintOffset translates the mounted rows without re-laying out the
	// rows that are not mounted.
	SetPaintOffset(offset int)
	// SetContentHeight sets the height of the full, mostly unmounted content.
	SetContentHeight(height int)
}

// Scheduler runs f once the rows mounted so far have been laid out.
type Scheduler interface {
	AfterNextLayout(f func())
}
