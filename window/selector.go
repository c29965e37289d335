package window

// DefaultBufferSize is the number of rows mounted beyond each edge of the
// viewport.
const DefaultBufferSize = 10

// Window is the contiguous range of rows that should be mounted.
type Window struct {
	// Start and End delimit the mounted rows, [Start, End).
	Start int
	End   int
	// PaintOffset is the vertical translation applied to the mounted rows.
	PaintOffset int
	// Anchor is the row painted at PaintOffset. Row i is painted at
	// PaintOffset + offset(i) - offset(Anchor).
	Anchor int
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Select computes the window for scrollOffset. A bufferSize of 0 is allowed
// but leaves no margin for rows to mount before they scroll into view.
func Select(scrollOffset int, idx *Index, bufferSize int) (Window, error) {
	n := idx.Len()
	if n == 0 {
		return Window{}, ErrEmptyIndex
	}
	bufferSize = max(bufferSize, 0)

	// Past the last row: keep the tail mounted and pin it.
	if maxY := idx.MaxYOffset(); scrollOffset >= maxY {
		return Window{
			Start:       max(0, n-bufferSize*2),
			End:         n,
			PaintOffset: maxY,
			Anchor:      n - 1,
		}, nil
	}

	closest, err := idx.FindClosestIndex(scrollOffset)
	if err != nil {
		return Window{}, err
	}

	w := Window{
		Start: max(0, closest-bufferSize),
		End:   min(n, closest+bufferSize),
	}
	if closest-bufferSize > 0 {
		w.PaintOffset = idx.At(w.Start).OffsetTop
	}
	w.Anchor = w.Start
	return w, nil
}

// MountOffset returns the offset of the first mounted row, derived from the
// paint offset and the anchor row.
func (w Window) MountOffset(idx *Index) int {
	if w.Len() == 0 || idx.Len() == 0 {
		return w.PaintOffset
	}
	return w.PaintOffset + idx.At(w.Start).OffsetTop - idx.At(w.Anchor).OffsetTop
}
