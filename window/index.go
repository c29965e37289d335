package window

// Entry is one row of the position index.
type Entry struct {
	OffsetTop int
	Height    int
	Item      Item
}

// Index maps logical item positions to pixel (or cell) offsets within the
// full list. Entries are contiguous: every entry starts where the previous one
// ends, and the first entry starts at 0.
//
// The zero value is an empty index.
type Index struct {
	entries []Entry
}

// Build creates an index from one measurement pass over all items. Heights are
// taken from the measurement; offsets are derived from them so the index is
// contiguous even if the measured layout has gaps.
func Build(rows []Measurement, items []Item) (*Index, error) {
	if len(rows) != len(items) {
		return nil, &MeasurementMismatchError{Want: len(items), Got: len(rows)}
	}
	if _, err := checkUnique(items); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(items))
	offset := 0
	for i, item := range items {
		height := max(rows[i].Height, 0)
		entries[i] = Entry{OffsetTop: offset, Height: height, Item: item}
		offset += height
	}
	return &Index{entries: entries}, nil
}

// Len returns the number of entries.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// At returns the entry at i.
func (x *Index) At(i int) Entry {
	return x.entries[i]
}

// Entries returns a copy of all entries.
func (x *Index) Entries() []Entry {
	if x == nil {
		return nil
	}
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Items returns the indexed items in order.
func (x *Index) Items() []Item {
	if x == nil {
		return nil
	}
	items := make([]Item, len(x.entries))
	for i, entry := range x.entries {
		items[i] = entry.Item
	}
	return items
}

// Slice returns the items in [start, end).
func (x *Index) Slice(start, end int) []Item {
	items := make([]Item, 0, end-start)
	for _, entry := range x.entries[start:end] {
		items = append(items, entry.Item)
	}
	return items
}

// MaxYOffset returns the offset of the last entry.
func (x *Index) MaxYOffset() int {
	if x.Len() == 0 {
		return 0
	}
	return x.entries[len(x.entries)-1].OffsetTop
}

// ScrollHeight returns the total height of all entries.
func (x *Index) ScrollHeight() int {
	if x.Len() == 0 {
		return 0
	}
	last := x.entries[len(x.entries)-1]
	return last.OffsetTop + last.Height
}

// Clone returns a deep copy of the index.
func (x *Index) Clone() *Index {
	return &Index{entries: x.Entries()}
}

// FindClosestIndex returns the index of the entry whose offset is nearest to
// offset. Ties go to the earlier entry. Offsets past the end are not clamped
// here; callers handle the tail themselves.
func (x *Index) FindClosestIndex(offset int) (int, error) {
	if x.Len() == 0 {
		return 0, ErrEmptyIndex
	}

	closest := 0
	distance := abs(offset - x.entries[0].OffsetTop)
	for i := 1; i < len(x.entries); i++ {
		d := abs(offset - x.entries[i].OffsetTop)
		if d < distance {
			distance = d
			closest = i
		}
	}
	return closest, nil
}

// InsertAt inserts a new entry of the given height at position i and shifts
// every following entry down by height. It panics if i is out of range.
func (x *Index) InsertAt(i int, height int, item Item) {
	if i < 0 || i > len(x.entries) {
		panic("window: insert index out of range")
	}
	height = max(height, 0)

	offset := x.ScrollHeight()
	if i < len(x.entries) {
		offset = x.entries[i].OffsetTop
	}

	x.entries = append(x.entries, Entry{})
	copy(x.entries[i+1:], x.entries[i:])
	x.entries[i] = Entry{OffsetTop: offset, Height: height, Item: item}
	x.rebase(i+1, height)
}

// RemoveAt removes the entry at position i, shifts every following entry up by
// its height and returns it. It panics if i is out of range.
func (x *Index) RemoveAt(i int) Entry {
	removed := x.entries[i]
	x.entries = append(x.entries[:i], x.entries[i+1:]...)
	x.rebase(i, -removed.Height)
	return removed
}

func (x *Index) rebase(from int, delta int) {
	if delta == 0 {
		return
	}
	for i := from; i < len(x.entries); i++ {
		x.entries[i].OffsetTop += delta
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
