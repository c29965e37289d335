package window

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type testItem struct {
	id     string
	name   string
	height int
}

func (i testItem) ID() string {
	return i.id
}

func items(heights ...int) []Item {
	out := make([]Item, len(heights))
	for i, h := range heights {
		out[i] = testItem{id: string(rune('A' + i)), height: h}
	}
	return out
}

func rows(heights ...int) []Measurement {
	out := make([]Measurement, len(heights))
	offset := 0
	for i, h := range heights {
		out[i] = Measurement{OffsetTop: offset, Height: h}
		offset += h
	}
	return out
}

func mustBuild(t *testing.T, heights ...int) *Index {
	t.Helper()
	idx, err := Build(rows(heights...), items(heights...))
	require.NoError(t, err)
	return idx
}

func requireContiguous(t *testing.T, idx *Index) {
	t.Helper()
	for i := 0; i+1 < idx.Len(); i++ {
		cur, next := idx.At(i), idx.At(i+1)
		require.Equalf(t, next.OffsetTop, cur.OffsetTop+cur.Height, "entries %d and %d are not contiguous", i, i+1)
	}
	if idx.Len() > 0 {
		require.Equal(t, 0, idx.At(0).OffsetTop)
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID()
	}
	return out
}

func offsets(idx *Index) []int {
	out := make([]int, idx.Len())
	for i := range out {
		out[i] = idx.At(i).OffsetTop
	}
	return out
}

// surface is an in-memory rendering layer. Mounted rows are laid out top to
// bottom using the height carried by each testItem.
type surface struct {
	mounted  []Item
	mounts   int
	scroll   int
	height   int
	paint    int
	content  int
	dropRows int
	// clamp limits SetScrollOffset to the content height like a real viewport.
	clamp bool
}

func (s *surface) Mount(items []Item) {
	s.mounted = slices.Clone(items)
	s.mounts++
}

func (s *surface) Measure() []Measurement {
	n := max(len(s.mounted)-s.dropRows, 0)
	out := make([]Measurement, 0, n)
	offset := 0
	for _, item := range s.mounted[:n] {
		h := item.(testItem).height
		out = append(out, Measurement{OffsetTop: offset, Height: h})
		offset += h
	}
	return out
}

func (s *surface) ScrollOffset() int { return s.scroll }

func (s *surface) SetScrollOffset(offset int) {
	if s.clamp {
		offset = min(max(offset, 0), max(s.content-s.height, 0))
	}
	s.scroll = offset
}

func (s *surface) ViewportHeight() int       { return s.height }
func (s *surface) ScrollbarWidth() int       { return 0 }
func (s *surface) SetPaintOffset(offset int) { s.paint = offset }
func (s *surface) SetContentHeight(h int)    { s.content = h }

// newReadyController initializes a controller over list and runs the ticks
// needed for it to become active.
func newReadyController(t *testing.T, list []Item, opts ...Option) (*Controller, *surface, *TickQueue) {
	t.Helper()
	s := &surface{height: 100}
	q := &TickQueue{}
	c := NewController(s, s, s, q, opts...)
	require.NoError(t, c.Init(list))
	require.Equal(t, 1, q.Tick())
	require.Equal(t, 1, q.Tick())
	require.True(t, c.Ready())
	require.Equal(t, ModeActive, c.Mode())
	return c, s, q
}
