package vlist

import "github.com/gdamore/tcell/v3"

// ScrollLengths bundles content and viewport lengths in rows.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines the vertical track and fractional thumb glyphs.
type GlyphSet struct {
	TrackVertical string

	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string
}

// MinimalGlyphSet returns a glyph set with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.TrackVertical = " "
	return g
}

// UnicodeGlyphSet returns a glyph set built from standard block elements.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical: BoxDrawingsLightVertical,

		ThumbVerticalLower: [8]string{
			BlockLowerOneEighthBlock, BlockLowerOneQuarterBlock, BlockLowerThreeEighthsBlock, BlockLowerHalfBlock,
			BlockLowerFiveEighthsBlock, BlockLowerThreeQuartersBlock, BlockLowerSevenEighthsBlock, BlockFullBlock,
		},
		ThumbVerticalUpper: [8]string{
			BlockUpperOneEighthBlock, BlockUpperOneEighthBlock, BlockUpperHalfBlock, BlockUpperHalfBlock,
			BlockUpperHalfBlock, BlockUpperHalfBlock, BlockFullBlock, BlockFullBlock,
		},
	}
}

// ScrollBar renders a vertical scroll bar for a row-addressed content area.
type ScrollBar struct {
	*Box

	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style

	glyphSet GlyphSet
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	s := &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarColor),
		glyphSet:   UnicodeGlyphSet(),
	}
	return s
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the scroll offset in rows.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when there is nothing to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

// Visible reports whether the bar would be drawn for the given lengths.
func (s *ScrollBar) Visible() bool {
	if s.contentLen <= 0 {
		return false
	}
	return !s.autoHide || s.contentLen > s.viewportLen
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	// Subcell math lets the thumb move in 1/8-cell steps while staying proportional.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns the cell-local start and length of the thumb coverage.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphForVertical(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		return s.glyphSet.TrackVertical, s.trackStyle
	}
	if fillLen >= subcell {
		return s.glyphSet.ThumbVerticalLower[7], s.thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, _, height := s.GetInnerRect()
	if height <= 0 || !s.Visible() {
		return
	}
	viewportLen := s.viewportLen
	if viewportLen == 0 {
		viewportLen = height
	}
	m := computeScrollMetrics(height, s.contentLen, viewportLen, s.offset)
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyphForVertical(cellFill(m, cell))
		screen.Put(x, y+cell, glyph, style)
	}
}

var _ Primitive = &ScrollBar{}
