package vlist

import "github.com/gdamore/tcell/v3"

// TextRow is a row displaying word-wrapped text, optionally led by a prefix
// such as an item ID. Wrapped lines are indented past the prefix.
type TextRow struct {
	*Box

	text        string
	textStyle   tcell.Style
	prefix      string
	prefixStyle tcell.Style

	// Cached wrap for the last measured width.
	wrapWidth int
	lines     []string
}

// NewTextRow returns a row displaying text.
func NewTextRow(text string) *TextRow {
	r := &TextRow{
		Box:         NewBox(),
		text:        text,
		textStyle:   tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		prefixStyle: tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		wrapWidth:   -1,
	}
	return r
}

// SetText sets the displayed text.
func (r *TextRow) SetText(text string) *TextRow {
	if r.text != text {
		r.text = text
		r.wrapWidth = -1
		r.MarkDirty()
	}
	return r
}

// SetTextStyle sets the style of the text.
func (r *TextRow) SetTextStyle(style tcell.Style) *TextRow {
	r.textStyle = style
	return r
}

// SetPrefix sets the text printed before the first line.
func (r *TextRow) SetPrefix(prefix string, style tcell.Style) *TextRow {
	if r.prefix != prefix {
		r.prefix = prefix
		r.wrapWidth = -1
		r.MarkDirty()
	}
	r.prefixStyle = style
	return r
}

// Height returns the number of screen rows needed at width, including
// vertical padding.
func (r *TextRow) Height(width int) int {
	return len(r.wrap(width)) + r.paddingTop + r.paddingBottom
}

func (r *TextRow) wrap(width int) []string {
	width -= r.paddingLeft + r.paddingRight + TaggedStringWidth(r.prefix)
	width = max(width, 1)
	if width != r.wrapWidth {
		r.wrapWidth = width
		r.lines = WordWrap(r.text, width)
	}
	return r.lines
}

// Draw draws the prefix and the wrapped text.
func (r *TextRow) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	indent := TaggedStringWidth(r.prefix)
	if r.prefix != "" {
		PrintWithStyle(screen, r.prefix, x, y, width, AlignmentLeft, r.prefixStyle.Background(r.GetBackgroundColor()))
	}
	_, _, outer, _ := r.GetRect()
	lines := r.wrap(outer)
	for i := 0; i < len(lines) && i < height; i++ {
		PrintWithStyle(screen, lines[i], x+indent, y+i, width-indent, AlignmentLeft, r.textStyle.Background(r.GetBackgroundColor()))
	}
}

var _ Row = &TextRow{}
