package vlist

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string
	style tcell.Style
	// cont marks the trailing columns of a wide grapheme.
	cont bool
}

// frame stores one logical render frame.
type frame struct {
	width  int
	height int
	cells  []cell
}

func newFrame(width, height int) *frame {
	width, height = max(width, 0), max(height, 0)
	return &frame{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (f *frame) clear() {
	for i := range f.cells {
		f.cells[i] = cell{}
	}
}

func (f *frame) cellAt(x, y int) (c cell, ok bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return cell{}, false
	}
	return f.cells[y*f.width+x], true
}

func (f *frame) putCell(x, y int, c cell) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = c
}

// CaptureScreen is an in-memory tcell.Screen. It keeps the drawn cells so
// frames can be inspected without a terminal, and delivers events queued with
// InjectEvent to an [Application] running on it.
//
// Only the drawing, sizing and event methods are implemented. Calling any
// other tcell.Screen method panics.
type CaptureScreen struct {
	tcell.Screen

	frame        *frame
	defaultStyle tcell.Style

	events   chan tcell.Event
	finiOnce sync.Once
}

// NewCaptureScreen returns a blank screen of the given size.
func NewCaptureScreen(width, height int) *CaptureScreen {
	return &CaptureScreen{
		frame:  newFrame(width, height),
		events: make(chan tcell.Event, updatesQueueSize),
	}
}

// Size returns the screen size.
func (s *CaptureScreen) Size() (width, height int) {
	return s.frame.width, s.frame.height
}

// SetSize resizes the screen, dropping its content.
func (s *CaptureScreen) SetSize(width, height int) {
	s.frame = newFrame(width, height)
}

func (s *CaptureScreen) Init() error {
	return nil
}

// Fini closes the event queue, which stops an application running on the
// screen.
func (s *CaptureScreen) Fini() {
	s.finiOnce.Do(func() {
		close(s.events)
	})
}

func (s *CaptureScreen) EventQ() chan tcell.Event {
	return s.events
}

// InjectEvent queues an event for the application.
func (s *CaptureScreen) InjectEvent(event tcell.Event) {
	s.events <- event
}

func (s *CaptureScreen) Show() {}

func (s *CaptureScreen) Sync() {}

func (s *CaptureScreen) ShowCursor(x int, y int) {}

func (s *CaptureScreen) HideCursor() {}

func (s *CaptureScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	text := string(primary)
	if len(combining) > 0 {
		text += string(combining)
	}
	s.Put(x, y, text, style)
}

func (s *CaptureScreen) Clear() {
	s.frame.clear()
}

func (s *CaptureScreen) Fill(r rune, style tcell.Style) {
	for y := 0; y < s.frame.height; y++ {
		for x := 0; x < s.frame.width; x++ {
			s.frame.putCell(x, y, cell{text: string(r), style: style})
		}
	}
}

func (s *CaptureScreen) SetStyle(style tcell.Style) {
	s.defaultStyle = style
}

func (s *CaptureScreen) Get(x, y int) (str string, style tcell.Style, width int) {
	c, ok := s.frame.cellAt(x, y)
	if !ok || c.cont {
		return "", tcell.StyleDefault, 1
	}
	return c.text, c.style, max(uniseg.StringWidth(c.text), 1)
}

func (s *CaptureScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster = string(r)
		remain = str[size:]
		width = 1
	}
	if width <= 0 {
		return remain, 0
	}

	// Wide graphemes do not fit into the last column.
	if width > 1 && x == s.frame.width-1 {
		cluster = " "
		width = 1
	}

	s.frame.putCell(x, y, cell{text: cluster, style: style})
	for i := 1; i < width; i++ {
		s.frame.putCell(x+i, y, cell{style: style, cont: true})
	}
	return remain, width
}

func (s *CaptureScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.defaultStyle)
}

func (s *CaptureScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.frame.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

// Lines returns the text of every screen row with trailing blanks removed.
func (s *CaptureScreen) Lines() []string {
	lines := make([]string, s.frame.height)
	var b strings.Builder
	for y := range lines {
		b.Reset()
		for x := 0; x < s.frame.width; x++ {
			c, _ := s.frame.cellAt(x, y)
			switch {
			case c.cont:
			case c.text == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.text)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the screen content as newline separated rows.
func (s *CaptureScreen) String() string {
	return strings.Join(s.Lines(), "\n")
}
