package help

import (
	"strings"
	"testing"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/keybind"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKeyMap struct {
	add, remove, quit, hidden keybind.Keybind
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		add:    keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "add")),
		remove: keybind.NewKeybind(keybind.WithKeys("b"), keybind.WithHelp("b", "bye")),
		quit:   keybind.NewKeybind(keybind.WithKeys("ctrl+c"), keybind.WithHelp("ctrl+c", "quit")),
		hidden: keybind.NewKeybind(keybind.WithKeys("h"), keybind.WithHelp("h", "hidden"), keybind.WithDisabled()),
	}
}

func (k testKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.add, k.hidden, k.remove}
}

func (k testKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.add, k.remove, k.hidden}, {k.quit}}
}

func segmentsText(segments []segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}

func TestShortHelp(t *testing.T) {
	t.Parallel()

	h := New()
	keys := newTestKeyMap()
	assert.Equal(t, "a add • b bye", segmentsText(h.shortHelpSegments(keys.ShortHelp(), 0)))
	assert.Equal(t, "a add …", segmentsText(h.shortHelpSegments(keys.ShortHelp(), 8)))
}

func TestFullHelpLines(t *testing.T) {
	t.Parallel()

	h := New()
	keys := newTestKeyMap()

	lines := h.FullHelpLines(keys.FullHelp(), 40)
	require.Len(t, lines, 2)
	assert.Equal(t, "a add    ctrl+c quit", lines[0])
	assert.Equal(t, "b bye", strings.TrimRight(lines[1], " "))

	assert.Equal(t, []string{"a add …", "b bye"}, h.FullHelpLines(keys.FullHelp(), 10))
	assert.Equal(t, []string{"…"}, h.FullHelpLines(keys.FullHelp(), 2))
}

func TestHelpHeight(t *testing.T) {
	t.Parallel()

	h := New()
	assert.Equal(t, 0, h.Height(40))

	h.SetKeyMap(newTestKeyMap())
	assert.Equal(t, 1, h.Height(40))

	h.Toggle()
	assert.True(t, h.ShowAll())
	assert.Equal(t, 2, h.Height(40))

	h.Toggle()
	assert.Equal(t, 1, h.Height(40))
}

func TestHelpDraw(t *testing.T) {
	t.Parallel()

	screen := vlist.NewCaptureScreen(20, 2)
	h := New().SetKeyMap(newTestKeyMap())
	h.SetRect(0, 0, 20, 2)
	h.Draw(screen)
	assert.Equal(t, []string{"a add • b bye", ""}, screen.Lines())
	assert.False(t, h.IsDirty())

	h.SetShowAll(true)
	assert.True(t, h.IsDirty())
	h.Draw(screen)
	assert.Equal(t, "a add    ctrl+c quit", screen.Lines()[0])
	assert.Equal(t, "b bye", screen.Lines()[1])
}

func TestThemeStyles(t *testing.T) {
	t.Parallel()

	theme := vlist.Styles
	theme.PrimaryTextColor = color.Green
	theme.SecondaryTextColor = color.Blue

	styles := ThemeStyles(theme)
	assert.Equal(t, color.Blue, styles.ShortKeyStyle.GetForeground())
	assert.Equal(t, color.Green, styles.ShortDescStyle.GetForeground())
	assert.True(t, styles.FullKeyStyle.HasBold())
	assert.True(t, styles.ShortSeparatorStyle.HasDim())
	assert.Equal(t, theme.PrimitiveBackgroundColor, styles.EllipsisStyle.GetBackground())

	assert.Equal(t, ThemeStyles(vlist.Styles), DefaultStyles())
}
