package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/window"
	"github.com/gdamore/tcell/v3"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (config, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return readFlags(cmd)
}

func TestReadFlags(t *testing.T) {
	cfg, err := parseFlags(t, "-n", "100", "--buffer", "5", "--seed", "9", "--verbatim", "--snapshot", "80x24")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.items)
	assert.Equal(t, 5, cfg.buffer)
	assert.Equal(t, uint64(9), cfg.seed)
	assert.True(t, cfg.verbatim)
	assert.Equal(t, "80x24", cfg.snapshot)
	assert.IsType(t, &CounterIDs{}, cfg.ids)

	cfg, err = parseFlags(t, "--ids", "uuid")
	require.NoError(t, err)
	assert.IsType(t, UUIDs{}, cfg.ids)
}

func TestReadFlagsErrors(t *testing.T) {
	_, err := parseFlags(t, "--ids", "serial")
	require.ErrorContains(t, err, "unknown identifier scheme")

	_, err = parseFlags(t, "-n", "-1")
	require.ErrorContains(t, err, "invalid item count")

	_, err = parseFlags(t, "-b", "-1")
	require.ErrorContains(t, err, "invalid buffer size")
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("VLIST_ITEMS", "12")
	t.Setenv("VLIST_IDS", "uuid")

	cfg, err := parseFlags(t)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.items)
	assert.IsType(t, UUIDs{}, cfg.ids)

	t.Setenv("VLIST_ITEMS", "many")
	cfg, err = parseFlags(t)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.items)
}

func newTestUI(n int) *ui {
	ids := NewCounterIDs(0)
	ids.now = fixedClock(1)
	source := NewSource(ids, 1)
	return newUI(source, source.Items(n), slog.New(slog.DiscardHandler), window.WithBufferSize(40))
}

func TestSnapshot(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, snapshot(&out, newTestUI(30), "40x12", 0))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], " vlist ")
	assert.Contains(t, lines[1], "Item 0")
	assert.Contains(t, lines[10], "0-30/30")
	assert.Contains(t, lines[11], "up")

	var scrolled bytes.Buffer
	require.NoError(t, snapshot(&scrolled, newTestUI(30), "40x12", 5))
	assert.NotEqual(t, out.String(), scrolled.String())
}

func TestSnapshotInvalidSize(t *testing.T) {
	for _, size := range []string{"", "80", "0x10", "axb"} {
		err := snapshot(&bytes.Buffer{}, newTestUI(1), size, 0)
		assert.ErrorContains(t, err, "invalid snapshot size", size)
	}
}

func runeKey(s string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, s, tcell.ModNone)
}

func TestUIEditsItems(t *testing.T) {
	u := newTestUI(5)
	app := vlist.NewApplication().SetScreen(vlist.NewCaptureScreen(40, 20)).SetRoot(u)
	app.ForceDraw()
	first := u.list.Items()[0].ID()

	assert.Equal(t, vlist.RedrawCommand{}, u.InputHandler(runeKey("a")))
	app.ForceDraw()
	require.Len(t, u.list.Controller().Items(), 6)
	assert.NotEqual(t, first, u.list.Items()[0].ID())
	assert.Equal(t, first, u.list.Items()[1].ID())

	u.InputHandler(runeKey("A"))
	app.ForceDraw()
	require.Len(t, u.list.Controller().Items(), 7)

	removed := u.list.Items()[u.firstVisible()].ID()
	u.InputHandler(runeKey("d"))
	app.ForceDraw()
	require.Len(t, u.list.Controller().Items(), 6)
	for _, item := range u.list.Items() {
		assert.NotEqual(t, removed, item.ID())
	}
}

func TestUIKeys(t *testing.T) {
	u := newTestUI(5)
	vlist.NewApplication().SetScreen(vlist.NewCaptureScreen(40, 20)).SetRoot(u).ForceDraw()

	assert.Equal(t, vlist.QuitCommand{}, u.InputHandler(runeKey("q")))
	assert.Equal(t, vlist.QuitCommand{}, u.InputHandler(tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone)))

	u.InputHandler(runeKey("?"))
	assert.True(t, u.help.ShowAll())

	// Unbound keys go to the list.
	assert.Equal(t, vlist.RedrawCommand{}, u.InputHandler(runeKey("j")))
	assert.Nil(t, u.InputHandler(runeKey("z")))
}
