package main

import (
	"log/slog"
	"slices"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/help"
	"github.com/ayn2op/vlist/keybind"
	"github.com/ayn2op/vlist/window"
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

type keyMap struct {
	list vlist.KeyMap

	Insert   keybind.Keybind
	Append   keybind.Keybind
	Delete   keybind.Keybind
	ShowHelp keybind.Keybind
	Quit     keybind.Keybind
}

func defaultKeyMap(list vlist.KeyMap) keyMap {
	return keyMap{
		list:     list,
		Insert:   keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "insert")),
		Append:   keybind.NewKeybind(keybind.WithKeys("A"), keybind.WithHelp("A", "append")),
		Delete:   keybind.NewKeybind(keybind.WithKeys("d", "delete"), keybind.WithHelp("d", "delete")),
		ShowHelp: keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "more")),
		Quit:     keybind.NewKeybind(keybind.WithKeys("q", "esc", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return append(k.list.ShortHelp(), k.Insert, k.Delete, k.ShowHelp, k.Quit)
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	return append(k.list.FullHelp(), []keybind.Keybind{k.Insert, k.Append, k.Delete}, []keybind.Keybind{k.ShowHelp, k.Quit})
}

// ui stacks the item list above a help bar and edits the list on key presses.
type ui struct {
	*vlist.Box

	list   *vlist.VirtualList
	help   *help.Help
	keys   keyMap
	source *Source
	logger *slog.Logger
}

func newUI(source *Source, items []window.Item, logger *slog.Logger, opts ...window.Option) *ui {
	u := &ui{
		Box:    vlist.NewBox(),
		help:   help.New(),
		source: source,
		logger: logger,
	}

	u.list = vlist.NewVirtualList(newRow, opts...)
	u.list.SetLogger(logger)
	u.list.SetBorders(vlist.BordersAll)
	u.list.SetBorderSet(vlist.BorderSetRound())
	u.list.SetTitle(" vlist ")
	u.list.SetItems(items)

	u.keys = defaultKeyMap(u.list.KeyMap())
	u.help.SetKeyMap(u.keys)
	u.help.SetBorderPadding(0, 0, 1, 1)
	return u
}

func newRow(item window.Item) vlist.Row {
	e, ok := item.(entry)
	if !ok {
		return vlist.NewTextRow(item.ID())
	}
	row := vlist.NewTextRow(e.body)
	row.SetPrefix(e.name+" ", tcell.StyleDefault.Foreground(vlist.Styles.SecondaryTextColor).Bold(true))
	row.SetBorderPadding(0, 1, 1, 1)
	if e.accent {
		row.SetBackgroundColor(color.Navy)
	}
	return row
}

func (u *ui) Draw(screen tcell.Screen) {
	u.MarkClean()
	x, y, width, height := u.GetRect()
	helpHeight := min(u.help.Height(width-2), height)
	u.list.SetRect(x, y, width, height-helpHeight)
	u.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	u.list.Draw(screen)
	u.help.Draw(screen)
}

func (u *ui) HasFocus() bool {
	return u.Box.HasFocus() || u.list.HasFocus()
}

func (u *ui) IsDirty() bool {
	return u.Box.IsDirty() || u.list.IsDirty() || u.help.IsDirty()
}

func (u *ui) InputHandler(event *tcell.EventKey) vlist.Command {
	switch {
	case keybind.Matches(event, u.keys.Quit):
		return vlist.QuitCommand{}
	case keybind.Matches(event, u.keys.ShowHelp):
		u.help.Toggle()
	case keybind.Matches(event, u.keys.Insert):
		u.insert(u.firstVisible())
	case keybind.Matches(event, u.keys.Append):
		u.insert(len(u.list.Items()))
	case keybind.Matches(event, u.keys.Delete):
		u.remove(u.firstVisible())
	default:
		return u.list.InputHandler(event)
	}
	return vlist.RedrawCommand{}
}

func (u *ui) MouseHandler(action vlist.MouseAction, event *tcell.EventMouse) (vlist.Primitive, vlist.Command) {
	return u.list.MouseHandler(action, event)
}

// firstVisible returns the index of the row at the top of the viewport.
func (u *ui) firstVisible() int {
	idx := u.list.Controller().Index()
	i, err := idx.FindClosestIndex(u.list.ScrollOffset())
	if err != nil {
		return 0
	}
	return i
}

func (u *ui) insert(at int) {
	items := u.list.Items()
	at = min(max(at, 0), len(items))
	item := u.source.Next()
	u.logger.Info("inserting item", "id", item.ID(), "at", at)
	u.list.SetItems(slices.Insert(slices.Clone(items), at, item))
}

func (u *ui) remove(at int) {
	items := u.list.Items()
	if at < 0 || at >= len(items) {
		return
	}
	u.logger.Info("removing item", "id", items[at].ID(), "at", at)
	u.list.SetItems(slices.Delete(slices.Clone(items), at, at+1))
}

var _ vlist.Primitive = &ui{}
