package vlist

import "github.com/ayn2op/vlist/keybind"

// KeyMap holds the key bindings of a VirtualList.
type KeyMap struct {
	LineUp      keybind.Keybind
	LineDown    keybind.Keybind
	PageUp      keybind.Keybind
	PageDown    keybind.Keybind
	Top         keybind.Keybind
	Bottom      keybind.Keybind
	TogglePause keybind.Keybind
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LineUp:      keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		LineDown:    keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:      keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown:    keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:         keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g/home", "top")),
		Bottom:      keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G/end", "bottom")),
		TogglePause: keybind.NewKeybind(keybind.WithKeys("p"), keybind.WithHelp("p", "pause windowing")),
	}
}

// ShortHelp returns the bindings shown in single-line help.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.LineUp, k.LineDown, k.TogglePause}
}

// FullHelp returns the bindings grouped into help columns.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.LineUp, k.LineDown},
		{k.PageUp, k.PageDown},
		{k.Top, k.Bottom},
		{k.TogglePause},
	}
}
