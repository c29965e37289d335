package vlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles and footers.
	PrimaryTextColor         tcell.Color // Row text.
	SecondaryTextColor       tcell.Color // Row prefixes (e.g. item IDs).
	ScrollBarColor           tcell.Color // Scroll bar thumb.
	PausedColor              tcell.Color // Footer while scroll handling is paused.
}

// Styles defines the theme for applications. The default is for a black
// background with white text and a yellow accent.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	BorderColor:              color.White,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	ScrollBarColor:           color.White,
	PausedColor:              color.Red,
}
