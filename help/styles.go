package help

import (
	"github.com/ayn2op/vlist"
	"github.com/gdamore/tcell/v3"
)

// Styles holds the styles used to draw key bindings in short and full mode.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives help styles from the list theme, so keys share the
// row prefix color and descriptions the row text color.
func DefaultStyles() Styles {
	return ThemeStyles(vlist.Styles)
}

// ThemeStyles returns help styles for theme.
func ThemeStyles(theme vlist.Theme) Styles {
	base := tcell.StyleDefault.Background(theme.PrimitiveBackgroundColor)
	key := base.Foreground(theme.SecondaryTextColor)
	desc := base.Foreground(theme.PrimaryTextColor)
	dim := base.Foreground(theme.TitleColor).Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key.Bold(true),
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
