package components

import (
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

// Button is a bordered push button.
type Button struct {
	ID      string
	Title   string
	Primary bool

	theme *styles.Theme
}

// NewButton creates a button.
func NewButton(theme *styles.Theme, id, title string, primary bool) *Button {
	return &Button{ID: id, Title: title, Primary: primary, theme: theme}
}

// Hit reports whether the region is this button.
func (b *Button) Hit(n *layout.Node) bool {
	return n != nil && n.ID == b.ID
}

// Render draws the button at (x, y) and registers its region.
func (b *Button) Render(parent *layout.Node, x, y int, focused bool) string {
	style := b.theme.ButtonStyle
	if b.Primary {
		style = b.theme.ButtonPrimaryStyle
	}
	if focused {
		style = style.BorderForeground(b.theme.ButtonFocusStyle.GetBorderTopForeground()).Bold(true)
	}
	view := style.Render(b.Title)
	if parent != nil {
		parent.Add(b.ID, layout.Rect{X: x, Y: y, W: lipgloss.Width(view), H: lipgloss.Height(view)}, nil)
	}
	return view
}
