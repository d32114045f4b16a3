package components

import (
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

// ArrowButtonID is the region id of the panel toggle.
const ArrowButtonID = "arrow-button"

// ArrowButtonLabel is read out in hints for the toggle.
const ArrowButtonLabel = "Открыть/Закрыть форму параметров статьи"

// ArrowButtonWidth is the rendered width of the toggle.
const ArrowButtonWidth = 3

// ArrowButton opens and closes the parameters panel. It holds no state: the
// owner passes the open flag and performs the toggle.
type ArrowButton struct {
	Theme *styles.Theme
}

// IsArrowButton reports whether a region is the toggle.
func IsArrowButton(n *layout.Node) bool {
	return n != nil && n.ID == ArrowButtonID
}

// Render draws the toggle at (x, y) and registers its region under parent.
func (b ArrowButton) Render(parent *layout.Node, x, y int, open, focused bool) string {
	arrow := "▶"
	style := b.Theme.ToggleStyle
	if open {
		arrow = "◀"
		style = b.Theme.ToggleOpenStyle
	}
	if focused {
		style = style.Underline(true)
	}

	view := style.Width(ArrowButtonWidth).Align(lipgloss.Center).Render(arrow)
	if parent != nil {
		parent.Add(ArrowButtonID, layout.Rect{X: x, Y: y, W: ArrowButtonWidth, H: 1}, nil)
	}
	return view
}
