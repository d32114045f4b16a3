package components

import (
	"strings"

	"article-tui/internal/ui/styles"
)

// Separator renders a horizontal rule between panel sections.
func Separator(theme *styles.Theme, width int) string {
	if width < 1 {
		return ""
	}
	return theme.SeparatorStyle.Render(strings.Repeat("─", width))
}
