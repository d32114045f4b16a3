package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/ui/layout"
)

// Region ids are built as "<component id>/<part>".
const (
	partHeader = "header"
	partOption = "option"
)

func partID(id, part string) string {
	return id + "/" + part
}

// ownerOf returns the id of the component a region belongs to and its part.
func ownerOf(n *layout.Node) (id, part string) {
	if n == nil {
		return "", ""
	}
	idx := strings.LastIndex(n.ID, "/")
	if idx < 0 {
		return n.ID, ""
	}
	return n.ID[:idx], n.ID[idx+1:]
}

// optionIndex reads the option index stored on an option region.
func optionIndex(n *layout.Node) (int, bool) {
	if n == nil {
		return 0, false
	}
	idx, ok := n.Data.(int)
	return idx, ok
}

// boxed renders content in a bordered style with a total outer width.
func boxed(style lipgloss.Style, width int, content string) string {
	inner := width - style.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return style.Width(inner).Render(content)
}

// swatch prefixes colour option titles with a coloured square.
func swatch(value string) string {
	if !strings.HasPrefix(value, "#") {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value)).Render("■") + " "
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
