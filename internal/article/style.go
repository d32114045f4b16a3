package article

import (
	"github.com/charmbracelet/lipgloss"
)

// CellWidthPx is the assumed width of one terminal cell when converting
// pixel content widths into columns.
const CellWidthPx = 14

// Face is the terminal stand-in for a font family.
type Face struct {
	Bold      bool
	Italic    bool
	Underline bool
}

var faces = map[string]Face{
	"open-sans":          {},
	"ubuntu":             {Bold: true},
	"cormorant-garamond": {Italic: true},
	"days-one":           {Bold: true, Italic: true},
	"merriweather":       {Underline: true},
}

// FaceFor maps a font family option to a terminal face. Unknown families
// render plain.
func FaceFor(family Option) Face {
	return faces[family.ClassName]
}

// Scale maps a font size to 0, 1 or 2 by its position in the catalogue.
func Scale(size Option) int {
	idx := FontSizes.Index(size.Value)
	if idx < 0 {
		px, ok := parsePixels(size.Value)
		switch {
		case !ok || px < 22:
			return 0
		case px < 32:
			return 1
		default:
			return 2
		}
	}
	return idx
}

// Columns converts a content width option into terminal columns, bounded by
// the available width.
func Columns(width Option, available int) int {
	px, ok := parsePixels(width.Value)
	if !ok {
		px, _ = parsePixels(ContentWidths.Default().Value)
	}
	cols := max(px/CellWidthPx, 20)
	if available > 0 && cols > available {
		cols = available
	}
	return cols
}

// Style returns the lipgloss style wrapping the rendered article body.
func (s State) Style(width int) lipgloss.Style {
	face := FaceFor(s.FontFamily)
	scale := Scale(s.FontSize)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.FontColor.Value)).
		Background(lipgloss.Color(s.BackgroundColor.Value)).
		Bold(face.Bold).
		Italic(face.Italic).
		Underline(face.Underline).
		Padding(scale, 2*scale+1).
		Width(width)
}
