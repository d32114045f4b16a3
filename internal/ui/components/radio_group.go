package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/article"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

// RadioGroup shows every option of a small catalogue on one row.
type RadioGroup struct {
	Name    string
	Title   string
	Options article.Catalogue

	theme    *styles.Theme
	selected article.Option
	onChange func(article.Option)
}

// NewRadioGroup creates a radio group with the given option checked.
func NewRadioGroup(theme *styles.Theme, name, title string, options article.Catalogue, selected article.Option, onChange func(article.Option)) *RadioGroup {
	return &RadioGroup{
		Name:     name,
		Title:    title,
		Options:  options,
		theme:    theme,
		selected: selected,
		onChange: onChange,
	}
}

// Selected returns the checked option.
func (r *RadioGroup) Selected() article.Option {
	return r.selected
}

// SetSelected checks an option without notifying onChange.
func (r *RadioGroup) SetSelected(opt article.Option) {
	r.selected = opt
}

func (r *RadioGroup) choose(idx int) {
	if idx < 0 || idx >= len(r.Options) {
		return
	}
	opt := r.Options[idx]
	if opt.Value == r.selected.Value {
		return
	}
	r.selected = opt
	if r.onChange != nil {
		r.onChange(opt)
	}
}

// Click handles a press on one of the group's options.
func (r *RadioGroup) Click(n *layout.Node) bool {
	id, part := ownerOf(n)
	if n == nil || (n.ID != r.Name && id != r.Name) {
		return false
	}
	if part == partOption {
		if idx, ok := optionIndex(n); ok {
			r.choose(idx)
		}
	}
	return true
}

// HandleKey moves the check with left and right while focused.
func (r *RadioGroup) HandleKey(msg tea.KeyMsg) bool {
	idx := r.Options.Index(r.selected.Value)
	switch msg.String() {
	case "left", "h":
		if idx > 0 {
			r.choose(idx - 1)
		}
		return true
	case "right", "l":
		if idx < len(r.Options)-1 {
			r.choose(idx + 1)
		}
		return true
	}
	return false
}

// Render draws the group at (x, y) and registers one region per option.
func (r *RadioGroup) Render(parent *layout.Node, x, y, width int, focused bool) string {
	t := r.theme
	title := t.LabelStyle.Render(strings.ToUpper(r.Title))

	var node *layout.Node
	if parent != nil {
		node = parent.Add(r.Name, layout.Rect{X: x, Y: y, W: width, H: 2}, nil)
	}

	cells := make([]string, 0, len(r.Options))
	col := x
	for i, opt := range r.Options {
		mark := "( )"
		style := t.OptionStyle
		if opt.Value == r.selected.Value {
			mark = "(•)"
			if focused {
				style = t.OptionActiveStyle
			} else {
				style = t.HighlightStyle.Padding(0, 1)
			}
		}
		cell := style.Render(mark + " " + opt.Title)
		w := lipgloss.Width(cell)
		if node != nil {
			node.Add(partID(r.Name, partOption), layout.Rect{X: col, Y: y + 1, W: w, H: 1}, i)
		}
		cells = append(cells, cell)
		col += w
	}

	row := lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	return lipgloss.JoinVertical(lipgloss.Left, title, row)
}
