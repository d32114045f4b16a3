package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/article"
	"article-tui/internal/events"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/overlay"
	"article-tui/internal/ui/styles"
)

// Select is a dropdown over a catalogue. The open dropdown dismisses itself
// on a press outside the select or on Escape.
type Select struct {
	ID          string
	Title       string
	Placeholder string
	Options     article.Catalogue

	theme    *styles.Theme
	selected article.Option
	open     bool
	cursor   int
	onChange func(article.Option)

	ref     layout.Ref
	dismiss *overlay.Controller
}

// NewSelect creates a closed select.
func NewSelect(src events.Source, theme *styles.Theme, id, title, placeholder string, options article.Catalogue, selected article.Option, onChange func(article.Option)) *Select {
	return &Select{
		ID:          id,
		Title:       title,
		Placeholder: placeholder,
		Options:     options,
		theme:       theme,
		selected:    selected,
		onChange:    onChange,
		dismiss:     overlay.New(src),
	}
}

// Selected returns the chosen option.
func (s *Select) Selected() article.Option {
	return s.selected
}

// SetSelected replaces the chosen option without notifying onChange.
func (s *Select) SetSelected(opt article.Option) {
	s.selected = opt
}

// IsOpen reports whether the dropdown is shown.
func (s *Select) IsOpen() bool {
	return s.open
}

// Open shows the dropdown with the cursor on the selected option.
func (s *Select) Open() {
	s.cursor = max(0, s.Options.Index(s.selected.Value))
	s.setOpen(true)
}

// Close hides the dropdown. Closing a closed select does nothing.
func (s *Select) Close() {
	s.setOpen(false)
}

// Toggle flips the dropdown.
func (s *Select) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// Dispose hides the dropdown and releases its input subscriptions.
func (s *Select) Dispose() {
	s.open = false
	s.ref.Clear()
	s.dismiss.Close()
}

func (s *Select) setOpen(open bool) {
	s.open = open
	s.dismiss.Configure(s.open, s.Close, &s.ref)
}

func (s *Select) choose(idx int) {
	if idx < 0 || idx >= len(s.Options) {
		return
	}
	opt := s.Options[idx]
	s.selected = opt
	s.Close()
	if s.onChange != nil {
		s.onChange(opt)
	}
}

// Owns reports whether the region belongs to this select.
func (s *Select) Owns(n *layout.Node) bool {
	id, _ := ownerOf(n)
	return n != nil && (n.ID == s.ID || id == s.ID)
}

// Click handles a press on one of the select's regions.
func (s *Select) Click(n *layout.Node) bool {
	if !s.Owns(n) {
		return false
	}
	_, part := ownerOf(n)
	switch part {
	case partHeader:
		s.Toggle()
	case partOption:
		if idx, ok := optionIndex(n); ok {
			s.choose(idx)
		}
	}
	return true
}

// HandleKey handles keys while the select has focus.
func (s *Select) HandleKey(msg tea.KeyMsg) bool {
	if !s.open {
		switch msg.String() {
		case "enter", " ", "down", "j":
			s.Open()
			return true
		}
		return false
	}

	switch msg.String() {
	case "up", "k", "left":
		if s.cursor > 0 {
			s.cursor--
		}
		return true
	case "down", "j", "right":
		if s.cursor < len(s.Options)-1 {
			s.cursor++
		}
		return true
	case "enter", " ":
		s.choose(s.cursor)
		return true
	case "tab", "shift+tab":
		s.Close()
		return false
	}
	return false
}

// Render draws the select at (x, y) with the given outer width and registers
// its regions under parent.
func (s *Select) Render(parent *layout.Node, x, y, width int, focused bool) string {
	t := s.theme
	title := t.LabelStyle.Render(strings.ToUpper(s.Title))

	inner := width - 4
	line := t.MutedStyle.Render(truncate(s.Placeholder, inner-2))
	if s.selected.Value != "" {
		line = swatch(s.selected.Value) + t.TextStyle.Render(truncate(s.selected.Title, inner-4))
	}
	arrow := "▾"
	if s.open {
		arrow = "▴"
	}
	line += strings.Repeat(" ", max(0, inner-lipgloss.Width(line)-1)) + arrow

	fieldStyle := t.FieldStyle
	if focused || s.open {
		fieldStyle = t.FieldFocusStyle
	}
	header := boxed(fieldStyle, width, line)

	blocks := []string{title, header}
	headerH := lipgloss.Height(header)

	var optionLines []string
	if s.open {
		for i, opt := range s.Options {
			style := t.OptionStyle
			if i == s.cursor {
				style = t.OptionActiveStyle
			}
			mark := "  "
			if opt.Value == s.selected.Value {
				mark = "✓ "
			}
			optionLines = append(optionLines, swatch(opt.Value)+style.Width(width-2).Render(truncate(mark+opt.Title, width-4)))
		}
		blocks = append(blocks, optionLines...)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, blocks...)

	if parent != nil {
		node := parent.Add(s.ID, layout.Rect{X: x, Y: y, W: width, H: lipgloss.Height(view)}, nil)
		node.Add(partID(s.ID, partHeader), layout.Rect{X: x, Y: y + 1, W: width, H: headerH}, nil)
		for i := range optionLines {
			node.Add(partID(s.ID, partOption), layout.Rect{X: x, Y: y + 1 + headerH + i, W: width, H: 1}, i)
		}
		s.ref.Set(node)
	}
	return view
}

// Unmount clears the select's region reference when it is not drawn.
func (s *Select) Unmount() {
	s.ref.Clear()
}
