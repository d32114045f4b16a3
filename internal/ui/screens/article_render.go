package screens

import (
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/article"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
)

// previewCache keeps the last rendered article so frames that only move
// focus skip glamour.
type previewCache struct {
	state article.State
	width int
	view  string
	err   error
	valid bool
}

// View draws the panel (or just its toggle) on the left and the article on
// the right.
func (s *ArticleScreen) View(root *layout.Node) string {
	if s.Width() == 0 {
		return "Загрузка..."
	}

	var left string
	if s.open {
		left = s.renderPanel(root)
	} else {
		container := root.Add(PanelID, layout.Rect{W: components.ArrowButtonWidth, H: 1}, nil)
		s.panelRef.Set(container)
		for _, sel := range s.selects() {
			sel.Unmount()
		}
		left = s.toggle.Render(container, 0, 0, false, s.focus == focusToggle)
	}

	leftW := lipgloss.Width(left)
	preview := s.renderPreview(root, leftW, s.Width()-leftW, s.Height())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, preview)
}

func (s *ArticleScreen) panelWidth() int {
	pw := min(max(s.Width()/2, panelMinWidth), panelMaxWidth)
	return max(0, min(pw, s.Width()-components.ArrowButtonWidth))
}

func (s *ArticleScreen) renderPanel(root *layout.Node) string {
	pw := s.panelWidth()
	h := s.Height()
	container := root.Add(PanelID, layout.Rect{W: pw + components.ArrowButtonWidth, H: h}, nil)
	s.panelRef.Set(container)

	style := s.theme.Panel(s.Staged().FontColor.Value)
	x := style.GetBorderLeftSize() + style.GetPaddingLeft()
	y := style.GetBorderTopSize() + style.GetPaddingTop()
	inner := max(1, pw-style.GetHorizontalFrameSize())

	var blocks []string
	add := func(view string) {
		blocks = append(blocks, view, "")
		y += lipgloss.Height(view) + 1
	}

	add(s.theme.TitleStyle.Render(formHeading))
	add(s.fontFamily.Render(container, x, y, inner, s.focus == focusFontFamily))
	add(s.fontSize.Render(container, x, y, inner, s.focus == focusFontSize))
	add(s.fontColor.Render(container, x, y, inner, s.focus == focusFontColor))
	add(components.Separator(s.theme, inner))
	add(s.backgroundColor.Render(container, x, y, inner, s.focus == focusBackground))
	add(s.contentWidth.Render(container, x, y, inner, s.focus == focusContentWidth))

	resetView := s.reset.Render(container, x, y, s.focus == focusReset)
	gap := 2
	applyView := s.apply.Render(container, x+lipgloss.Width(resetView)+gap, y, s.focus == focusApply)
	blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, resetView, lipgloss.NewStyle().Width(gap).Render(""), applyView))

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	panel := style.
		Width(pw - style.GetHorizontalBorderSize()).
		Height(max(0, h-style.GetVerticalBorderSize())).
		Render(body)

	arrow := s.toggle.Render(container, pw, 0, true, s.focus == focusToggle)
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, arrow)
}

func (s *ArticleScreen) renderPreview(root *layout.Node, x, width, height int) string {
	if width <= 0 {
		return ""
	}
	root.Add(PreviewID, layout.Rect{X: x, W: width, H: height}, nil)

	if s.loadErr != nil {
		return s.theme.ErrorMessage(s.loadErr.Error())
	}
	if !s.preview.valid || s.preview.state != s.applied || s.preview.width != width {
		view, err := s.renderer.Render(s.markdown, s.applied, width)
		s.preview = previewCache{state: s.applied, width: width, view: view, err: err, valid: true}
	}
	if s.preview.err != nil {
		return s.theme.ErrorMessage(s.preview.err.Error())
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.preview.view,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(s.applied.BackgroundColor.Value)))
}
