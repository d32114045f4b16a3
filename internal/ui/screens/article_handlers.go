package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/article"
	"article-tui/internal/events"
	"article-tui/internal/ui/components"
)

// TogglePanel opens a closed panel and closes an open one.
func (s *ArticleScreen) TogglePanel() {
	if s.open {
		s.ClosePanel()
		return
	}
	s.open = true
	s.focus = focusFontFamily
	s.syncPanel()
}

// ClosePanel hides the panel and any dropdown inside it.
func (s *ArticleScreen) ClosePanel() {
	s.open = false
	s.focus = focusToggle
	for _, sel := range s.selects() {
		sel.Close()
	}
	s.syncPanel()
}

// Apply renders the article with the staged selections and closes the panel.
func (s *ArticleScreen) Apply() {
	s.applied = s.Staged()
	s.bus.Publish(events.ArticleAppliedEvent{State: s.applied})
	s.ClosePanel()
}

// Reset returns both the article and the form to the defaults and closes
// the panel.
func (s *ArticleScreen) Reset() {
	s.applied = s.defaults
	s.setStaged(s.defaults)
	s.bus.Publish(events.ArticleResetEvent{State: s.applied})
	s.ClosePanel()
}

func (s *ArticleScreen) setStaged(state article.State) {
	s.fontFamily.SetSelected(state.FontFamily)
	s.fontSize.SetSelected(state.FontSize)
	s.fontColor.SetSelected(state.FontColor)
	s.backgroundColor.SetSelected(state.BackgroundColor)
	s.contentWidth.SetSelected(state.ContentWidth)
}

func (s *ArticleScreen) syncPanel() {
	s.panel.Configure(s.open, s.ClosePanel, &s.panelRef)
}

func (s *ArticleScreen) handleKey(msg tea.KeyMsg) {
	if !s.open {
		switch msg.String() {
		case "enter", " ":
			s.TogglePanel()
		}
		return
	}

	if sel := s.focusedSelect(); sel != nil && sel.IsOpen() {
		if sel.HandleKey(msg) {
			return
		}
	}

	switch msg.String() {
	case "tab", "down":
		s.moveFocus(1)
	case "shift+tab", "up":
		s.moveFocus(-1)
	case "left", "right":
		if s.focus == focusFontSize {
			s.fontSize.HandleKey(msg)
		}
	case "enter", " ":
		s.activate()
	}
}

func (s *ArticleScreen) handleClick(msg components.ClickMsg) {
	target := msg.Target
	if components.IsArrowButton(target) {
		s.TogglePanel()
		return
	}
	if !s.open || target == nil {
		return
	}

	fields := map[articleFocus]*components.Select{
		focusFontFamily:   s.fontFamily,
		focusFontColor:    s.fontColor,
		focusBackground:   s.backgroundColor,
		focusContentWidth: s.contentWidth,
	}
	for focus, sel := range fields {
		if sel.Click(target) {
			s.focus = focus
			return
		}
	}

	switch {
	case s.fontSize.Click(target):
		s.focus = focusFontSize
	case s.reset.Hit(target):
		s.Reset()
	case s.apply.Hit(target):
		s.Apply()
	}
}

func (s *ArticleScreen) moveFocus(delta int) {
	s.focus = articleFocus((int(s.focus) + delta + int(focusCount)) % int(focusCount))
}

func (s *ArticleScreen) focusedSelect() *components.Select {
	switch s.focus {
	case focusFontFamily:
		return s.fontFamily
	case focusFontColor:
		return s.fontColor
	case focusBackground:
		return s.backgroundColor
	case focusContentWidth:
		return s.contentWidth
	}
	return nil
}

func (s *ArticleScreen) activate() {
	switch s.focus {
	case focusToggle:
		s.TogglePanel()
	case focusReset:
		s.Reset()
	case focusApply:
		s.Apply()
	default:
		if sel := s.focusedSelect(); sel != nil {
			sel.Open()
		}
	}
}
