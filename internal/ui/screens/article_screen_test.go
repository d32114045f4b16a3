package screens

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"article-tui/internal/article"
	"article-tui/internal/config"
	"article-tui/internal/events"
	"article-tui/internal/logger"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

func newArticleScreen(t *testing.T) (*ArticleScreen, *events.Bus, *layout.Tree) {
	t.Helper()

	bus := events.NewBus()
	s := NewArticleScreen(bus, styles.NewTheme("dark"), logger.Nop(), article.DefaultState(), "", "Текст статьи.")
	t.Cleanup(s.Dispose)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 41})

	tree := layout.NewTree()
	s.View(tree.Reset(100, 40))
	return s, bus, tree
}

func render(s *ArticleScreen, tree *layout.Tree) string {
	return s.View(tree.Reset(100, 40))
}

func TestArticleScreenClosedLayout(t *testing.T) {
	s, bus, tree := newArticleScreen(t)

	panel := tree.Find(PanelID)
	require.NotNil(t, panel)
	require.Equal(t, layout.Rect{W: components.ArrowButtonWidth, H: 1}, panel.Rect)
	require.NotNil(t, tree.Find(components.ArrowButtonID))
	require.Nil(t, tree.Find(fontFamilyID), "form is not drawn while closed")
	require.Equal(t, PreviewID, tree.HitTest(50, 20).ID)
	require.Zero(t, bus.Count(events.PointerDown))
	require.Equal(t, "Статья", s.Title())
}

func TestArticleScreenOpenLayout(t *testing.T) {
	s, bus, tree := newArticleScreen(t)

	s.TogglePanel()
	view := render(s, tree)
	require.Contains(t, view, formHeading)
	require.Contains(t, view, "Применить")

	panel := tree.Find(PanelID)
	require.Equal(t, panelMaxWidth+components.ArrowButtonWidth, panel.Rect.W)
	for _, id := range []string{fontFamilyID, fontSizeID, fontColorID, backgroundColorID, contentWidthID, resetID, applyID, components.ArrowButtonID} {
		n := tree.Find(id)
		require.NotNil(t, n, id)
		require.True(t, panel.Contains(n), id)
	}
	require.Equal(t, 1, bus.Count(events.PointerDown))
}

func TestArticleScreenStagedTitle(t *testing.T) {
	s, _, _ := newArticleScreen(t)

	s.TogglePanel()
	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, article.FontSizes[1], s.Staged().FontSize)
	require.False(t, s.CanExit())
	require.Equal(t, "Статья (не применено)", s.Title())

	s.Apply()
	require.True(t, s.CanExit())
	require.Equal(t, article.FontSizes[1], s.Applied().FontSize)
}

func TestArticleScreenOnExitClosesPanel(t *testing.T) {
	s, bus, _ := newArticleScreen(t)

	s.TogglePanel()
	require.True(t, s.panelRef.Mounted())
	s.OnExit()
	require.False(t, s.IsOpen())
	require.False(t, s.panelRef.Mounted())
	require.Zero(t, bus.Count(events.PointerDown))
}

func TestArticleScreenEnterOnToggle(t *testing.T) {
	s, _, _ := newArticleScreen(t)

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, s.IsOpen())
	require.Equal(t, focusFontFamily, s.focus)

	s.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusToggle, s.focus)
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, s.IsOpen())
}

func TestArticleScreenLoadMessages(t *testing.T) {
	s, _, tree := newArticleScreen(t)

	s.Update(ArticleLoadFailedMsg{Path: "a.md", Err: errors.New("permission denied")})
	require.Contains(t, render(s, tree), "permission denied")

	s.Update(ArticleLoadedMsg{Path: "a.md", Markdown: "Обновлённая статья"})
	require.Contains(t, render(s, tree), "Обновлённая статья")
}

func TestHelpScreen(t *testing.T) {
	keys := NewKeyMap(config.DefaultConfig())
	require.Equal(t, []string{"ctrl+o"}, keys.TogglePanel.Keys())

	h := NewHelpScreen(styles.NewTheme("light"), keys)
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := h.View(layout.NewTree().Reset(100, 29))
	require.Contains(t, view, "параметры статьи")
	require.Contains(t, view, keys.TogglePanel.Help().Key)

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, GoBackMsg{}, cmd())
}
