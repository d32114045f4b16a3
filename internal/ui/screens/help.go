package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

// HelpScreen lists every key binding.
type HelpScreen struct {
	BaseScreen

	keys  KeyMap
	help  help.Model
	theme *styles.Theme
}

// NewHelpScreen creates the help screen for a key map.
func NewHelpScreen(theme *styles.Theme, keys KeyMap) *HelpScreen {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = theme.HighlightStyle
	h.Styles.FullDesc = theme.TextStyle
	h.Styles.FullSeparator = theme.MutedStyle
	h.Styles.ShortKey = theme.HighlightStyle
	h.Styles.ShortDesc = theme.MutedStyle

	return &HelpScreen{
		BaseScreen: NewBaseScreen("Справка"),
		keys:       keys,
		help:       h,
		theme:      theme,
	}
}

// Init ничего не делает.
func (hs *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update tracks the window width for the help columns and leaves on Esc.
func (hs *HelpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		hs.SetSize(m.Width, m.Height-1)
		hs.help.Width = m.Width
	case tea.KeyMsg:
		if m.String() == "esc" || m.String() == "q" {
			return hs, func() tea.Msg { return GoBackMsg{} }
		}
	}
	return hs, nil
}

// View renders the heading, the toggle hint and the full key map.
func (hs *HelpScreen) View(root *layout.Node) string {
	if root != nil {
		root.Add("help", layout.Rect{W: hs.Width(), H: hs.Height()}, nil)
	}
	var b strings.Builder
	b.WriteString(hs.theme.TitleStyle.Render("Параметры статьи"))
	b.WriteString("\n\n")
	b.WriteString(hs.theme.MutedStyle.Render("Кнопка ▶ слева: " + components.ArrowButtonLabel))
	b.WriteString("\n")
	b.WriteString(hs.theme.MutedStyle.Render("Нажатие вне панели или Esc закрывает её."))
	b.WriteString("\n\n")
	b.WriteString(hs.help.View(hs.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// ShortHelp returns quick help line.
func (hs *HelpScreen) ShortHelp() string {
	return "Esc/Q: Назад"
}

// ShortView renders the one-line key summary for the status bar.
func (hs *HelpScreen) ShortView() string {
	h := hs.help
	h.ShowAll = false
	return h.View(hs.keys)
}
