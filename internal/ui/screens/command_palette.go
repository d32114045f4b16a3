package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/events"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/overlay"
	"article-tui/internal/ui/styles"
)

// PaletteID is the region id of the palette box.
const PaletteID = "palette"

const paletteMaxWidth = 60

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandExecuteMsg сообщает приложению, какую команду нужно выполнить.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg сигнал закрытия палитры без выбора.
type CommandPaletteClosedMsg struct{}

// CommandPaletteScreen отображает список команд с фильтром. Нажатие вне
// палитры или Escape закрывают ее.
type CommandPaletteScreen struct {
	BaseScreen

	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int

	theme     *styles.Theme
	ref       layout.Ref
	dismiss   *overlay.Controller
	dismissed bool
}

// NewCommandPaletteScreen создает палитру над списком команд.
func NewCommandPaletteScreen(src events.Source, theme *styles.Theme, fetch CommandFetcher) *CommandPaletteScreen {
	ti := textinput.New()
	ti.Placeholder = "Поиск команды"
	ti.Prompt = "> "
	ti.Focus()

	return &CommandPaletteScreen{
		BaseScreen: NewBaseScreen("Команды"),
		fetch:      fetch,
		filter:     ti,
		theme:      theme,
		dismiss:    overlay.New(src),
	}
}

func (ps *CommandPaletteScreen) Init() tea.Cmd {
	ps.refresh()
	return nil
}

// OnEnter обновляет список и начинает слушать закрытие.
func (ps *CommandPaletteScreen) OnEnter() tea.Cmd {
	ps.refresh()
	ps.filter.SetValue("")
	ps.selected = 0
	ps.applyFilter()
	ps.dismissed = false
	ps.dismiss.Configure(true, ps.requestClose, &ps.ref)
	return nil
}

// OnExit перестает слушать закрытие.
func (ps *CommandPaletteScreen) OnExit() tea.Cmd {
	ps.dismiss.Configure(false, ps.requestClose, &ps.ref)
	ps.ref.Clear()
	ps.dismissed = false
	return nil
}

// Dispose снимает подписки.
func (ps *CommandPaletteScreen) Dispose() {
	ps.dismiss.Close()
}

func (ps *CommandPaletteScreen) requestClose() {
	ps.dismissed = true
	ps.dismiss.Configure(false, ps.requestClose, &ps.ref)
}

func (ps *CommandPaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if ps.dismissed {
		switch msg.(type) {
		case tea.KeyMsg, components.ClickMsg:
			ps.dismissed = false
			return ps, func() tea.Msg { return CommandPaletteClosedMsg{} }
		}
	}

	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.SetSize(m.Width, m.Height-1)
		return ps, nil
	case components.ClickMsg:
		if m.Target == nil || m.Target.ID != PaletteID+"/option" {
			return ps, nil
		}
		if idx, ok := m.Target.Data.(int); ok {
			ps.selected = idx
			return ps, ps.execute()
		}
		return ps, nil
	case tea.KeyMsg:
		switch m.String() {
		case "up", "shift+tab":
			if ps.selected > 0 {
				ps.selected--
			}
			return ps, nil
		case "down", "tab":
			if ps.selected < len(ps.filtered)-1 {
				ps.selected++
			}
			return ps, nil
		case "enter":
			return ps, ps.execute()
		}
		before := ps.filter.Value()
		var cmd tea.Cmd
		ps.filter, cmd = ps.filter.Update(m)
		if ps.filter.Value() != before {
			ps.applyFilter()
		}
		return ps, cmd
	}
	return ps, nil
}

func (ps *CommandPaletteScreen) execute() tea.Cmd {
	if ps.selected < 0 || ps.selected >= len(ps.filtered) {
		return nil
	}
	entry := ps.filtered[ps.selected]
	if !entry.Enabled {
		return nil
	}
	return func() tea.Msg { return CommandExecuteMsg{ID: entry.ID} }
}

// View draws the palette box in the middle of the screen.
func (ps *CommandPaletteScreen) View(root *layout.Node) string {
	width := min(paletteMaxWidth, max(20, ps.Width()-4))
	t := ps.theme
	box := t.DialogStyle.Width(width - t.DialogStyle.GetHorizontalBorderSize())
	inner := width - box.GetHorizontalFrameSize()
	ps.filter.Width = max(1, inner-lipgloss.Width(ps.filter.Prompt)-1)

	lines := []string{ps.filter.View(), ""}
	if len(ps.filtered) == 0 {
		lines = append(lines, t.MutedStyle.Render("Нет подходящих команд"))
	}
	for i, entry := range ps.filtered {
		style := t.OptionStyle
		if !entry.Enabled {
			style = style.Faint(true)
		}
		if i == ps.selected {
			style = t.OptionActiveStyle
		}
		title := entry.Title
		if entry.Key != "" {
			title += "  [" + entry.Key + "]"
		}
		lines = append(lines, style.Width(inner).Render(title))
	}
	view := box.Render(strings.Join(lines, "\n"))

	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x, y := max(0, (ps.Width()-w)/2), max(0, (ps.Height()-h)/2)
	if root != nil {
		node := root.Add(PaletteID, layout.Rect{X: x, Y: y, W: w, H: h}, nil)
		ox := x + box.GetBorderLeftSize() + box.GetPaddingLeft()
		oy := y + box.GetBorderTopSize() + box.GetPaddingTop() + 2
		for i := range ps.filtered {
			node.Add(PaletteID+"/option", layout.Rect{X: ox, Y: oy + i, W: inner, H: 1}, i)
		}
		ps.ref.Set(node)
	}
	return lipgloss.Place(ps.Width(), ps.Height(), lipgloss.Center, lipgloss.Center, view)
}

// ShortHelp returns quick help line.
func (ps *CommandPaletteScreen) ShortHelp() string {
	return "↑↓: Выбор • Enter: Выполнить • Esc: Закрыть"
}

func (ps *CommandPaletteScreen) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

func (ps *CommandPaletteScreen) applyFilter() {
	filter := strings.ToLower(strings.TrimSpace(ps.filter.Value()))
	filtered := make([]CommandEntry, 0, len(ps.entries))
	for _, entry := range ps.entries {
		if filter == "" || strings.Contains(strings.ToLower(entry.Title), filter) || strings.Contains(strings.ToLower(entry.Key), filter) {
			filtered = append(filtered, entry)
		}
	}
	ps.filtered = filtered
	if len(ps.filtered) == 0 {
		ps.selected = -1
	} else if ps.selected >= len(ps.filtered) {
		ps.selected = len(ps.filtered) - 1
	} else if ps.selected < 0 {
		ps.selected = 0
	}
}
