package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"article-tui/internal/events"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/styles"
)

func newPalette(t *testing.T, entries ...CommandEntry) (*CommandPaletteScreen, *events.Bus, *layout.Tree) {
	t.Helper()

	bus := events.NewBus()
	ps := NewCommandPaletteScreen(bus, styles.NewTheme("dark"), func() []CommandEntry { return entries })
	t.Cleanup(ps.Dispose)
	ps.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	ps.Init()
	ps.OnEnter()

	tree := layout.NewTree()
	ps.View(tree.Reset(100, 30))
	return ps, bus, tree
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommandPaletteFilterAndExecute(t *testing.T) {
	ps, _, _ := newPalette(t,
		CommandEntry{ID: "apply", Title: "Применить параметры", Enabled: true},
		CommandEntry{ID: "reset", Title: "Сбросить параметры", Enabled: true},
	)
	require.Len(t, ps.filtered, 2)

	for _, r := range "сброс" {
		ps.Update(runes(string(r)))
	}
	require.Len(t, ps.filtered, 1)

	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, CommandExecuteMsg{ID: "reset"}, cmd())
}

func TestCommandPaletteSkipsDisabled(t *testing.T) {
	ps, _, _ := newPalette(t, CommandEntry{ID: "apply", Title: "Применить", Enabled: false})
	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
}

func TestCommandPaletteClickOption(t *testing.T) {
	ps, bus, tree := newPalette(t,
		CommandEntry{ID: "apply", Title: "Применить", Enabled: true},
		CommandEntry{ID: "reset", Title: "Сбросить", Enabled: true},
	)

	option := tree.Root().Find(PaletteID).Children()[1]
	require.Equal(t, PaletteID+"/option", option.ID)

	target := tree.HitTest(option.Rect.X, option.Rect.Y)
	bus.Publish(events.PointerDownEvent{X: option.Rect.X, Y: option.Rect.Y, Target: target})
	_, cmd := ps.Update(components.ClickMsg{X: option.Rect.X, Y: option.Rect.Y, Target: target})
	require.NotNil(t, cmd)
	require.Equal(t, CommandExecuteMsg{ID: "reset"}, cmd())
	require.Equal(t, 1, bus.Count(events.PointerDown))
}

func TestCommandPaletteDismissedOutside(t *testing.T) {
	ps, bus, tree := newPalette(t, CommandEntry{ID: "apply", Title: "Применить", Enabled: true})
	require.Equal(t, 1, bus.Count(events.PointerDown))
	require.Equal(t, 1, bus.Count(events.KeyDown))

	target := tree.HitTest(0, 0)
	bus.Publish(events.PointerDownEvent{X: 0, Y: 0, Target: target})
	require.Zero(t, bus.Count(events.PointerDown))

	// a resize does not report the dismissal
	_, cmd := ps.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	require.Nil(t, cmd)

	_, cmd = ps.Update(components.ClickMsg{X: 0, Y: 0, Target: target})
	require.NotNil(t, cmd)
	require.Equal(t, CommandPaletteClosedMsg{}, cmd())
}

func TestCommandPaletteDismissedByEscape(t *testing.T) {
	ps, bus, _ := newPalette(t)
	require.Contains(t, ps.View(nil), "Нет подходящих команд")

	bus.Publish(events.KeyDownEvent{Key: events.KeyEscape})
	require.Zero(t, bus.Count(events.KeyDown))

	_, cmd := ps.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, CommandPaletteClosedMsg{}, cmd())

	ps.OnExit()
	ps.OnEnter()
	require.Equal(t, 1, bus.Count(events.KeyDown))
}
