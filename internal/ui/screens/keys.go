package screens

import (
	"github.com/charmbracelet/bubbles/key"

	"article-tui/internal/config"
	"article-tui/internal/platform"
)

// KeyMap lists the bindings shown in help. Global actions come from the
// configured keybindings; the rest are fixed.
type KeyMap struct {
	TogglePanel key.Binding
	Next        key.Binding
	Prev        key.Binding
	Activate    key.Binding
	Change      key.Binding
	Close       key.Binding
	Palette     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// NewKeyMap builds the key map from the configuration.
func NewKeyMap(cfg *config.Config) KeyMap {
	bound := func(action, desc string) key.Binding {
		k := cfg.Key(action)
		return key.NewBinding(key.WithKeys(k), key.WithHelp(platform.DisplayKey(k), desc))
	}
	return KeyMap{
		TogglePanel: bound(config.ActionTogglePanel, "параметры статьи"),
		Next:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("Tab/↓", "следующее поле")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("Shift+Tab/↑", "предыдущее поле")),
		Activate:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("Enter/Space", "выбрать")),
		Change:      key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "размер шрифта")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "закрыть")),
		Palette:     bound(config.ActionPalette, "команды"),
		Help:        bound(config.ActionHelp, "справка"),
		Quit:        bound(config.ActionQuit, "выход"),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePanel, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePanel, k.Close},
		{k.Next, k.Prev, k.Activate, k.Change},
		{k.Palette, k.Help, k.Quit},
	}
}
