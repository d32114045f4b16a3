package app

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/config"
	"article-tui/internal/platform"
	"article-tui/internal/ui/screens"
)

// Command describes an executable action, optionally bound to a key and/or screen.
type Command struct {
	ID      string
	Title   string
	Key     string
	Screen  *ScreenType // nil → global
	Enabled func(*App) bool
	Run     func(*App) tea.Cmd
}

// CommandRegistry stores commands and resolves them by key and screen.
type CommandRegistry struct {
	byID  map[string]*Command
	byKey map[string][]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byID:  make(map[string]*Command),
		byKey: make(map[string][]*Command),
	}
}

func (r *CommandRegistry) Register(cmd *Command) {
	if cmd == nil || cmd.ID == "" {
		return
	}
	r.byID[cmd.ID] = cmd
	if cmd.Key != "" {
		canonical := lookupKey(cmd.Key)
		r.byKey[canonical] = append(r.byKey[canonical], cmd)
	}
}

// Resolve returns the first matching command for key and screen.
// Screen-specific commands win over global ones.
func (r *CommandRegistry) Resolve(key string, screen ScreenType) *Command {
	cmds := r.byKey[lookupKey(key)]
	var global *Command
	for _, c := range cmds {
		if c.Screen == nil {
			if global == nil {
				global = c
			}
			continue
		}
		if *c.Screen == screen {
			return c
		}
	}
	return global
}

// Get returns command by id.
func (r *CommandRegistry) Get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

// All returns commands sorted by title.
func (r *CommandRegistry) All() []*Command {
	list := make([]*Command, 0, len(r.byID))
	for _, cmd := range r.byID {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Title < list[j].Title
	})
	return list
}

// Run executes command by id if enabled and available on the current screen.
func (r *CommandRegistry) Run(id string, app *App) tea.Cmd {
	cmd := r.Get(id)
	if cmd == nil || cmd.Run == nil {
		return nil
	}
	if !cmd.availableOn(app.currentScreen) {
		return nil
	}
	if cmd.Enabled != nil && !cmd.Enabled(app) {
		return nil
	}
	return cmd.Run(app)
}

func (c *Command) availableOn(screen ScreenType) bool {
	return c.Screen == nil || *c.Screen == screen
}

func lookupKey(key string) string {
	if canonical := platform.CanonicalKeyForLookup(key); canonical != "" {
		return canonical
	}
	return key
}

// Commands reachable only from the palette.
const (
	commandApply = "apply_article"
	commandReset = "reset_article"
)

// registerCommands binds the configured global keys.
func (a *App) registerCommands() {
	articleOnly := ArticleScreen

	a.commands.Register(&Command{
		ID:     config.ActionTogglePanel,
		Title:  "Открыть/закрыть параметры статьи",
		Key:    a.config.Key(config.ActionTogglePanel),
		Screen: &articleOnly,
		Run: func(app *App) tea.Cmd {
			app.article.TogglePanel()
			return nil
		},
	})
	a.commands.Register(&Command{
		ID:    commandApply,
		Title: "Применить параметры статьи",
		Run: func(app *App) tea.Cmd {
			app.article.Apply()
			return nil
		},
	})
	a.commands.Register(&Command{
		ID:    commandReset,
		Title: "Сбросить параметры статьи",
		Run: func(app *App) tea.Cmd {
			app.article.Reset()
			return nil
		},
	})
	a.commands.Register(&Command{
		ID:    config.ActionPalette,
		Title: "Команды",
		Key:   a.config.Key(config.ActionPalette),
		Run: func(app *App) tea.Cmd {
			return app.router.SwitchTo(PaletteScreen)
		},
	})
	a.commands.Register(&Command{
		ID:    config.ActionHelp,
		Title: "Справка",
		Key:   a.config.Key(config.ActionHelp),
		Run: func(app *App) tea.Cmd {
			if app.currentScreen == HelpScreen && app.router.CanNavigateBack() {
				return app.router.GoBack()
			}
			return app.router.SwitchTo(HelpScreen)
		},
	})
	a.commands.Register(&Command{
		ID:    config.ActionQuit,
		Title: "Выход",
		Key:   a.config.Key(config.ActionQuit),
		Run: func(app *App) tea.Cmd {
			return app.requestQuit()
		},
	})
}

// paletteEntries lists every command except the palette itself. Commands
// bound to another screen than the one the palette was opened from are
// shown disabled.
func (a *App) paletteEntries() []screens.CommandEntry {
	origin, ok := a.router.previous()
	if !ok {
		origin = a.currentScreen
	}

	var entries []screens.CommandEntry
	for _, cmd := range a.commands.All() {
		if cmd.ID == config.ActionPalette {
			continue
		}
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.Title,
			Key:     platform.DisplayKey(cmd.Key),
			Enabled: cmd.availableOn(origin) && (cmd.Enabled == nil || cmd.Enabled(a)),
		})
	}
	return entries
}
