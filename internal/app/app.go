package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/article"
	"article-tui/internal/config"
	"article-tui/internal/events"
	"article-tui/internal/logger"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/screens"
	"article-tui/internal/ui/styles"
)

// ScreenType определяет тип экрана
type ScreenType int

const (
	ArticleScreen ScreenType = iota
	HelpScreen
	PaletteScreen
)

// Options собирает зависимости приложения.
type Options struct {
	Config *config.Config
	Logger *logger.Logger
	// Bus is created when nil.
	Bus *events.Bus

	ArticlePath string
	Markdown    string
}

// App представляет главное приложение
type App struct {
	config        *config.Config
	currentScreen ScreenType
	screens       map[ScreenType]screens.Screen
	router        *ScreenRouter
	commands      *CommandRegistry
	bus           *events.Bus
	tree          *layout.Tree
	theme         *styles.Theme
	keys          screens.KeyMap
	log           *logger.Logger

	article    *screens.ArticleScreen
	palette    *screens.CommandPaletteScreen
	quitDialog *components.ConfirmDialog
	subs       []*events.Subscription

	lastError error
	closed    bool
}

// New создает новое приложение
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bus := opts.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	app := &App{
		config:   cfg,
		screens:  make(map[ScreenType]screens.Screen),
		commands: NewCommandRegistry(),
		bus:      bus,
		tree:     layout.NewTree(),
		theme:    styles.NewTheme(cfg.Theme),
		keys:     screens.NewKeyMap(cfg),
		log:      log.With("app"),
	}
	app.router = NewScreenRouter(app)

	defaults := article.StateFrom(cfg.ArticleDefaults())
	app.article = screens.NewArticleScreen(bus, app.theme, log, defaults, opts.ArticlePath, opts.Markdown)
	app.screens[ArticleScreen] = app.article
	app.quitDialog = components.NewConfirmDialog(bus, app.theme,
		"Выйти?", "Выбранные параметры не применены к статье.")

	app.registerCommands()
	app.subscribe()
	return app
}

// Init инициализирует приложение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	a.currentScreen = ArticleScreen
	a.log.Info("application started")
	if screen := a.getCurrentScreen(); screen != nil {
		return screen.Init()
	}
	return nil
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case ScreenSwitchMsg:
		return a.handleScreenSwitch(msg)
	case screens.GoBackMsg, screens.CommandPaletteClosedMsg:
		return a, a.router.GoBack()
	case screens.CommandExecuteMsg:
		return a.handleCommandExecute(msg)
	case ErrorMsg:
		return a.handleError(msg)
	case quitConfirmedMsg:
		if !msg.confirmed {
			return a, nil
		}
		a.Close()
		return a, tea.Quit
	case screens.ArticleLoadedMsg, screens.ArticleLoadFailedMsg:
		// Перезагрузка статьи нужна экрану статьи, даже если открыт другой.
		_, cmd := a.article.Update(msg)
		return a, cmd
	}

	return a, a.updateCurrent(msg)
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	width, height := a.theme.Width(), a.theme.Height()
	root := a.tree.Reset(width, height)

	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return "Loading..."
	}

	view := currentScreen.View(root)
	if a.quitDialog.Visible() {
		view = a.quitDialog.View(root, width, max(0, height-1))
	}
	if height > 1 {
		view = lipgloss.NewStyle().Height(height - 1).MaxHeight(height - 1).Render(view)
	}

	return fmt.Sprintf("%s\n%s", view, a.renderStatusBar())
}

// Close снимает все подписки. Повторный вызов ничего не делает.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
	a.subs = nil
	a.quitDialog.Dispose()
	if a.palette != nil {
		a.palette.Dispose()
	}
	a.article.Dispose()
	a.log.Info("application closed")
}

// Bus returns the event bus the app publishes input on.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.currentScreen]
}

func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return nil
	}
	updatedScreen, cmd := currentScreen.Update(msg)
	a.screens[a.currentScreen] = updatedScreen
	return cmd
}

// createScreen создает экран по типу
func (a *App) createScreen(screenType ScreenType) screens.Screen {
	switch screenType {
	case ArticleScreen:
		return a.article
	case HelpScreen:
		return screens.NewHelpScreen(a.theme, a.keys)
	case PaletteScreen:
		a.palette = screens.NewCommandPaletteScreen(a.bus, a.theme, a.paletteEntries)
		return a.palette
	default:
		return nil
	}
}

// subscribe пишет в лог применение и сброс параметров статьи
func (a *App) subscribe() {
	a.subs = append(a.subs,
		a.bus.Subscribe(events.ArticleApplied, func(e events.Event) {
			if ev, ok := e.(events.ArticleAppliedEvent); ok {
				a.log.WithFields(ev.State.Fields()).Info("article parameters applied")
			}
		}),
		a.bus.Subscribe(events.ArticleReset, func(e events.Event) {
			if ev, ok := e.(events.ArticleResetEvent); ok {
				a.log.WithFields(ev.State.Fields()).Info("article parameters reset")
			}
		}),
	)
}

// renderStatusBar отрисовывает статус-бар
func (a *App) renderStatusBar() string {
	parts := []string{}
	if screen := a.getCurrentScreen(); screen != nil {
		parts = append(parts, screen.Title(), screen.ShortHelp())
	}
	parts = append(parts,
		a.keys.Help.Help().Key+": справка",
		a.keys.Quit.Help().Key+": выход",
	)
	if a.lastError != nil {
		parts = append(parts, a.theme.ErrorMessage(a.lastError.Error()))
	}
	return a.theme.StatusBar(strings.Join(parts, " | "))
}

// Сообщения для приложения

// ScreenSwitchMsg сообщение о переключении экрана
type ScreenSwitchMsg struct {
	ScreenType ScreenType
}

// ErrorMsg сообщение об ошибке для статус-бара
type ErrorMsg struct {
	Error error
}

type quitConfirmedMsg struct {
	confirmed bool
}
