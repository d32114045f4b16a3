package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/article"
	"article-tui/internal/events"
	"article-tui/internal/logger"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/overlay"
	"article-tui/internal/ui/styles"
)

// ArticleScreen shows the article preview and the side panel with its
// parameters form. Selections made in the form are staged until applied.
type ArticleScreen struct {
	BaseScreen

	bus      *events.Bus
	log      *logger.Logger
	theme    *styles.Theme
	renderer *article.Renderer

	path     string
	markdown string
	loadErr  error
	preview  previewCache

	defaults article.State
	applied  article.State

	open     bool
	focus    articleFocus
	panelRef layout.Ref
	panel    *overlay.Controller

	toggle          components.ArrowButton
	fontFamily      *components.Select
	fontSize        *components.RadioGroup
	fontColor       *components.Select
	backgroundColor *components.Select
	contentWidth    *components.Select
	reset           *components.Button
	apply           *components.Button
}

// NewArticleScreen creates the screen with the panel closed and the form
// holding defaults.
func NewArticleScreen(bus *events.Bus, theme *styles.Theme, log *logger.Logger, defaults article.State, path, markdown string) *ArticleScreen {
	s := &ArticleScreen{
		BaseScreen: NewBaseScreen("Статья"),
		bus:        bus,
		log:        log.With("article"),
		theme:      theme,
		renderer:   article.NewRenderer(),
		path:       path,
		markdown:   markdown,
		defaults:   defaults,
		applied:    defaults,
		panel:      overlay.New(bus),
		toggle:     components.ArrowButton{Theme: theme},
	}

	s.fontFamily = components.NewSelect(bus, theme, fontFamilyID, "Шрифт", "Выберите шрифт",
		article.FontFamilies, defaults.FontFamily, s.logSelection("font_family"))
	s.fontSize = components.NewRadioGroup(theme, fontSizeID, "Размер шрифта",
		article.FontSizes, defaults.FontSize, s.logSelection("font_size"))
	s.fontColor = components.NewSelect(bus, theme, fontColorID, "Цвет шрифта", "Выберите цвет шрифта",
		article.FontColors, defaults.FontColor, s.logSelection("font_color"))
	s.backgroundColor = components.NewSelect(bus, theme, backgroundColorID, "Цвет фона", "Выберите цвет фона",
		article.BackgroundColors, defaults.BackgroundColor, s.logSelection("background_color"))
	s.contentWidth = components.NewSelect(bus, theme, contentWidthID, "Ширина контента", "Выберите ширину контента",
		article.ContentWidths, defaults.ContentWidth, s.logSelection("content_width"))
	s.reset = components.NewButton(theme, resetID, "Сбросить", false)
	s.apply = components.NewButton(theme, applyID, "Применить", true)
	return s
}

// Init ничего не запускает: статья уже загружена.
func (s *ArticleScreen) Init() tea.Cmd {
	return nil
}

// Update routes input and keeps the panel's dismissal in line with its
// open flag after every message.
func (s *ArticleScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	defer s.syncPanel()

	switch m := msg.(type) {
	case tea.KeyMsg:
		s.handleKey(m)
	case components.ClickMsg:
		s.handleClick(m)
	case tea.WindowSizeMsg:
		s.SetSize(m.Width, m.Height-1)
	case ArticleLoadedMsg:
		s.markdown = m.Markdown
		s.path = m.Path
		s.loadErr = nil
		s.preview = previewCache{}
		s.log.WithFields(map[string]any{"path": m.Path}).Info("article reloaded")
	case ArticleLoadFailedMsg:
		s.loadErr = m.Err
		s.log.WithFields(map[string]any{"path": m.Path}).Error(m.Err, "article reload failed")
	}
	return s, nil
}

// Title marks staged but unapplied selections.
func (s *ArticleScreen) Title() string {
	if s.HasUnappliedChanges() {
		return "Статья (не применено)"
	}
	return "Статья"
}

// ShortHelp returns quick help line.
func (s *ArticleScreen) ShortHelp() string {
	if s.open {
		return "Tab/↑↓: Поле • Enter: Выбрать • ←→: Размер • Esc: Закрыть"
	}
	return "Enter: Параметры • F1: Справка"
}

// CanExit is false while the form holds unapplied selections.
func (s *ArticleScreen) CanExit() bool {
	return !s.HasUnappliedChanges()
}

// OnExit closes the panel and unmounts it; staged selections are kept.
func (s *ArticleScreen) OnExit() tea.Cmd {
	s.ClosePanel()
	s.panelRef.Clear()
	return nil
}

// IsOpen reports whether the side panel is shown.
func (s *ArticleScreen) IsOpen() bool {
	return s.open
}

// Applied returns the parameters the preview is rendered with.
func (s *ArticleScreen) Applied() article.State {
	return s.applied
}

// Staged returns the parameters currently selected in the form.
func (s *ArticleScreen) Staged() article.State {
	return article.State{
		FontFamily:      s.fontFamily.Selected(),
		FontSize:        s.fontSize.Selected(),
		FontColor:       s.fontColor.Selected(),
		BackgroundColor: s.backgroundColor.Selected(),
		ContentWidth:    s.contentWidth.Selected(),
	}
}

// HasUnappliedChanges reports whether the form differs from the preview.
func (s *ArticleScreen) HasUnappliedChanges() bool {
	return s.Staged() != s.applied
}

// Dispose closes the panel and drops every input subscription.
func (s *ArticleScreen) Dispose() {
	s.open = false
	for _, sel := range s.selects() {
		sel.Dispose()
	}
	s.panelRef.Clear()
	s.panel.Close()
}

func (s *ArticleScreen) selects() []*components.Select {
	return []*components.Select{s.fontFamily, s.fontColor, s.backgroundColor, s.contentWidth}
}

func (s *ArticleScreen) logSelection(field string) func(article.Option) {
	return func(opt article.Option) {
		s.log.WithFields(map[string]any{"field": field, "title": opt.Title}).Debug("selection changed")
	}
}
