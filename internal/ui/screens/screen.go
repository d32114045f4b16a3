package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/ui/layout"
)

// Screen интерфейс для всех экранов приложения
type Screen interface {
	// Bubble Tea методы. View регистрирует области экрана под root,
	// чтобы приложение могло сопоставить нажатие мыши с узлом.
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View(root *layout.Node) string

	// Методы жизненного цикла экрана
	OnEnter() tea.Cmd // Вызывается при входе на экран
	OnExit() tea.Cmd  // Вызывается при выходе с экрана
	CanExit() bool    // Можно ли покинуть экран без потери изменений

	// Метаданные экрана
	Title() string     // Заголовок экрана для статус-бара
	ShortHelp() string // Краткая справка по горячим клавишам
}

// BaseScreen базовая реализация экрана с общей функциональностью
type BaseScreen struct {
	width  int
	height int
	title  string
}

// NewBaseScreen создает базовый экран
func NewBaseScreen(title string) BaseScreen {
	return BaseScreen{
		title: title,
	}
}

// SetSize устанавливает размеры экрана
func (bs *BaseScreen) SetSize(width, height int) {
	bs.width = width
	bs.height = height
}

// Width возвращает ширину экрана
func (bs *BaseScreen) Width() int {
	return bs.width
}

// Height возвращает высоту экрана
func (bs *BaseScreen) Height() int {
	return bs.height
}

// Title возвращает заголовок экрана
func (bs *BaseScreen) Title() string {
	return bs.title
}

// CanExit базовая реализация - можно всегда выйти
func (bs *BaseScreen) CanExit() bool {
	return true
}

// OnEnter базовая реализация - ничего не делаем
func (bs *BaseScreen) OnEnter() tea.Cmd {
	return nil
}

// OnExit базовая реализация - ничего не делаем
func (bs *BaseScreen) OnExit() tea.Cmd {
	return nil
}

// ShortHelp базовая реализация справки
func (bs *BaseScreen) ShortHelp() string {
	return "F1: Help • Ctrl+C: Quit"
}
