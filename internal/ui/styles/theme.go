package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme содержит все стили приложения
type Theme struct {
	// Размеры экрана
	width  int
	height int

	// Цветовая схема
	colors ColorScheme

	// Стили компонентов
	StatusBarStyle     lipgloss.Style
	TitleStyle         lipgloss.Style
	LabelStyle         lipgloss.Style
	TextStyle          lipgloss.Style
	MutedStyle         lipgloss.Style
	HighlightStyle     lipgloss.Style
	ErrorStyle         lipgloss.Style
	PanelStyle         lipgloss.Style
	ToggleStyle        lipgloss.Style
	ToggleOpenStyle    lipgloss.Style
	FieldStyle         lipgloss.Style
	FieldFocusStyle    lipgloss.Style
	OptionStyle        lipgloss.Style
	OptionActiveStyle  lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusStyle   lipgloss.Style
	ButtonPrimaryStyle lipgloss.Style
	SeparatorStyle     lipgloss.Style
	DialogStyle        lipgloss.Style
}

// ColorScheme цветовая схема
type ColorScheme struct {
	Primary     string
	Accent      string
	Background  string
	Surface     string
	Text        string
	TextDim     string
	Error       string
	Border      string
	BorderFocus string
}

// Предустановленные цветовые схемы
var (
	DarkScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Accent:      "#F59E0B", // Оранжевый
		Background:  "#0F172A", // Темно-синий
		Surface:     "#1E293B", // Темно-серый
		Text:        "#F1F5F9", // Светло-серый
		TextDim:     "#94A3B8", // Серый
		Error:       "#EF4444", // Красный
		Border:      "#334155", // Серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}

	LightScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Accent:      "#D97706", // Оранжевый
		Background:  "#FFFFFF", // Белый
		Surface:     "#F8FAFC", // Светло-серый
		Text:        "#0F172A", // Темно-синий
		TextDim:     "#64748B", // Серый
		Error:       "#DC2626", // Красный
		Border:      "#E2E8F0", // Светло-серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}
)

// NewTheme создает новую тему
func NewTheme(themeName string) *Theme {
	colors := DarkScheme
	if themeName == "light" {
		colors = LightScheme
	}

	theme := &Theme{colors: colors}
	theme.initStyles()
	return theme
}

func (t *Theme) initStyles() {
	c := t.colors

	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.Text)).
		Padding(0, 1)

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Primary)).
		Bold(true)

	t.LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextDim)).
		Bold(true)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text))

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextDim))

	t.HighlightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Error)).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(1, 2)

	t.ToggleStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.Text)).
		Bold(true)

	t.ToggleOpenStyle = t.ToggleStyle.
		Background(lipgloss.Color(c.Primary))

	t.FieldStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Foreground(lipgloss.Color(c.Text)).
		Padding(0, 1)

	t.FieldFocusStyle = t.FieldStyle.
		BorderForeground(lipgloss.Color(c.BorderFocus))

	t.OptionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Padding(0, 1)

	t.OptionActiveStyle = t.OptionStyle.
		Background(lipgloss.Color(c.Primary)).
		Foreground(lipgloss.Color(c.Background)).
		Bold(true)

	t.ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Foreground(lipgloss.Color(c.Text)).
		Padding(0, 2)

	t.ButtonFocusStyle = t.ButtonStyle.
		BorderForeground(lipgloss.Color(c.BorderFocus)).
		Bold(true)

	t.ButtonPrimaryStyle = t.ButtonStyle.
		Background(lipgloss.Color(c.Primary)).
		Foreground(lipgloss.Color(c.Background))

	t.SeparatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Border))

	t.DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2)
}

// SetDimensions устанавливает размеры экрана
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину экрана
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту экрана
func (t *Theme) Height() int {
	return t.height
}

// Panel возвращает стиль боковой панели с рамкой цвета accent.
// An empty accent keeps the scheme border.
func (t *Theme) Panel(accent string) lipgloss.Style {
	if accent == "" {
		return t.PanelStyle
	}
	return t.PanelStyle.BorderForeground(lipgloss.Color(accent))
}

// StatusBar рендерит статус-бар
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(t.width).
		Render(text)
}

// ErrorMessage рендерит сообщение об ошибке
func (t *Theme) ErrorMessage(text string) string {
	return t.ErrorStyle.Render("Error: " + text)
}
