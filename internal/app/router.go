package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenRouter управляет переключением между экранами
type ScreenRouter struct {
	app     *App
	history []ScreenType // История переходов для навигации назад
}

// NewScreenRouter создает новый роутер
func NewScreenRouter(app *App) *ScreenRouter {
	return &ScreenRouter{
		app:     app,
		history: make([]ScreenType, 0),
	}
}

// SwitchTo переключается на указанный экран
func (r *ScreenRouter) SwitchTo(screenType ScreenType) tea.Cmd {
	if screenType == r.app.currentScreen {
		return nil
	}
	if len(r.history) == 0 || r.history[len(r.history)-1] != r.app.currentScreen {
		r.history = append(r.history, r.app.currentScreen)
	}

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: screenType}
	}
}

// GoBack возвращается к предыдущему экрану из истории
func (r *ScreenRouter) GoBack() tea.Cmd {
	lastScreen, ok := r.pop()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: lastScreen}
	}
}

// pop забирает последний экран из истории
func (r *ScreenRouter) pop() (ScreenType, bool) {
	lastScreen, ok := r.previous()
	if ok {
		r.history = r.history[:len(r.history)-1]
	}
	return lastScreen, ok
}

// previous возвращает экран, на который вернет GoBack
func (r *ScreenRouter) previous() (ScreenType, bool) {
	if len(r.history) == 0 {
		return 0, false
	}
	return r.history[len(r.history)-1], true
}

// CanNavigateBack проверяет, можно ли вернуться назад
func (r *ScreenRouter) CanNavigateBack() bool {
	return len(r.history) > 0
}
