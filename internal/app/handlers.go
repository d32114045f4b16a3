package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/events"
	"article-tui/internal/platform"
	"article-tui/internal/ui/components"
	"article-tui/internal/ui/screens"
)

// handleKey публикует нажатие в шину, затем передает его диалогу, реестру
// команд или текущему экрану.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rawKey := msg.String()
	dialogOpen := a.quitDialog.Visible()

	a.bus.Publish(events.KeyDownEvent{Key: platform.DOMKey(rawKey)})

	if dialogOpen {
		return a, a.quitDialog.Update(msg)
	}

	// Сначала пытаемся найти команду через реестр
	if cmd := a.commands.Resolve(rawKey, a.currentScreen); cmd != nil {
		if cmd.Enabled == nil || cmd.Enabled(a) {
			return a, cmd.Run(a)
		}
		return a, nil
	}

	return a, a.updateCurrent(msg)
}

// handleMouse превращает нажатие левой кнопки в pointer-down для шины и
// клик по области для экрана. Остальные события мыши игнорируются.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	target := a.tree.HitTest(msg.X, msg.Y)
	dialogOpen := a.quitDialog.Visible()

	a.bus.Publish(events.PointerDownEvent{X: msg.X, Y: msg.Y, Target: target})

	click := components.ClickMsg{X: msg.X, Y: msg.Y, Target: target}
	if dialogOpen {
		return a, a.quitDialog.Update(click)
	}
	return a, a.updateCurrent(click)
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.theme.SetDimensions(msg.Width, msg.Height)

	// Передаем всем экранам
	var cmds []tea.Cmd
	for screenType, screen := range a.screens {
		if screen != nil {
			updatedScreen, cmd := screen.Update(msg)
			a.screens[screenType] = updatedScreen
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleScreenSwitch обрабатывает переключение экранов. Выбранные, но не
// примененные параметры сохраняются: экран статьи не пересоздается.
func (a *App) handleScreenSwitch(msg ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	if msg.ScreenType == a.currentScreen {
		return a, nil
	}

	var cmds []tea.Cmd
	if currentScreen := a.getCurrentScreen(); currentScreen != nil {
		if exit := currentScreen.OnExit(); exit != nil {
			cmds = append(cmds, exit)
		}
	}

	a.currentScreen = msg.ScreenType

	newScreen := a.screens[a.currentScreen]
	created := false
	if newScreen == nil {
		newScreen = a.createScreen(a.currentScreen)
		a.screens[a.currentScreen] = newScreen
		created = true
	}
	if newScreen == nil {
		return a, tea.Batch(cmds...)
	}

	// Новый экран должен знать геометрию окна, иначе покажет "Загрузка..."
	if a.theme.Width() > 0 && a.theme.Height() > 0 {
		updated, cmd := newScreen.Update(tea.WindowSizeMsg{Width: a.theme.Width(), Height: a.theme.Height()})
		a.screens[a.currentScreen] = updated
		newScreen = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if created {
		if init := newScreen.Init(); init != nil {
			cmds = append(cmds, init)
		}
	}
	if enter := newScreen.OnEnter(); enter != nil {
		cmds = append(cmds, enter)
	}

	return a, tea.Batch(cmds...)
}

// handleCommandExecute закрывает палитру и выполняет выбранную команду на
// экране, с которого палитра была открыта.
func (a *App) handleCommandExecute(msg screens.CommandExecuteMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if previous, ok := a.router.pop(); ok {
		_, cmd := a.handleScreenSwitch(ScreenSwitchMsg{ScreenType: previous})
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, a.commands.Run(msg.ID, a))
	return a, tea.Batch(cmds...)
}

// handleError показывает ошибку в статус-баре
func (a *App) handleError(msg ErrorMsg) (tea.Model, tea.Cmd) {
	a.lastError = msg.Error
	if msg.Error != nil {
		a.log.Error(msg.Error, "ui error")
	}
	return a, nil
}

// requestQuit выходит сразу или спрашивает подтверждение, если в форме
// остались непримененные параметры.
func (a *App) requestQuit() tea.Cmd {
	if a.article.CanExit() {
		a.Close()
		return tea.Quit
	}
	if a.quitDialog.Visible() {
		return nil
	}

	ch := a.quitDialog.Show()
	return func() tea.Msg {
		confirmed := <-ch
		return quitConfirmedMsg{confirmed: confirmed}
	}
}
