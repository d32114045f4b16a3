package components

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"article-tui/internal/events"
	"article-tui/internal/ui/layout"
	"article-tui/internal/ui/overlay"
	"article-tui/internal/ui/styles"
)

// Region ids of the confirmation dialog.
const (
	DialogID        = "dialog"
	dialogConfirm   = "confirm"
	dialogCancel    = "cancel"
	dialogButtonGap = 2
)

// ConfirmDialog предоставляет переиспользуемое окно подтверждения.
// Нажатие вне окна или Escape отменяют диалог.
type ConfirmDialog struct {
	Title       string
	Description string
	ConfirmText string
	CancelText  string

	theme   *styles.Theme
	dismiss *overlay.Controller
	ref     layout.Ref

	mu      sync.Mutex
	visible bool
	result  chan bool
}

// NewConfirmDialog создает диалог с дефолтными кнопками.
func NewConfirmDialog(src events.Source, theme *styles.Theme, title, description string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:       title,
		Description: description,
		ConfirmText: "Да",
		CancelText:  "Нет",
		theme:       theme,
		dismiss:     overlay.New(src),
	}
}

// Visible сообщает, показан ли диалог.
func (d *ConfirmDialog) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// Show делает диалог видимым и возвращает канал результата.
// Повторный вызов возвращает тот же канал.
func (d *ConfirmDialog) Show() <-chan bool {
	d.mu.Lock()
	if d.visible && d.result != nil {
		ch := d.result
		d.mu.Unlock()
		return ch
	}
	d.result = make(chan bool, 1)
	d.visible = true
	ch := d.result
	d.mu.Unlock()

	d.dismiss.Configure(true, d.Hide, &d.ref)
	return ch
}

// Hide скрывает диалог с отрицательным результатом.
func (d *ConfirmDialog) Hide() {
	d.respond(false)
}

// Dispose скрывает диалог и снимает подписки.
func (d *ConfirmDialog) Dispose() {
	d.respond(false)
	d.dismiss.Close()
}

// Update обрабатывает нажатия клавиш и кнопок.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.Visible() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			d.respond(true)
		case "n":
			d.respond(false)
		}
	case ClickMsg:
		_, part := ownerOf(msg.Target)
		switch part {
		case dialogConfirm:
			d.respond(true)
		case dialogCancel:
			d.respond(false)
		}
	}
	return nil
}

// View отрисовывает диалог по центру области width x height и регистрирует
// его области.
func (d *ConfirmDialog) View(parent *layout.Node, width, height int) string {
	d.mu.Lock()
	visible := d.visible
	d.mu.Unlock()
	if !visible {
		d.ref.Clear()
		return ""
	}

	t := d.theme
	confirm := t.ButtonPrimaryStyle.Render(d.ConfirmText + " (y)")
	cancel := t.ButtonStyle.Render(d.CancelText + " (n)")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirm, lipgloss.NewStyle().Width(dialogButtonGap).Render(""), cancel)
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.TitleStyle.Render(d.Title),
		"",
		t.TextStyle.Render(d.Description),
		"",
		buttons,
	)
	view := t.DialogStyle.Render(body)

	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x, y := max(0, (width-w)/2), max(0, (height-h)/2)
	if parent != nil {
		node := parent.Add(DialogID, layout.Rect{X: x, Y: y, W: w, H: h}, nil)
		// Рамка и отступы DialogStyle: 1 + 1 сверху, 1 + 2 слева.
		by := y + 2 + lipgloss.Height(body) - lipgloss.Height(buttons)
		bx := x + 3
		node.Add(partID(DialogID, dialogConfirm), layout.Rect{X: bx, Y: by, W: lipgloss.Width(confirm), H: lipgloss.Height(confirm)}, nil)
		cx := bx + lipgloss.Width(confirm) + dialogButtonGap
		node.Add(partID(DialogID, dialogCancel), layout.Rect{X: cx, Y: by, W: lipgloss.Width(cancel), H: lipgloss.Height(cancel)}, nil)
		d.ref.Set(node)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}

func (d *ConfirmDialog) respond(value bool) {
	d.mu.Lock()
	if !d.visible && d.result == nil {
		d.mu.Unlock()
		return
	}
	ch := d.result
	d.visible = false
	d.result = nil
	d.mu.Unlock()

	d.dismiss.Configure(false, d.Hide, &d.ref)
	if ch != nil {
		select {
		case ch <- value:
		default:
		}
	}
}

// ClickMsg доставляет нажатие мыши компоненту, в чью область оно попало.
type ClickMsg struct {
	X, Y   int
	Target *layout.Node
}
