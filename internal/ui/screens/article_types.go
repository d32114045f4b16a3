package screens

// Region ids of the article screen.
const (
	PanelID   = "panel"
	PreviewID = "preview"

	fontFamilyID      = "font-family"
	fontSizeID        = "font-size"
	fontColorID       = "font-color"
	backgroundColorID = "background-color"
	contentWidthID    = "content-width"
	resetID           = "reset"
	applyID           = "apply"
)

const (
	panelMaxWidth = 46
	panelMinWidth = 30
	formHeading   = "Задайте параметры"
)

// articleFocus is the focused control of the article screen.
type articleFocus int

const (
	focusToggle articleFocus = iota
	focusFontFamily
	focusFontSize
	focusFontColor
	focusBackground
	focusContentWidth
	focusReset
	focusApply
	focusCount
)

// ArticleLoadedMsg delivers freshly read article markdown.
type ArticleLoadedMsg struct {
	Path     string
	Markdown string
}

// ArticleLoadFailedMsg reports a failed article read.
type ArticleLoadFailedMsg struct {
	Path string
	Err  error
}
