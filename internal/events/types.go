package events

import (
	"article-tui/internal/article"
	"article-tui/internal/ui/layout"
)

// Типы событий
const (
	// PointerDown fires on every left mouse press anywhere on screen.
	PointerDown = "pointer.down"
	// KeyDown fires on every key press.
	KeyDown = "key.down"

	ArticleApplied = "article.applied"
	ArticleReset   = "article.reset"
)

// KeyEscape is the key-down name of the Escape key.
const KeyEscape = "Escape"

// PointerDownEvent нажатие кнопки мыши.
// Target is the deepest region under the pointer in the last rendered frame.
type PointerDownEvent struct {
	X, Y   int
	Target *layout.Node
}

func (PointerDownEvent) Type() string { return PointerDown }

// KeyDownEvent нажатие клавиши. Key uses DOM key names ("Escape", "Enter", "a").
type KeyDownEvent struct {
	Key string
}

func (KeyDownEvent) Type() string { return KeyDown }

// ArticleAppliedEvent параметры статьи применены из формы
type ArticleAppliedEvent struct {
	State article.State
}

func (ArticleAppliedEvent) Type() string { return ArticleApplied }

// ArticleResetEvent параметры статьи сброшены к значениям по умолчанию
type ArticleResetEvent struct {
	State article.State
}

func (ArticleResetEvent) Type() string { return ArticleReset }
