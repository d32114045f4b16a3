package article

import (
	"container/list"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

//go:embed sample.md
var sampleMarkdown string

// Sample returns the built-in article shown when no file is given.
func Sample() string {
	return sampleMarkdown
}

const maxRendererCacheEntries = 8

// Renderer turns markdown into the styled article block. Glamour renderers
// are cached per wrap width; the notty style is used so colours come only
// from the article state.
type Renderer struct {
	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
	order *list.List
	nodes map[int]*list.Element
}

// NewRenderer creates a renderer with an empty cache.
func NewRenderer() *Renderer {
	return &Renderer{
		cache: make(map[int]*glamour.TermRenderer),
		order: list.New(),
		nodes: make(map[int]*list.Element),
	}
}

// Render lays the markdown out for the state inside available columns.
func (r *Renderer) Render(markdown string, state State, available int) (string, error) {
	cols := Columns(state.ContentWidth, available)
	scale := Scale(state.FontSize)
	wrap := cols - 2*(2*scale+1)
	if wrap < 10 {
		wrap = 10
	}

	tr, err := r.renderer(wrap)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	body := tidy(out, scale >= 2)
	return state.Style(cols).Render(body), nil
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.cache[width]; ok {
		r.order.MoveToBack(r.nodes[width])
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.cache[width] = tr
	r.nodes[width] = r.order.PushBack(width)

	for len(r.cache) > maxRendererCacheEntries {
		oldest := r.order.Front()
		w, _ := oldest.Value.(int)
		r.order.Remove(oldest)
		delete(r.cache, w)
		delete(r.nodes, w)
	}
	return tr, nil
}

// tidy drops glamour's trailing padding and outer blank lines and optionally
// spreads lines apart for large font sizes.
func tidy(rendered string, spaced bool) string {
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if !spaced {
		return strings.Join(lines, "\n")
	}

	out := make([]string, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 && line != "" && lines[i-1] != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
