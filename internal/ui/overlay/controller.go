// Package overlay dismisses an open overlay when the user presses the mouse
// outside of it or hits Escape.
//
// The controller never owns the open flag. The caller keeps it and calls
// Configure after every change; the controller only holds the input
// subscriptions and asks the caller to close through onClose.
//
//	ctrl := overlay.New(bus)
//	ctrl.Configure(panelOpen, closePanel, &panelRef)
//	...
//	ctrl.Close() // on teardown
package overlay

import (
	"article-tui/internal/events"
	"article-tui/internal/ui/layout"
)

// Boundary is the region whose inside does not dismiss the overlay.
// The second result of Contains is false while the region is not mounted.
type Boundary interface {
	Contains(target *layout.Node) (inside bool, mounted bool)
}

// Controller wires outside-click and Escape dismissal for one overlay.
// It is not safe for concurrent use; it lives on the UI goroutine.
type Controller struct {
	source events.Source

	onClose  func()
	boundary Boundary

	pointer *events.Subscription
	key     *events.Subscription
}

// New creates an inactive controller listening on src once opened.
func New(src events.Source) *Controller {
	return &Controller{source: src}
}

// Configure replaces the close action and boundary, then brings the
// subscriptions in line with open: one pointer/key pair while open, none
// while closed.
func (c *Controller) Configure(open bool, onClose func(), boundary Boundary) {
	c.onClose = onClose
	c.boundary = boundary

	switch {
	case open && !c.Active():
		c.subscribe()
	case !open && c.Active():
		c.unsubscribe()
	}
}

// Close tears the controller down. Safe to call more than once.
func (c *Controller) Close() {
	c.unsubscribe()
	c.onClose = nil
	c.boundary = nil
}

// Active reports whether the input subscriptions are held.
func (c *Controller) Active() bool {
	return c.pointer != nil || c.key != nil
}

func (c *Controller) subscribe() {
	if c.source == nil {
		return
	}
	c.pointer = c.source.Subscribe(events.PointerDown, c.handlePointerDown)
	c.key = c.source.Subscribe(events.KeyDown, c.handleKeyDown)
}

func (c *Controller) unsubscribe() {
	if c.pointer != nil {
		c.pointer.Unsubscribe()
		c.pointer = nil
	}
	if c.key != nil {
		c.key.Unsubscribe()
		c.key = nil
	}
}

func (c *Controller) handlePointerDown(e events.Event) {
	ev, ok := e.(events.PointerDownEvent)
	if !ok || ev.Target == nil || c.boundary == nil {
		return
	}
	inside, mounted := c.boundary.Contains(ev.Target)
	if !mounted || inside {
		return
	}
	c.requestClose()
}

func (c *Controller) handleKeyDown(e events.Event) {
	ev, ok := e.(events.KeyDownEvent)
	if !ok || ev.Key != events.KeyEscape {
		return
	}
	c.requestClose()
}

func (c *Controller) requestClose() {
	if c.onClose != nil {
		c.onClose()
	}
}
