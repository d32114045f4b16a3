package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"article-tui/internal/events"
	"article-tui/internal/ui/layout"
)

// fixture mirrors a screen: a 200x100 panel on a larger root and a caller
// owning the open flag.
type fixture struct {
	bus   *events.Bus
	tree  *layout.Tree
	panel *layout.Node
	ref   *layout.Ref
	ctrl  *Controller

	open   bool
	closes int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bus:  events.NewBus(),
		tree: layout.NewTree(),
		ref:  &layout.Ref{},
	}
	root := f.tree.Reset(400, 300)
	f.panel = root.Add("panel", layout.Rect{X: 10, Y: 10, W: 200, H: 100}, nil)
	f.panel.Add("select", layout.Rect{X: 20, Y: 20, W: 100, H: 1}, nil)
	f.ref.Set(f.panel)
	f.ctrl = New(f.bus)
	t.Cleanup(f.ctrl.Close)
	return f
}

func (f *fixture) onClose() {
	f.closes++
	f.open = false
	f.sync()
}

func (f *fixture) setOpen(open bool) {
	f.open = open
	f.sync()
}

func (f *fixture) sync() {
	f.ctrl.Configure(f.open, f.onClose, f.ref)
}

func (f *fixture) click(x, y int) {
	f.bus.Publish(events.PointerDownEvent{X: x, Y: y, Target: f.tree.HitTest(x, y)})
}

func (f *fixture) key(k string) {
	f.bus.Publish(events.KeyDownEvent{Key: k})
}

func TestNoCloseWhileClosed(t *testing.T) {
	f := newFixture(t)
	f.sync()

	f.click(300, 200)
	f.click(50, 50)
	f.key(events.KeyEscape)
	f.key("a")

	require.Zero(t, f.closes)
	require.False(t, f.ctrl.Active())
	require.Zero(t, f.bus.Count(events.PointerDown))
	require.Zero(t, f.bus.Count(events.KeyDown))
}

func TestOutsideClickClosesOnce(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)

	f.click(300, 200)
	require.Equal(t, 1, f.closes)
	require.False(t, f.open)
}

func TestInsideClickKeepsOpen(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)

	f.click(15, 15)   // panel itself
	f.click(25, 20)   // nested select
	f.click(209, 109) // bottom-right cell

	require.Zero(t, f.closes)
	require.True(t, f.open)
	require.True(t, f.ctrl.Active())
}

func TestEscapeClosesOnce(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)

	f.key("a")
	f.key("Enter")
	require.Zero(t, f.closes)

	f.key(events.KeyEscape)
	require.Equal(t, 1, f.closes)
}

func TestEscapeCallsOnClosePerPressWhileOpen(t *testing.T) {
	f := newFixture(t)
	calls := 0
	// caller that never actually closes: every press must reach it
	f.ctrl.Configure(true, func() { calls++ }, f.ref)

	f.key(events.KeyEscape)
	f.key(events.KeyEscape)
	f.key(events.KeyEscape)
	require.Equal(t, 3, calls)
}

func TestNoListenersAfterClose(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)
	f.setOpen(false)

	f.click(300, 200)
	f.key(events.KeyEscape)

	require.Zero(t, f.closes)
	require.Zero(t, f.bus.Count(events.PointerDown))
	require.Zero(t, f.bus.Count(events.KeyDown))
}

func TestNoListenersAfterTeardownWhileOpen(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)
	require.Equal(t, 1, f.bus.Count(events.PointerDown))

	f.ctrl.Close()
	f.ctrl.Close()

	f.click(300, 200)
	f.key(events.KeyEscape)

	require.Zero(t, f.closes)
	require.True(t, f.open, "teardown does not touch caller state")
	require.Zero(t, f.bus.Count(events.PointerDown))
	require.Zero(t, f.bus.Count(events.KeyDown))
}

func TestRapidTogglingKeepsOneSubscriptionPair(t *testing.T) {
	f := newFixture(t)

	f.setOpen(true)
	f.setOpen(false)
	f.setOpen(true)
	f.setOpen(true)
	require.Equal(t, 1, f.bus.Count(events.PointerDown))
	require.Equal(t, 1, f.bus.Count(events.KeyDown))

	f.key(events.KeyEscape)
	require.Equal(t, 1, f.closes)

	f.setOpen(true)
	f.setOpen(false)
	f.setOpen(true)
	f.setOpen(false)
	require.False(t, f.ctrl.Active())

	f.click(300, 200)
	f.key(events.KeyEscape)
	require.Equal(t, 1, f.closes)
}

func TestUnmountedBoundaryNeverCloses(t *testing.T) {
	f := newFixture(t)
	f.ref.Clear()
	f.setOpen(true)

	f.click(300, 200)
	require.Zero(t, f.closes)

	f.key(events.KeyEscape)
	require.Equal(t, 1, f.closes, "Escape does not depend on the boundary")
}

func TestMissingTargetIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.setOpen(true)

	f.bus.Publish(events.PointerDownEvent{X: 999, Y: 999})
	require.Zero(t, f.closes)
}

func TestReconfigureUsesLatestCallbackAndBoundary(t *testing.T) {
	f := newFixture(t)
	first, second := 0, 0
	f.ctrl.Configure(true, func() { first++ }, f.ref)

	other := &layout.Ref{}
	other.Set(f.tree.Root().Add("other", layout.Rect{X: 250, Y: 150, W: 100, H: 100}, nil))
	f.ctrl.Configure(true, func() { second++ }, other)

	f.click(300, 200) // inside the new boundary
	require.Zero(t, first)
	require.Zero(t, second)

	f.click(15, 15) // inside the old boundary, outside the new one
	require.Zero(t, first)
	require.Equal(t, 1, second)
	require.Equal(t, 1, f.bus.Count(events.PointerDown))
}

func TestScenarioPanelOutsideInsideKeys(t *testing.T) {
	f := newFixture(t)
	calls := 0
	f.ctrl.Configure(true, func() { calls++ }, f.ref)

	f.click(350, 250)
	require.Equal(t, 1, calls)

	f.click(100, 60)
	require.Equal(t, 1, calls)

	f.key("a")
	require.Equal(t, 1, calls)

	f.key(events.KeyEscape)
	require.Equal(t, 2, calls)
}
