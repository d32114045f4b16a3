// Package layout keeps the tree of on-screen regions produced by the last
// render. Views register rectangles while they render (render-then-measure),
// mouse input is resolved against the same tree, and boundary checks walk the
// parent links.
package layout

// Rect is a rectangle in terminal cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Node is a registered region.
type Node struct {
	ID   string
	Rect Rect
	Data any

	parent   *Node
	children []*Node
}

// Add registers a child region and returns it.
func (n *Node) Add(id string, r Rect, data any) *Node {
	child := &Node{ID: id, Rect: r, Data: data, parent: n}
	n.children = append(n.children, child)
	return child
}

// Parent returns the enclosing region, nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns registered child regions in registration order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Contains reports whether other is n itself or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Find returns the first node with the given id in depth-first order.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// hit returns the deepest node under the point. Later siblings win, so
// regions drawn on top must be registered after the ones below them.
func (n *Node) hit(x, y int) *Node {
	if !n.Rect.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if found := n.children[i].hit(x, y); found != nil {
			return found
		}
	}
	return n
}

// RootID is the id of the node covering the whole screen.
const RootID = "root"

// Tree is the region tree of one frame.
type Tree struct {
	root *Node
}

// NewTree creates an empty tree with a zero-sized root.
func NewTree() *Tree {
	return &Tree{root: &Node{ID: RootID}}
}

// Reset drops every registered region and resizes the root.
func (t *Tree) Reset(width, height int) *Node {
	t.root = &Node{ID: RootID, Rect: Rect{W: width, H: height}}
	return t.root
}

// Root returns the node covering the whole screen.
func (t *Tree) Root() *Node {
	return t.root
}

// HitTest resolves a screen coordinate to the deepest region under it.
// Points outside the screen return nil.
func (t *Tree) HitTest(x, y int) *Node {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root.hit(x, y)
}

// Find looks up a region by id.
func (t *Tree) Find(id string) *Node {
	if t == nil {
		return nil
	}
	return t.root.Find(id)
}
