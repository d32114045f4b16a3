package layout

// Ref points at the node a component registered during its last render.
// It stays empty until the component is drawn for the first time and is
// cleared when the component stops being drawn.
type Ref struct {
	current *Node
}

// Set mounts the reference.
func (r *Ref) Set(n *Node) {
	r.current = n
}

// Clear unmounts the reference.
func (r *Ref) Clear() {
	r.current = nil
}

// Current returns the mounted node or nil.
func (r *Ref) Current() *Node {
	if r == nil {
		return nil
	}
	return r.current
}

// Mounted reports whether the reference holds a node.
func (r *Ref) Mounted() bool {
	return r.Current() != nil
}

// Contains reports whether target is inside the mounted region. The second
// result is false when there is nothing mounted to test against.
func (r *Ref) Contains(target *Node) (inside bool, mounted bool) {
	cur := r.Current()
	if cur == nil {
		return false, false
	}
	return cur.Contains(target), true
}
