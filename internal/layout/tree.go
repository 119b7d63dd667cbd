package layout

import (
	"errors"
	"fmt"
)

// Errors returned by tree operations.
var (
	ErrPanelNotFound = errors.New("panel not found")
	ErrDuplicateName = errors.New("panel name already in use")
	ErrLastPanel     = errors.New("cannot remove the last panel")
)

// Node is a layout tree node: either a leaf holding a named panel or a
// split holding two children.
type Node struct {
	// Leaf fields.
	name  string
	panel *Panel

	// Split fields.
	dir       Direction
	thickness int
	first     *Node
	second    *Node
}

// NewLeaf creates a leaf node.
func NewLeaf(name string, p *Panel) *Node {
	return &Node{name: name, panel: p}
}

// NewSplit creates a split node. thickness is the extent of first along the
// split axis.
func NewSplit(dir Direction, thickness int, first, second *Node) *Node {
	return &Node{dir: dir, thickness: thickness, first: first, second: second}
}

// IsLeaf reports whether the node holds a panel.
func (n *Node) IsLeaf() bool {
	return n.first == nil
}

// Name returns a leaf's panel name.
func (n *Node) Name() string {
	return n.name
}

// Panel returns a leaf's panel, or nil for a split.
func (n *Node) Panel() *Panel {
	return n.panel
}

// Direction returns a split's direction.
func (n *Node) Direction() Direction {
	return n.dir
}

// Thickness returns a split's first-child extent.
func (n *Node) Thickness() int {
	return n.thickness
}

// Children returns a split's children.
func (n *Node) Children() (first, second *Node) {
	return n.first, n.second
}

// Find searches the tree depth first, first child before second, computing
// each node's frame from frame. It returns the first result visit reports
// as found.
func Find[T any](root *Node, frame Frame, visit func(p *Panel, name string, f Frame) (T, bool)) (T, bool) {
	if root.IsLeaf() {
		return visit(root.panel, root.name, frame)
	}

	// Degenerate splits are still traversed with clamped frames; Validate
	// reports them.
	firstFrame, secondFrame, _ := frame.Split(root.dir, root.thickness)
	if v, ok := Find(root.first, firstFrame, visit); ok {
		return v, true
	}
	return Find(root.second, secondFrame, visit)
}

// Walk calls visit for every leaf with its frame.
func Walk(root *Node, frame Frame, visit func(p *Panel, name string, f Frame)) {
	Find(root, frame, func(p *Panel, name string, f Frame) (struct{}, bool) {
		visit(p, name, f)
		return struct{}{}, false
	})
}

// Lookup returns the panel called name and its frame.
func Lookup(root *Node, frame Frame, name string) (*Panel, Frame, bool) {
	type found struct {
		panel *Panel
		frame Frame
	}
	v, ok := Find(root, frame, func(p *Panel, n string, f Frame) (found, bool) {
		if n == name {
			return found{p, f}, true
		}
		return found{}, false
	})
	return v.panel, v.frame, ok
}

// Names returns every panel name in traversal order.
func Names(root *Node) []string {
	var names []string
	Walk(root, Frame{}, func(_ *Panel, name string, _ Frame) {
		names = append(names, name)
	})
	return names
}

// Validate reports every split whose thickness does not fit its frame.
func Validate(root *Node, frame Frame) error {
	if root.IsLeaf() {
		return nil
	}
	firstFrame, secondFrame, err := frame.Split(root.dir, root.thickness)
	return errors.Join(err, Validate(root.first, firstFrame), Validate(root.second, secondFrame))
}

// SplitLeaf replaces the leaf called name with a split whose first child
// is a new leaf (newName, p) and whose second child is the old leaf.
func (n *Node) SplitLeaf(name string, dir Direction, thickness int, newName string, p *Panel) error {
	if p == nil {
		return fmt.Errorf("split %q: nil panel", name)
	}
	if n.find(newName) != nil {
		return fmt.Errorf("split %q: %w: %q", name, ErrDuplicateName, newName)
	}
	leaf := n.find(name)
	if leaf == nil {
		return fmt.Errorf("split %q: %w", name, ErrPanelNotFound)
	}

	old := &Node{name: leaf.name, panel: leaf.panel}
	*leaf = Node{dir: dir, thickness: thickness, first: NewLeaf(newName, p), second: old}
	return nil
}

// RemoveLeaf removes the leaf called name; its sibling takes the parent's
// place. It returns the removed panel.
func (n *Node) RemoveLeaf(name string) (*Panel, error) {
	if n.IsLeaf() {
		if n.name == name {
			return nil, fmt.Errorf("remove %q: %w", name, ErrLastPanel)
		}
		return nil, fmt.Errorf("remove %q: %w", name, ErrPanelNotFound)
	}

	parent, leaf, sibling := n.findParent(name)
	if parent == nil {
		return nil, fmt.Errorf("remove %q: %w", name, ErrPanelNotFound)
	}

	*parent = *sibling
	return leaf.panel, nil
}

// find returns the leaf called name, or nil.
func (n *Node) find(name string) *Node {
	if n.IsLeaf() {
		if n.name == name {
			return n
		}
		return nil
	}
	if found := n.first.find(name); found != nil {
		return found
	}
	return n.second.find(name)
}

// findParent returns the split directly above the leaf called name, the
// leaf, and the leaf's sibling.
func (n *Node) findParent(name string) (parent, leaf, sibling *Node) {
	if n.IsLeaf() {
		return nil, nil, nil
	}
	if n.first.IsLeaf() && n.first.name == name {
		return n, n.first, n.second
	}
	if n.second.IsLeaf() && n.second.name == name {
		return n, n.second, n.first
	}
	if p, l, s := n.first.findParent(name); p != nil {
		return p, l, s
	}
	return n.second.findParent(name)
}
