// Package hast holds the HTML syntax tree that feeds the markdown
// conversion: a minimal, immutable element/text tree with optional
// source positions.
//
// Nodes are never mutated after construction. Rewrites (for example
// removing a task-list checkbox) copy only the nodes along the changed
// path and share every untouched subtree by reference.
package hast

// Node is either an *Element or a *Text.
type Node interface {
	// Position returns the source range of the node, or nil when the
	// node was built without position tracking.
	Position() *Position
}

// Point is a place in the source document. Line and Column are 1-based,
// Offset is a 0-based byte offset.
type Point struct {
	Line   int
	Column int
	Offset int
}

// Position is the source range covered by a node.
type Position struct {
	Start Point
	End   Point
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
	Pos      *Position
}

// Text is a text node.
type Text struct {
	Value string
	Pos   *Position
}

func (el *Element) Position() *Position { return el.Pos }
func (t *Text) Position() *Position     { return t.Pos }

// WithChildren returns a copy of el with the given children. Attributes
// and position are shared with the original, not copied.
func (el *Element) WithChildren(children []Node) *Element {
	clone := *el
	clone.Children = children
	return &clone
}

// Attr returns the value of the named attribute and whether it is present.
func (el *Element) Attr(name string) (string, bool) {
	v, ok := el.Attrs[name]
	return v, ok
}
