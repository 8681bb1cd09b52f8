package mdast

import (
	"strings"
	"unicode"

	"github.com/firecrawl/html-to-mdast/hast"
)

// ExtractCheckbox looks for a task-list control at the very front of a list
// item: an <input type="checkbox"> or <input type="radio"> reached by a
// strict first-child descent through paragraph or phrasing wrappers.
//
// On a hit it returns the control's checked state and a copy of node with the
// control removed. Only elements on the descent path are copied; every other
// subtree is shared with the input by reference. When no control is found,
// checked is nil and the returned element is the input itself, not a copy.
//
// A checkbox anywhere but the head of the spine is never detected. That is
// deliberate: producers don't generate such shapes, and extraction must stay
// total and non-failing either way.
func ExtractCheckbox(node *hast.Element, phrasing Phrasing) (checked *bool, clone *hast.Element) {
	spine := []*hast.Element{node}
	for {
		head := spine[len(spine)-1]
		if len(head.Children) == 0 {
			return nil, node
		}
		first, ok := head.Children[0].(*hast.Element)
		if !ok {
			return nil, node
		}

		if first.Tag == "input" {
			if typ := first.Attrs["type"]; typ == "checkbox" || typ == "radio" {
				_, on := first.Attrs["checked"]
				return &on, removeControl(spine)
			}
		}

		if first.Tag == "p" || phrasing(first) {
			spine = append(spine, first)
			continue
		}
		return nil, node
	}
}

// removeControl rebuilds the spine bottom-up without the leading control.
// The innermost element drops its first child; if that leaves a text node in
// front, its leading whitespace goes too, and the whole node with it when
// nothing remains.
func removeControl(spine []*hast.Element) *hast.Element {
	inner := spine[len(spine)-1]
	children := inner.Children[1:]
	if len(children) > 0 {
		if t, ok := children[0].(*hast.Text); ok {
			value := strings.TrimLeftFunc(t.Value, unicode.IsSpace)
			if value == "" {
				children = children[1:]
			} else {
				rest := children[1:]
				children = make([]hast.Node, 0, len(rest)+1)
				children = append(children, &hast.Text{Value: value, Pos: t.Pos})
				children = append(children, rest...)
			}
		}
	}

	clone := inner.WithChildren(children)
	for i := len(spine) - 2; i >= 0; i-- {
		parent := spine[i]
		rest := parent.Children[1:]
		merged := make([]hast.Node, 0, len(rest)+1)
		merged = append(merged, clone)
		merged = append(merged, rest...)
		clone = parent.WithChildren(merged)
	}
	return clone
}
