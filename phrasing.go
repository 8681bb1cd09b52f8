package mdast

import "github.com/firecrawl/html-to-mdast/hast"

// Phrasing decides whether an element renders as inline (phrasing)
// content rather than flow content. The converter descends through
// phrasing wrappers when hunting a task-list checkbox and skips them
// when classifying a list item as tight or loose.
type Phrasing func(*hast.Element) bool

var phrasingElements = []string{ // -> https://developer.mozilla.org/de/docs/Web/HTML/Inline_elemente
	"b", "big", "i", "small", "tt",
	"abbr", "acronym", "cite", "code", "dfn", "em", "kbd", "strong", "samp", "var",
	"a", "bdo", "br", "img", "map", "object", "q", "script", "span", "sub", "sup",
	"button", "input", "label", "select", "textarea",
	"iframe",
	"del", "ins", "s", "strike", "u", "mark",
}

// IsPhrasingElement is the default Phrasing classifier. It checks the tag
// against the html inline element list.
func IsPhrasingElement(el *hast.Element) bool {
	for _, tag := range phrasingElements {
		if tag == el.Tag {
			return true
		}
	}
	return false
}
