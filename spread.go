package mdast

import "github.com/firecrawl/html-to-mdast/hast"

// IsSpread reports whether a list item needs loose ("spread") rendering,
// with blank lines between its blocks. A direct paragraph child forces it,
// as does a second flow child or a single flow child whose own subtree is
// spread. Text and phrasing children never count.
func IsSpread(el *hast.Element, phrasing Phrasing) bool {
	seenFlow := false
	for _, child := range el.Children {
		flow, ok := child.(*hast.Element)
		if !ok || phrasing(flow) {
			continue
		}
		if flow.Tag == "p" || seenFlow || IsSpread(flow, phrasing) {
			return true
		}
		seenFlow = true
	}
	return false
}
