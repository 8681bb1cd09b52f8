package mdast

import "github.com/firecrawl/html-to-mdast/hast"

// Capabilities bundles what list-item conversion needs from the surrounding
// engine: turning child nodes into block nodes, and recording provenance on
// the produced node. A Converter supplies its own ConvertChildren and Patch;
// tests can substitute stubs.
type Capabilities struct {
	Convert func(children []hast.Node) []BlockNode
	Patch   func(source *hast.Element, target BlockNode)
}

// ConvertListItem turns a single list-item element into a ListItem block.
// A leading checkbox is extracted first, the (possibly rewritten) item is
// classified tight or loose, and its children go to the engine for
// conversion. Provenance is patched exactly once, from the rewritten item.
// It never fails; malformed input yields a best-effort item.
func ConvertListItem(node *hast.Element, phrasing Phrasing, caps Capabilities) *ListItem {
	checked, clone := ExtractCheckbox(node, phrasing)
	item := &ListItem{
		Spread:   IsSpread(clone, phrasing),
		Checked:  checked,
		Children: caps.Convert(clone.Children),
	}
	caps.Patch(clone, item)
	return item
}
