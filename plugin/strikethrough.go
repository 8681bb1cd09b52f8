// Package plugin contains optional converter extensions that go beyond the
// commonmark node set.
package plugin

import (
	mdast "github.com/firecrawl/html-to-mdast"
	"github.com/firecrawl/html-to-mdast/hast"
)

// Strikethrough maps del, s and strike onto a GFM-style delete node,
// rendered as ~~text~~.
//
// Note: only use this in an environment that has extended the normal
// syntax, like GitHub's Flavored Markdown. Without the plugin these tags
// are unwrapped to plain text.
func Strikethrough() mdast.Plugin {
	return func(c *mdast.Converter) {
		fn := func(c *mdast.Converter, el *hast.Element) []mdast.InlineNode {
			children := c.ConvertInline(el.Children)
			if len(children) == 0 {
				return nil
			}
			return []mdast.InlineNode{&mdast.Delete{Children: children}}
		}
		for _, tag := range []string{"del", "s", "strike"} {
			c.HandleInline(tag, fn)
		}
	}
}
