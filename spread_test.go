package mdast

import (
	"testing"

	"github.com/firecrawl/html-to-mdast/hast"
)

func TestIsSpread(t *testing.T) {
	tt := []struct {
		name   string
		el     *hast.Element
		spread bool
	}{
		{
			name: "empty item",
			el:   el("li"),
		},
		{
			name: "only text",
			el:   el("li", txt("plain")),
		},
		{
			name: "only phrasing content",
			el:   el("li", txt("a "), el("strong", txt("b")), el("em", txt("c"))),
		},
		{
			name:   "direct paragraph child",
			el:     el("li", el("p", txt("a"))),
			spread: true,
		},
		{
			name:   "paragraph after phrasing content",
			el:     el("li", txt("a"), el("p", txt("b"))),
			spread: true,
		},
		{
			name:   "two flow children without a paragraph",
			el:     el("li", el("ul"), el("blockquote")),
			spread: true,
		},
		{
			name: "single flow child with phrasing content only",
			el:   el("li", el("ul", el("li", txt("nested")))),
		},
		{
			name:   "single flow child containing a paragraph",
			el:     el("li", el("div", el("p", txt("deep")))),
			spread: true,
		},
		{
			name:   "single flow child containing two flow children",
			el:     el("li", el("div", el("ul"), el("ul"))),
			spread: true,
		},
		{
			name: "text between flow children does not count",
			el:   el("li", txt("a"), el("ul", el("li", txt("b"))), txt("c")),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSpread(tc.el, IsPhrasingElement); got != tc.spread {
				t.Errorf("IsSpread = %v, want %v", got, tc.spread)
			}
		})
	}
}
