package mdast

import "github.com/firecrawl/html-to-mdast/hast"

// BlockNode is a markdown block-level node.
type BlockNode interface {
	Type() string
	Position() *hast.Position
	SetPosition(*hast.Position)
}

// InlineNode is a markdown inline (phrasing) node.
type InlineNode interface {
	Type() string
}

// baseNode carries the source range patched onto produced block nodes.
type baseNode struct {
	Pos *hast.Position
}

func (b *baseNode) Position() *hast.Position     { return b.Pos }
func (b *baseNode) SetPosition(p *hast.Position) { b.Pos = p }

// Root is the document node produced by a conversion.
type Root struct {
	baseNode
	Children []BlockNode
}

func (*Root) Type() string { return "root" }

type Paragraph struct {
	baseNode
	Children []InlineNode
}

func (*Paragraph) Type() string { return "paragraph" }

type Heading struct {
	baseNode
	Depth    int
	Children []InlineNode
}

func (*Heading) Type() string { return "heading" }

type ThematicBreak struct {
	baseNode
}

func (*ThematicBreak) Type() string { return "thematicBreak" }

type Blockquote struct {
	baseNode
	Children []BlockNode
}

func (*Blockquote) Type() string { return "blockquote" }

// List holds list items. Start only matters for ordered lists. Spread is
// true when any item renders loose.
type List struct {
	baseNode
	Ordered  bool
	Start    int
	Spread   bool
	Children []*ListItem
}

func (*List) Type() string { return "list" }

// ListItem is a single markdown list item. Checked is nil for ordinary
// items and set for task-list items whose leading checkbox was extracted.
// Spread selects loose rendering: blank lines between the item's blocks.
type ListItem struct {
	baseNode
	Spread   bool
	Checked  *bool
	Children []BlockNode
}

func (*ListItem) Type() string { return "listItem" }

// Code is a fenced code block.
type Code struct {
	baseNode
	Lang  string
	Value string
}

func (*Code) Type() string { return "code" }

// Text is inline text.
type Text struct {
	Value string
}

func (*Text) Type() string { return "text" }

type Emphasis struct {
	Children []InlineNode
}

func (*Emphasis) Type() string { return "emphasis" }

type Strong struct {
	Children []InlineNode
}

func (*Strong) Type() string { return "strong" }

// Delete is GFM strikethrough, produced by the strikethrough plugin.
type Delete struct {
	Children []InlineNode
}

func (*Delete) Type() string { return "delete" }

type InlineCode struct {
	Value string
}

func (*InlineCode) Type() string { return "inlineCode" }

// Break is a hard line break.
type Break struct{}

func (*Break) Type() string { return "break" }

type Link struct {
	URL      string
	Title    string
	Children []InlineNode
}

func (*Link) Type() string { return "link" }

type Image struct {
	URL   string
	Alt   string
	Title string
}

func (*Image) Type() string { return "image" }
