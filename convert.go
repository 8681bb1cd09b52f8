// Package mdast converts HTML into an mdast-style markdown syntax tree and
// renders that tree back out as markdown text.
//
// The input is an immutable element/text tree (package hast), produced either
// by the positioned tokenizer in hast.Parse or from a goquery selection. The
// converter walks it with per-tag handlers and assembles discriminated block
// and inline nodes. List items get the full treatment: leading task-list
// checkboxes are extracted without mutating the input, and items are
// classified tight or loose before rendering.
package mdast

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/firecrawl/html-to-mdast/hast"
)

// Options to customize the conversion and the markdown output. You can
// change stuff like the character that is used for strong text.
type Options struct {
	// "-", "+", or "*"
	// default: "-"
	BulletListMarker string

	// _ or *
	// default: _
	EmDelimiter string

	// ** or __
	// default: **
	StrongDelimiter string

	// ``` or ~~~
	// default: ```
	Fence string

	// Any thematic break
	// default: "* * *"
	HorizontalRule string

	// Phrasing overrides the classifier that decides whether an element is
	// inline content. The default is IsPhrasingElement.
	Phrasing Phrasing
}

// Plugin can add or replace tag handlers on a Converter.
type Plugin func(*Converter)

// HandlerFunc converts one flow element into block nodes.
type HandlerFunc func(c *Converter, el *hast.Element) []BlockNode

// InlineHandlerFunc converts one phrasing element into inline nodes.
type InlineHandlerFunc func(c *Converter, el *hast.Element) []InlineNode

// Converter turns HTML trees into markdown trees. It is configured once
// via NewConverter and Use; conversion itself holds no mutable state.
type Converter struct {
	opt      Options
	phrasing Phrasing
	handlers map[string]HandlerFunc
	inline   map[string]InlineHandlerFunc
}

// NewConverter returns a converter with the default tag handlers
// registered. Pass nil options for the defaults.
func NewConverter(options *Options) *Converter {
	var opt Options
	if options != nil {
		opt = *options
	}
	if opt.BulletListMarker == "" {
		opt.BulletListMarker = "-"
	}
	if opt.EmDelimiter == "" {
		opt.EmDelimiter = "_"
	}
	if opt.StrongDelimiter == "" {
		opt.StrongDelimiter = "**"
	}
	if opt.Fence == "" {
		opt.Fence = "```"
	}
	if opt.HorizontalRule == "" {
		opt.HorizontalRule = "* * *"
	}
	phrasing := opt.Phrasing
	if phrasing == nil {
		phrasing = IsPhrasingElement
	}

	c := &Converter{
		opt:      opt,
		phrasing: phrasing,
		handlers: map[string]HandlerFunc{},
		inline:   map[string]InlineHandlerFunc{},
	}
	c.registerDefaults()
	return c
}

// Use applies plugins to the converter.
func (c *Converter) Use(plugins ...Plugin) *Converter {
	for _, p := range plugins {
		p(c)
	}
	return c
}

// Handle registers (or replaces) the handler for a flow tag.
func (c *Converter) Handle(tag string, fn HandlerFunc) {
	c.handlers[tag] = fn
}

// HandleInline registers (or replaces) the handler for a phrasing tag.
func (c *Converter) HandleInline(tag string, fn InlineHandlerFunc) {
	c.inline[tag] = fn
}

// ConvertString parses HTML with goquery and converts the document body.
// Source positions are not available on this path; use hast.Parse together
// with ConvertElement to keep them.
func (c *Converter) ConvertString(html string) (*Root, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	nodes := hast.FromSelection(doc.Find("body").Contents())
	return &Root{Children: c.ConvertChildren(nodes)}, nil
}

// ConvertElement converts the children of el, typically the body container
// returned by hast.Parse.
func (c *Converter) ConvertElement(el *hast.Element) *Root {
	if el == nil {
		return &Root{}
	}
	root := &Root{Children: c.ConvertChildren(el.Children)}
	c.Patch(el, root)
	return root
}

// ConvertChildren is the children-conversion capability: it turns a node
// sequence into block nodes, wrapping runs of text and phrasing content in
// implicit paragraphs and dispatching flow elements to their handlers.
// Flow tags without a handler are unwrapped in place.
func (c *Converter) ConvertChildren(nodes []hast.Node) []BlockNode {
	var blocks []BlockNode
	var run []hast.Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		pending := run
		run = nil
		if allWhitespace(pending) {
			return
		}
		if inlines := c.ConvertInline(pending); len(inlines) > 0 {
			blocks = append(blocks, &Paragraph{Children: inlines})
		}
	}

	for _, node := range nodes {
		el, ok := node.(*hast.Element)
		if !ok || c.phrasing(el) {
			run = append(run, node)
			continue
		}
		flush()
		if fn, ok := c.handlers[el.Tag]; ok {
			blocks = append(blocks, fn(c, el)...)
			continue
		}
		blocks = append(blocks, c.ConvertChildren(el.Children)...)
	}
	flush()
	return blocks
}

// ConvertInline turns a node sequence into inline nodes. Phrasing tags
// without a handler are unwrapped in place; whitespace runs collapse to a
// single space.
func (c *Converter) ConvertInline(nodes []hast.Node) []InlineNode {
	var out []InlineNode
	for _, node := range nodes {
		switch n := node.(type) {
		case *hast.Text:
			if value := collapseWhitespace(n.Value); value != "" {
				out = append(out, &Text{Value: value})
			}
		case *hast.Element:
			if fn, ok := c.inline[n.Tag]; ok {
				out = append(out, fn(c, n)...)
			} else {
				out = append(out, c.ConvertInline(n.Children)...)
			}
		}
	}
	return out
}

// Patch is the provenance capability: it copies the source range of the
// element a node was produced from onto that node. It is invoked exactly
// once per produced block node.
func (c *Converter) Patch(source *hast.Element, target BlockNode) {
	if source == nil || target == nil {
		return
	}
	target.SetPosition(source.Position())
}

var whitespaceR = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return whitespaceR.ReplaceAllString(s, " ")
}

func allWhitespace(nodes []hast.Node) bool {
	for _, node := range nodes {
		t, ok := node.(*hast.Text)
		if !ok || strings.TrimSpace(t.Value) != "" {
			return false
		}
	}
	return true
}
