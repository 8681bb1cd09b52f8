package hast

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// -> https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse reads an HTML fragment and builds a positioned tree. The result is a
// synthetic body element holding the fragment's top-level nodes; every parsed
// node carries line/column/offset positions into the original input.
//
// Parsing is forgiving: stray end tags are ignored, elements still open at the
// end of input are closed there, and comments and doctypes are dropped.
func Parse(r io.Reader) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := newLineIndex(data)
	root := &Element{Tag: "body", Pos: lines.span(0, len(data))}
	stack := []*Element{root}

	z := html.NewTokenizer(bytes.NewReader(data))
	offset := 0
	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			for _, el := range stack[1:] {
				el.Pos.End = lines.point(len(data))
			}
			if z.Err() == io.EOF {
				return root, nil
			}
			return root, z.Err()

		case html.TextToken:
			tok := z.Token()
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Text{
				Value: tok.Data,
				Pos:   lines.span(start, offset),
			})

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el := &Element{
				Tag:   tok.Data,
				Attrs: attrMap(tok.Attr),
				Pos:   lines.span(start, offset),
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, el)
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i >= 1; i-- {
				if stack[i].Tag != tok.Data {
					continue
				}
				// Implicitly close everything the end tag skipped over.
				for _, el := range stack[i:] {
					el.Pos.End = lines.point(offset)
				}
				stack = stack[:i]
				break
			}
		}
	}
}

// FromNode converts a parsed html node into a hast node. Element and text
// nodes map to their counterparts; anything else (comments, doctypes) yields
// nil. Positions are not available on this path.
func FromNode(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{Value: n.Data}
	case html.ElementNode:
		el := &Element{
			Tag:   strings.ToLower(n.Data),
			Attrs: make(map[string]string, len(n.Attr)),
		}
		for _, a := range n.Attr {
			el.Attrs[strings.ToLower(a.Key)] = a.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := FromNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		return nil
	}
}

// FromSelection converts every node of a goquery selection, including text
// nodes, in document order.
func FromSelection(s *goquery.Selection) []Node {
	if s == nil {
		return nil
	}
	nodes := make([]Node, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if node := FromNode(n); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func attrMap(attrs []html.Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Val
	}
	return m
}

// lineIndex maps byte offsets to 1-based line/column points. It holds the
// byte offset of every line start.
type lineIndex []int

func newLineIndex(data []byte) lineIndex {
	ix := lineIndex{0}
	for i, b := range data {
		if b == '\n' {
			ix = append(ix, i+1)
		}
	}
	return ix
}

func (ix lineIndex) point(offset int) Point {
	line := sort.SearchInts(ix, offset+1)
	return Point{Line: line, Column: offset - ix[line-1] + 1, Offset: offset}
}

func (ix lineIndex) span(start, end int) *Position {
	return &Position{Start: ix.point(start), End: ix.point(end)}
}
