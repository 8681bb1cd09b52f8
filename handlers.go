package mdast

import (
	"strconv"
	"strings"

	"github.com/firecrawl/html-to-mdast/hast"
)

func (c *Converter) registerDefaults() {
	c.Handle("p", func(c *Converter, el *hast.Element) []BlockNode {
		inlines := c.ConvertInline(el.Children)
		if len(inlines) == 0 {
			return nil
		}
		p := &Paragraph{Children: inlines}
		c.Patch(el, p)
		return []BlockNode{p}
	})

	for depth, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		depth := depth + 1
		c.Handle(tag, func(c *Converter, el *hast.Element) []BlockNode {
			h := &Heading{Depth: depth, Children: c.ConvertInline(el.Children)}
			c.Patch(el, h)
			return []BlockNode{h}
		})
	}

	c.Handle("hr", func(c *Converter, el *hast.Element) []BlockNode {
		hr := &ThematicBreak{}
		c.Patch(el, hr)
		return []BlockNode{hr}
	})

	c.Handle("blockquote", func(c *Converter, el *hast.Element) []BlockNode {
		q := &Blockquote{Children: c.ConvertChildren(el.Children)}
		c.Patch(el, q)
		return []BlockNode{q}
	})

	c.Handle("pre", func(c *Converter, el *hast.Element) []BlockNode {
		lang := ""
		if code := firstElement(el, "code"); code != nil {
			lang = codeLanguage(code.Attrs["class"])
		}
		if lang == "" {
			lang = codeLanguage(el.Attrs["class"])
		}
		block := &Code{Lang: lang, Value: strings.TrimRight(textContent(el), "\n")}
		c.Patch(el, block)
		return []BlockNode{block}
	})

	c.Handle("ul", func(c *Converter, el *hast.Element) []BlockNode {
		return c.convertList(el, false)
	})
	c.Handle("ol", func(c *Converter, el *hast.Element) []BlockNode {
		return c.convertList(el, true)
	})

	// A li outside any list still renders as a single-item list.
	c.Handle("li", func(c *Converter, el *hast.Element) []BlockNode {
		item := ConvertListItem(el, c.phrasing, c.capabilities())
		list := &List{Spread: item.Spread, Children: []*ListItem{item}}
		c.Patch(el, list)
		return []BlockNode{list}
	})

	drop := func(*Converter, *hast.Element) []BlockNode { return nil }
	for _, tag := range []string{"script", "style", "head", "title", "template", "noscript"} {
		c.Handle(tag, drop)
	}
	c.HandleInline("script", func(*Converter, *hast.Element) []InlineNode { return nil })

	c.HandleInline("strong", inlineWrap(func(children []InlineNode) InlineNode {
		return &Strong{Children: children}
	}))
	c.HandleInline("b", c.inline["strong"])
	c.HandleInline("em", inlineWrap(func(children []InlineNode) InlineNode {
		return &Emphasis{Children: children}
	}))
	c.HandleInline("i", c.inline["em"])

	c.HandleInline("code", func(c *Converter, el *hast.Element) []InlineNode {
		return []InlineNode{&InlineCode{Value: textContent(el)}}
	})
	c.HandleInline("br", func(*Converter, *hast.Element) []InlineNode {
		return []InlineNode{&Break{}}
	})
	c.HandleInline("a", func(c *Converter, el *hast.Element) []InlineNode {
		href, ok := el.Attr("href")
		if !ok {
			return c.ConvertInline(el.Children)
		}
		return []InlineNode{&Link{
			URL:      href,
			Title:    el.Attrs["title"],
			Children: c.ConvertInline(el.Children),
		}}
	})
	c.HandleInline("img", func(c *Converter, el *hast.Element) []InlineNode {
		src, ok := el.Attr("src")
		if !ok {
			return nil
		}
		return []InlineNode{&Image{URL: src, Alt: el.Attrs["alt"], Title: el.Attrs["title"]}}
	})
}

func (c *Converter) capabilities() Capabilities {
	return Capabilities{Convert: c.ConvertChildren, Patch: c.Patch}
}

func (c *Converter) convertList(el *hast.Element, ordered bool) []BlockNode {
	list := &List{Ordered: ordered, Start: 1}
	if ordered {
		if v, ok := el.Attr("start"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				list.Start = n
			}
		}
	}

	caps := c.capabilities()
	for _, child := range el.Children {
		li, ok := child.(*hast.Element)
		if !ok || li.Tag != "li" {
			continue
		}
		item := ConvertListItem(li, c.phrasing, caps)
		if item.Spread {
			list.Spread = true
		}
		list.Children = append(list.Children, item)
	}
	c.Patch(el, list)
	return []BlockNode{list}
}

func inlineWrap(wrap func([]InlineNode) InlineNode) InlineHandlerFunc {
	return func(c *Converter, el *hast.Element) []InlineNode {
		children := c.ConvertInline(el.Children)
		if len(children) == 0 {
			return nil
		}
		return []InlineNode{wrap(children)}
	}
}

// codeLanguage picks the highlight language out of a class attribute, e.g.
// "language-go" or "lang-go".
func codeLanguage(class string) string {
	for _, part := range strings.Fields(strings.ToLower(class)) {
		if strings.HasPrefix(part, "language-") {
			return strings.TrimPrefix(part, "language-")
		}
		if strings.HasPrefix(part, "lang-") {
			return strings.TrimPrefix(part, "lang-")
		}
	}
	return ""
}

// textContent flattens a subtree to its text, turning br into a newline.
func textContent(el *hast.Element) string {
	var b strings.Builder
	var walk func(hast.Node)
	walk = func(node hast.Node) {
		switch n := node.(type) {
		case *hast.Text:
			b.WriteString(n.Value)
		case *hast.Element:
			if n.Tag == "br" {
				b.WriteString("\n")
			}
			for _, child := range n.Children {
				walk(child)
			}
		}
	}
	for _, child := range el.Children {
		walk(child)
	}
	return b.String()
}

func firstElement(el *hast.Element, tag string) *hast.Element {
	for _, child := range el.Children {
		inner, ok := child.(*hast.Element)
		if !ok {
			continue
		}
		if inner.Tag == tag {
			return inner
		}
		if found := firstElement(inner, tag); found != nil {
			return found
		}
	}
	return nil
}
