package mdast

import (
	"strconv"
	"strings"
)

// Render serializes a converted tree to markdown text using the converter's
// options. Non-empty output ends with exactly one trailing newline.
func (c *Converter) Render(root *Root) string {
	if root == nil {
		return ""
	}
	out := strings.Join(renderBlocks(root.Children, &c.opt), "\n\n")
	if out == "" {
		return ""
	}
	return strings.TrimRight(out, "\n") + "\n"
}

func renderBlocks(blocks []BlockNode, opt *Options) []string {
	var parts []string
	for _, block := range blocks {
		if s := renderBlock(block, opt); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

func renderBlock(block BlockNode, opt *Options) string {
	switch n := block.(type) {
	case *Paragraph:
		return strings.TrimSpace(renderInlines(n.Children, opt))
	case *Heading:
		return strings.Repeat("#", n.Depth) + " " + strings.TrimSpace(renderInlines(n.Children, opt))
	case *ThematicBreak:
		return opt.HorizontalRule
	case *Blockquote:
		return prefixLines(strings.Join(renderBlocks(n.Children, opt), "\n\n"), "> ")
	case *Code:
		return opt.Fence + n.Lang + "\n" + n.Value + "\n" + opt.Fence
	case *List:
		return renderList(n, opt)
	case *ListItem:
		return renderItem(n, opt.BulletListMarker+" ", opt)
	}
	return ""
}

func renderList(list *List, opt *Options) string {
	number := list.Start
	items := make([]string, 0, len(list.Children))
	for _, item := range list.Children {
		marker := opt.BulletListMarker + " "
		if list.Ordered {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		items = append(items, renderItem(item, marker, opt))
	}

	sep := "\n"
	if list.Spread {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

func renderItem(item *ListItem, marker string, opt *Options) string {
	blocks := renderBlocks(item.Children, opt)
	if item.Checked != nil {
		box := "[ ]"
		if *item.Checked {
			box = "[x]"
		}
		if len(blocks) == 0 {
			blocks = []string{box}
		} else {
			blocks[0] = box + " " + blocks[0]
		}
	}

	sep := "\n"
	if item.Spread {
		sep = "\n\n"
	}
	body := strings.Join(blocks, sep)
	if body == "" {
		return strings.TrimRight(marker, " ")
	}

	indent := strings.Repeat(" ", len(marker))
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = marker + line
		case line == "":
			// blank separator lines inside a loose item stay blank
		default:
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

func renderInlines(inlines []InlineNode, opt *Options) string {
	var b strings.Builder
	for _, node := range inlines {
		switch n := node.(type) {
		case *Text:
			b.WriteString(n.Value)
		case *Strong:
			b.WriteString(opt.StrongDelimiter + renderInlines(n.Children, opt) + opt.StrongDelimiter)
		case *Emphasis:
			b.WriteString(opt.EmDelimiter + renderInlines(n.Children, opt) + opt.EmDelimiter)
		case *Delete:
			b.WriteString("~~" + renderInlines(n.Children, opt) + "~~")
		case *InlineCode:
			b.WriteString("`" + n.Value + "`")
		case *Break:
			b.WriteString("  \n")
		case *Link:
			b.WriteString("[" + renderInlines(n.Children, opt) + "](" + linkTarget(n.URL, n.Title) + ")")
		case *Image:
			b.WriteString("![" + n.Alt + "](" + linkTarget(n.URL, n.Title) + ")")
		}
	}
	return b.String()
}

func linkTarget(url, title string) string {
	if title == "" {
		return url
	}
	return url + ` "` + title + `"`
}

func prefixLines(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
