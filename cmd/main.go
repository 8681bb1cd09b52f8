package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	mdast "github.com/firecrawl/html-to-mdast"
	"github.com/firecrawl/html-to-mdast/hast"
	"github.com/firecrawl/html-to-mdast/plugin"
)

func main() {
	format := flag.String("format", "markdown", "output format: markdown, json or yaml")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: html-to-mdast [-format markdown|json|yaml] [-v] <file.html>")
		os.Exit(1)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("open input")
	}
	defer file.Close()

	start := time.Now()
	body, err := hast.Parse(file)
	if err != nil {
		log.Fatal().Err(err).Msg("parse html")
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("parsed input")

	conv := mdast.NewConverter(nil).Use(plugin.Strikethrough())
	root := conv.ConvertElement(body)
	log.Debug().Int("blocks", len(root.Children)).Msg("converted tree")

	switch *format {
	case "markdown":
		fmt.Print(conv.Render(root))
	case "json":
		out, err := json.MarshalIndent(dump(root), "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encode json")
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(dump(root))
		if err != nil {
			log.Fatal().Err(err).Msg("encode yaml")
		}
		fmt.Print(string(out))
	default:
		log.Fatal().Str("format", *format).Msg("unknown output format")
	}
}

// dump flattens the tree into plain maps so that both the JSON and the YAML
// output carry the node type discriminator and source positions.
func dump(node interface{}) map[string]interface{} {
	m := map[string]interface{}{}
	switch n := node.(type) {
	case *mdast.Root:
		m["type"] = "root"
		m["children"] = dumpBlocks(n.Children)
	case *mdast.Paragraph:
		m["type"] = "paragraph"
		m["children"] = dumpInlines(n.Children)
	case *mdast.Heading:
		m["type"] = "heading"
		m["depth"] = n.Depth
		m["children"] = dumpInlines(n.Children)
	case *mdast.ThematicBreak:
		m["type"] = "thematicBreak"
	case *mdast.Blockquote:
		m["type"] = "blockquote"
		m["children"] = dumpBlocks(n.Children)
	case *mdast.Code:
		m["type"] = "code"
		m["lang"] = n.Lang
		m["value"] = n.Value
	case *mdast.List:
		m["type"] = "list"
		m["ordered"] = n.Ordered
		m["spread"] = n.Spread
		if n.Ordered {
			m["start"] = n.Start
		}
		items := make([]interface{}, 0, len(n.Children))
		for _, item := range n.Children {
			items = append(items, dump(item))
		}
		m["children"] = items
	case *mdast.ListItem:
		m["type"] = "listItem"
		m["spread"] = n.Spread
		if n.Checked != nil {
			m["checked"] = *n.Checked
		}
		m["children"] = dumpBlocks(n.Children)
	case *mdast.Text:
		m["type"] = "text"
		m["value"] = n.Value
	case *mdast.Emphasis:
		m["type"] = "emphasis"
		m["children"] = dumpInlines(n.Children)
	case *mdast.Strong:
		m["type"] = "strong"
		m["children"] = dumpInlines(n.Children)
	case *mdast.Delete:
		m["type"] = "delete"
		m["children"] = dumpInlines(n.Children)
	case *mdast.InlineCode:
		m["type"] = "inlineCode"
		m["value"] = n.Value
	case *mdast.Break:
		m["type"] = "break"
	case *mdast.Link:
		m["type"] = "link"
		m["url"] = n.URL
		if n.Title != "" {
			m["title"] = n.Title
		}
		m["children"] = dumpInlines(n.Children)
	case *mdast.Image:
		m["type"] = "image"
		m["url"] = n.URL
		m["alt"] = n.Alt
	}

	if p, ok := node.(interface{ Position() *hast.Position }); ok {
		if pos := p.Position(); pos != nil {
			m["position"] = map[string]interface{}{
				"start": dumpPoint(pos.Start),
				"end":   dumpPoint(pos.End),
			}
		}
	}
	return m
}

func dumpBlocks(blocks []mdast.BlockNode) []interface{} {
	out := make([]interface{}, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, dump(b))
	}
	return out
}

func dumpInlines(inlines []mdast.InlineNode) []interface{} {
	out := make([]interface{}, 0, len(inlines))
	for _, n := range inlines {
		out = append(out, dump(n))
	}
	return out
}

func dumpPoint(p hast.Point) map[string]interface{} {
	return map[string]interface{}{"line": p.Line, "column": p.Column, "offset": p.Offset}
}
