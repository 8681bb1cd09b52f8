package mdast_test

import (
	"strings"
	"testing"

	mdast "github.com/firecrawl/html-to-mdast"
	"github.com/firecrawl/html-to-mdast/hast"
)

// Converting a positioned tree must patch source ranges onto the produced
// block nodes, including list items whose checkbox was spliced out.
func TestConvertElementKeepsPositions(t *testing.T) {
	input := `<ul><li><input type="checkbox" checked> task</li></ul>`
	body, err := hast.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	conv := mdast.NewConverter(nil)
	root := conv.ConvertElement(body)

	if len(root.Children) != 1 {
		t.Fatalf("expected one block, got %d", len(root.Children))
	}
	list, ok := root.Children[0].(*mdast.List)
	if !ok {
		t.Fatalf("expected a list, got %T", root.Children[0])
	}

	pos := list.Position()
	if pos == nil {
		t.Fatal("list lost its source position")
	}
	if pos.Start.Offset != 0 || pos.End.Offset != len(input) {
		t.Errorf("list range = %+v", *pos)
	}

	if len(list.Children) != 1 {
		t.Fatalf("expected one item, got %d", len(list.Children))
	}
	item := list.Children[0]
	if item.Checked == nil || !*item.Checked {
		t.Fatalf("expected checked task item, got %v", item.Checked)
	}
	itemPos := item.Position()
	if itemPos == nil {
		t.Fatal("item lost its source position")
	}
	if itemPos.Start.Offset != len("<ul>") {
		t.Errorf("item start = %+v", itemPos.Start)
	}
}
