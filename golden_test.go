package mdast_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	mdast "github.com/firecrawl/html-to-mdast"
	"github.com/firecrawl/html-to-mdast/plugin"
)

func TestGolden(t *testing.T) {
	cases := []string{"tasklist", "spread", "document"}

	conv := mdast.NewConverter(nil).Use(plugin.Strikethrough())
	g := goldie.New(t)

	for _, name := range cases {
		name := name
		t.Run(name, func(t *testing.T) {
			in, err := os.ReadFile(filepath.Join("testdata", name+".html"))
			if err != nil {
				t.Fatalf("read input: %v", err)
			}
			root, err := conv.ConvertString(string(in))
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			g.Assert(t, name, []byte(conv.Render(root)))
		})
	}
}
