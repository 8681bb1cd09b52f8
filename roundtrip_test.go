package mdast_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	mdast "github.com/firecrawl/html-to-mdast"
)

// The rendered markdown must mean what the tree says: re-parsing it with
// goldmark has to reproduce the task-list and tight/loose semantics.
func renderedToHTML(t *testing.T, markdown string) string {
	t.Helper()
	gm := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	var buf bytes.Buffer
	if err := gm.Convert([]byte(markdown), &buf); err != nil {
		t.Fatalf("goldmark convert: %v", err)
	}
	return buf.String()
}

func TestRoundTripTaskList(t *testing.T) {
	conv := mdast.NewConverter(nil)
	out := convertToMarkdown(t, conv, `<ul><li><input type="checkbox" checked> Done</li><li><input type="checkbox"> Pending</li></ul>`)

	html := renderedToHTML(t, out)
	if strings.Count(html, `type="checkbox"`) != 2 {
		t.Errorf("expected two checkboxes after the round trip, got:\n%s", html)
	}
	if !strings.Contains(html, `checked=""`) {
		t.Errorf("expected one checked checkbox after the round trip, got:\n%s", html)
	}
}

func TestRoundTripTightness(t *testing.T) {
	conv := mdast.NewConverter(nil)

	tight := renderedToHTML(t, convertToMarkdown(t, conv, `<ul><li>a</li><li>b</li></ul>`))
	if strings.Contains(tight, "<li><p>") || strings.Contains(tight, "<li>\n<p>") {
		t.Errorf("tight list grew paragraphs after the round trip:\n%s", tight)
	}

	loose := renderedToHTML(t, convertToMarkdown(t, conv, `<ul><li><p>a</p><p>b</p></li></ul>`))
	if !strings.Contains(loose, "<p>") {
		t.Errorf("loose list lost its paragraphs after the round trip:\n%s", loose)
	}
}
