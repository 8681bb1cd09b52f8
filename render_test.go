package mdast

import (
	"testing"
)

func TestRenderListItemEdgeCases(t *testing.T) {
	conv := NewConverter(nil)

	tt := []struct {
		name string
		root *Root
		want string
	}{
		{
			name: "empty item keeps a bare marker",
			root: &Root{Children: []BlockNode{
				&List{Children: []*ListItem{{}}},
			}},
			want: "-\n",
		},
		{
			name: "checkbox-only item",
			root: &Root{Children: []BlockNode{
				&List{Children: []*ListItem{{Checked: boolp(true)}}},
			}},
			want: "- [x]\n",
		},
		{
			name: "stray item outside a list",
			root: &Root{Children: []BlockNode{
				&ListItem{Children: []BlockNode{
					&Paragraph{Children: []InlineNode{&Text{Value: "alone"}}},
				}},
			}},
			want: "- alone\n",
		},
		{
			name: "ordered marker width sets continuation indent",
			root: &Root{Children: []BlockNode{
				&List{Ordered: true, Start: 10, Children: []*ListItem{{
					Children: []BlockNode{
						&Paragraph{Children: []InlineNode{&Text{Value: "a"}}},
						&List{Children: []*ListItem{{Children: []BlockNode{
							&Paragraph{Children: []InlineNode{&Text{Value: "b"}}},
						}}}},
					},
				}}},
			}},
			want: "10. a\n    - b\n",
		},
		{
			name: "empty tree",
			root: &Root{},
			want: "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := conv.Render(tc.root); got != tc.want {
				t.Errorf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderBlockquoteBlankLines(t *testing.T) {
	conv := NewConverter(nil)
	root := &Root{Children: []BlockNode{
		&Blockquote{Children: []BlockNode{
			&Paragraph{Children: []InlineNode{&Text{Value: "a"}}},
			&Paragraph{Children: []InlineNode{&Text{Value: "b"}}},
		}},
	}}

	want := "> a\n>\n> b\n"
	if got := conv.Render(root); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
