package excerpt

import (
	"io"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders an excerpt as a <pre> element. The character at the position
// is wrapped in a <mark> element; the title of the <pre> holds the
// coordinates.
func (x Excerpt) HTML(w io.Writer) error {
	pre := &html.Node{
		Type:     html.ElementNode,
		Data:     "pre",
		DataAtom: atom.Pre,
		Attr:     []html.Attribute{{Key: "title", Val: x.Coords.String()}},
	}
	col := x.Coords.Column - x.Offset
	rest := x.Window[col:]
	_, size := utf8.DecodeRuneInString(rest)
	if x.ClippedLeft {
		pre.AppendChild(textNode(ellipsis))
	}
	if col > 0 {
		pre.AppendChild(textNode(x.Window[:col]))
	}
	mark := &html.Node{Type: html.ElementNode, Data: "mark", DataAtom: atom.Mark}
	if size > 0 {
		mark.AppendChild(textNode(rest[:size]))
	}
	pre.AppendChild(mark)
	if size < len(rest) {
		pre.AppendChild(textNode(rest[size:]))
	}
	if x.ClippedRight {
		pre.AppendChild(textNode(ellipsis))
	}
	return html.Render(w, pre)
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
