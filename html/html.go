/*
Package html creates scanners for the textual content of HTML.

Markup is dropped; what remains is the concatenation of all text nodes, in
document order. Layout and styling are not interpreted.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strscan"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}

// InnerText creates a scanner for the textual content of an HTML element and
// all its descendents. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
func InnerText(n *html.Node) (*strscan.Scanner, error) {
	if n == nil {
		return nil, strscan.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return strscan.New(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a scanner for the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*strscan.Scanner, error) {
	if input == nil {
		return nil, strscan.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("html: cannot parse fragment: %v", err)
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	tracer().Debugf("html: %d nodes, %d bytes of text", len(nodes), b.Len())
	return strscan.New(b.String()), nil
}
