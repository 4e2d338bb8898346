package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strscan"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strscan")
	defer teardown()
	//
	s, err := TextFromHTML(strings.NewReader(`<p>Hello <b>World</b>, how <i>are</i> you?</p>`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Text() != "Hello World, how are you?" {
		t.Fatalf("unexpected text %q", s.Text())
	}
	if w, ok, _ := s.ScanUntil(strscan.Expr(`World`)); !ok || w != "Hello World" {
		t.Errorf("ScanUntil(World) = (%q,%v)", w, ok)
	}
}

func TestInnerText(t *testing.T) {
	nodes, err := html.ParseFragment(strings.NewReader(
		`<div><span id="x">inner <em>text</em></span> outer</div>`), nil)
	if err != nil {
		t.Fatal(err)
	}
	var span *html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			span = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	for _, n := range nodes {
		find(n)
	}
	if span == nil {
		t.Fatalf("span not found")
	}
	s, err := InnerText(span)
	if err != nil {
		t.Fatal(err)
	}
	if s.Text() != "inner text" {
		t.Fatalf("inner text = %q", s.Text())
	}
	if _, err := InnerText(nil); !errors.Is(err, strscan.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}
