package metrics

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strscan"
)

func TestFindKeyValuePairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strscan")
	defer teardown()
	//
	content := `
	# comment line
	option1: value1
	option2: value2
`
	p := strscan.Expr(`(?m)(?P<key>\w+):\s+(?P<value>\w+)$`)
	spans, err := Find(content, 0, uint64(len(content)), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 key/value pairs, found %d", len(spans))
	}
	if got := content[spans[1].Pos:spans[1].End()]; got != "option2: value2" {
		t.Errorf("second pair = %q", got)
	}
}

func TestFindInRange(t *testing.T) {
	content := "Londonderry"
	spans, err := Find(content, 2, uint64(len(content)), strscan.Expr(`o.`))
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 1 || spans[0] != (Span{Pos: 4, Len: 2}) {
		t.Fatalf("expected single span [4…6), got %v", spans)
	}
	if cnt, _ := Count(content, 0, uint64(len(content)), strscan.Expr(`o.`)); cnt != 2 {
		t.Errorf("expected to find 2 pattern occurences, found %d", cnt)
	}
	if _, err := Find(content, 5, 2, strscan.Expr(`o`)); !errors.Is(err, strscan.ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := Count(content, 0, 3, strscan.Expr(`(`)); !errors.Is(err, strscan.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestFindEmptyMatches(t *testing.T) {
	cnt, err := Count("ab", 0, 2, strscan.Expr(`x*`))
	if err != nil {
		t.Fatal(err)
	}
	if cnt != 3 {
		t.Errorf("expected 3 empty matches, got %d", cnt)
	}
}

func TestLineCount(t *testing.T) {
	for i, tc := range []struct {
		text string
		n    int
	}{
		{"", 1},
		{"Hello", 1},
		{"Hello\nmy\nname\nis\nSimon", 5},
		{"a\n\nb\n", 4},
	} {
		if n := LineCount(tc.text); n != tc.n {
			t.Errorf("test #%d: LineCount(%q) = %d, want %d", i, tc.text, n, tc.n)
		}
	}
	lines := Lines("Hello\nmy\n\nname")
	if len(lines) != 4 || lines[0] != "Hello" || lines[2] != "" || lines[3] != "name" {
		t.Errorf("Lines = %q", lines)
	}
}

func TestDelimiter(t *testing.T) {
	if _, err := Delimiter(`,*`); !errors.Is(err, ErrIllegalDelimiterPattern) {
		t.Fatalf("expected ErrIllegalDelimiterPattern, got %v", err)
	}
	if _, err := Delimiter(`[`); err == nil {
		t.Fatalf("expected error for uncompilable delimiter")
	}
	d, err := Delimiter(`\s*,\s*`)
	if err != nil {
		t.Fatal(err)
	}
	parts := d.Parts("a, b ,c,")
	want := []string{"a", "b", "c", ""}
	if len(parts) != len(want) {
		t.Fatalf("Parts = %q, want %q", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, parts[i], want[i])
		}
	}
	if d.Count("a, b ,c,") != 4 {
		t.Errorf("Count = %d, want 4", d.Count("a, b ,c,"))
	}
}

func TestFindAnchorsAtResumePoints(t *testing.T) {
	spans, err := Find("aaa", 0, 3, strscan.Expr(`^a`))
	if err != nil || len(spans) != 3 {
		t.Fatalf("expected 3 anchored spans, got %v, %v", spans, err)
	}
	if spans[2].Pos != 2 {
		t.Errorf("third span = %v", spans[2])
	}
	if cnt, _ := Count("xaa", 0, 3, strscan.Expr(`^a`)); cnt != 0 {
		t.Errorf("anchored pattern matched past a mismatch, count = %d", cnt)
	}
}
