package metrics

import (
	"testing"
)

func TestWordsApplyWholeText(t *testing.T) {
	c := "Hello  my\nname\tis Simon"

	value, materialized, err := Words().Apply(c, 0, uint64(len(c)))
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 5 {
		t.Fatalf("unexpected word count: got=%d want=5", value.WordCount())
	}
	if materialized != "HellomynameisSimon" {
		t.Fatalf("unexpected materialized text: got=%q", materialized)
	}
	want := []Span{
		{Pos: 0, Len: 5},
		{Pos: 7, Len: 2},
		{Pos: 10, Len: 4},
		{Pos: 15, Len: 2},
		{Pos: 18, Len: 5},
	}
	if len(value.Spans) != len(want) {
		t.Fatalf("unexpected spans len: got=%d want=%d", len(value.Spans), len(want))
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Fatalf("span %d mismatch: got=%+v want=%+v", i, value.Spans[i], want[i])
		}
	}
}

func TestWordsApplySubrange(t *testing.T) {
	c := "xx Hello world yy"
	// "Hello world"
	value, materialized, err := Words().Apply(c, 3, 14)
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 2 {
		t.Fatalf("unexpected word count: got=%d want=2", value.WordCount())
	}
	if value.Spans[0] != (Span{Pos: 3, Len: 5}) {
		t.Fatalf("first span mismatch: got=%+v", value.Spans[0])
	}
	if value.Spans[1] != (Span{Pos: 9, Len: 5}) {
		t.Fatalf("second span mismatch: got=%+v", value.Spans[1])
	}
	if materialized != "Helloworld" {
		t.Fatalf("unexpected materialized text: got=%q", materialized)
	}
}

func TestWordsUnicodeSpaces(t *testing.T) {
	c := "grüße aus Köln"
	value, materialized, err := Words().Apply(c, 0, uint64(len(c)))
	if err != nil {
		t.Fatal(err)
	}
	if value.WordCount() != 3 || materialized != "grüßeausKöln" {
		t.Fatalf("unexpected words %v, %q", value.Spans, materialized)
	}
}

func TestWordsApplyBoundsValidation(t *testing.T) {
	_, _, err := Words().Apply("abc", 2, 1)
	if err == nil {
		t.Fatalf("expected error for invalid range")
	}
	value, _, err := Words().Apply("   ", 0, 3)
	if err != nil || value.WordCount() != 0 {
		t.Fatalf("expected no words in blank text, got %v, %v", value, err)
	}
}
