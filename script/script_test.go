package script

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strscan"
)

func run(t *testing.T, src, text string) ([]Result, *strscan.Scanner, error) {
	t.Helper()
	script, err := Parse("test", src)
	if err != nil {
		t.Fatalf("cannot parse script: %v", err)
	}
	s := strscan.New(text)
	results, err := Run(context.Background(), script, s, nil)
	return results, s, err
}

func TestParse(t *testing.T) {
	script, err := Parse("test", "scan `\\w+`; skip \" \"\n peek 3 repeat { undo } eos")
	if err != nil {
		t.Fatal(err)
	}
	if len(script.Commands) != 5 {
		t.Fatalf("expected 5 commands, got %d", len(script.Commands))
	}
	if c := script.Commands[0]; c.Op != "scan" || *c.Arg.Pattern != `\w+` {
		t.Errorf("first command = %s", c)
	}
	if c := script.Commands[1]; c.Op != "skip" || *c.Arg.Pattern != " " {
		t.Errorf("second command = %s", c)
	}
	if c := script.Commands[2]; c.Op != "peek" || *c.Arg.Count != 3 || c.Pos.Line != 2 {
		t.Errorf("third command = %s at %s", c, c.Pos)
	}
	if c := script.Commands[3]; c.Repeat == nil || len(c.Repeat.Commands) != 1 {
		t.Errorf("fourth command = %s", c)
	}
	if _, err := Parse("test", "scan {"); err == nil {
		t.Errorf("expected syntax error")
	}
}

func TestAlternatingWordsAndSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strscan")
	defer teardown()
	//
	results, s, err := run(t, "repeat { scan `\\w+`; scan `\\s+` } eos; scan `\\w+`; eos",
		"This is an example string")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 13 {
		t.Fatalf("expected 13 results, got %d: %v", len(results), results)
	}
	for i, want := range []string{`"This"`, `" "`, `"is"`, `" "`, `"an"`, `" "`, `"example"`, `" "`, `"string"`} {
		if !results[i].Ok || results[i].Value != want {
			t.Errorf("result #%d = %s, want %s", i, results[i], want)
		}
	}
	if results[9].Ok {
		t.Errorf("space pattern matched at end of text")
	}
	if results[10].Value != "true" || results[11].Ok || results[12].Value != "true" {
		t.Errorf("unexpected tail results %v", results[10:])
	}
	if !s.AtEnd() {
		t.Errorf("scanner not at end")
	}
}

func TestScanUptoAndUndo(t *testing.T) {
	results, s, err := run(t, `scan "t"; scan_upto " "; pos; undo; pos; prev`, "test string")
	if err != nil {
		t.Fatal(err)
	}
	if results[1].Value != `"est"` || results[2].Value != "4" {
		t.Fatalf("scan_upto results = %v", results[:3])
	}
	if results[4].Value != "1" || s.Pos() != 1 {
		t.Fatalf("undo of scan_upto yields pos %s", results[4].Value)
	}
	if results[5].Value != "0" {
		t.Errorf("prev = %s, want 0", results[5].Value)
	}
}

func TestMatchDataCommands(t *testing.T) {
	results, _, err := run(t,
		"matched; skip `test`; scan `(\\s)(x)?`; pre_match; post_match; group 1; group 2; group 7; coords",
		"test string")
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Ok {
		t.Errorf("matched on fresh scanner should fail")
	}
	want := []struct {
		ok    bool
		value string
	}{
		{true, `"test"`}, {true, `"string"`}, {true, `" "`}, {false, ""}, {false, ""},
	}
	for i, w := range want {
		r := results[i+3]
		if r.Ok != w.ok || (w.ok && r.Value != w.value) {
			t.Errorf("%s: got (%v,%s), want (%v,%s)", r.Command, r.Ok, r.Value, w.ok, w.value)
		}
	}
	if c := results[len(results)-1]; c.Value != `1:6 "test string"` {
		t.Errorf("coords = %s", c.Value)
	}
}

func TestCursorCommands(t *testing.T) {
	results, s, err := run(t, "getch; read_rune; peek 2; rest; bol; terminate; read_one; pos 1; rest",
		"aé\nb")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`"a"`, `'é'`, `"\nb"`, `"\nb"`, "false", "", `""`, "1", `"é\nb"`}
	for i, w := range want {
		if results[i].Value != w {
			t.Errorf("%s = %s, want %s", results[i].Command, results[i].Value, w)
		}
	}
	if results[6].Ok {
		t.Errorf("read_one at end should not be ok")
	}
	if s.Pos() != 1 {
		t.Errorf("pos = %d", s.Pos())
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		src string
		err error
	}{
		{"frobnicate", ErrUnknownCommand},
		{"scan", ErrArgument},
		{"scan 3", ErrArgument},
		{"peek `x`", ErrArgument},
		{"rest 1", ErrArgument},
		{"undo", strscan.ErrEmptyHistory},
		{"scan `(`", strscan.ErrInvalidPattern},
		{"pos 99", strscan.ErrIndexOutOfBounds},
	} {
		_, _, err := run(t, tc.src, "abc")
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: expected %v, got %v", tc.src, tc.err, err)
		}
	}
	results, _, err := run(t, "skip `a`; undo; undo", "abc")
	if !errors.Is(err, strscan.ErrEmptyHistory) || len(results) != 2 {
		t.Errorf("expected 2 results before error, got %d, %v", len(results), err)
	}
}

func TestRepeatTerminates(t *testing.T) {
	results, s, err := run(t, "repeat { check `a` }", "aaa")
	if err != nil || len(results) != 1 || s.Pos() != 0 {
		t.Fatalf("repeat without progress ran %d times, %v", len(results), err)
	}
	script, _ := Parse("test", "repeat { read_one; undo; read_one; read_one; undo }")
	s = strscan.New(strings.Repeat("x", 50))
	_, err = Run(context.Background(), script, s, &Config{MaxIterations: 10})
	if !errors.Is(err, ErrRunaway) {
		t.Fatalf("expected ErrRunaway, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = Run(ctx, script, strscan.New("abc"), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOutput(t *testing.T) {
	script, _ := Parse("test", "scan `\\w+`; scan `\\d`")
	var b strings.Builder
	_, err := Run(context.Background(), script, strscan.New("hello 1"), &Config{Output: &b})
	if err != nil {
		t.Fatal(err)
	}
	want := "scan `\\w+` = \"hello\" @5\nscan `\\d` = nil @5\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestParseRawStringKeepsBackslashes(t *testing.T) {
	script, err := Parse("test", "scan `\\d+\\s`; check \"a\\tb\"; skip ``")
	if err != nil {
		t.Fatal(err)
	}
	if p := *script.Commands[0].Arg.Pattern; p != `\d+\s` {
		t.Errorf("raw string pattern = %q, want %q", p, `\d+\s`)
	}
	if p := *script.Commands[1].Arg.Pattern; p != "a\tb" {
		t.Errorf("interpreted string pattern = %q, want %q", p, "a\tb")
	}
	if p := *script.Commands[2].Arg.Pattern; p != "" {
		t.Errorf("empty raw string pattern = %q", p)
	}
	results, _, err := run(t, "scan `\\d+\\s`; scan `[a-z]\\w*`", "42 abc")
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Value != `"42 "` || results[1].Value != `"abc"` {
		t.Errorf("unexpected results %v", results)
	}
}
