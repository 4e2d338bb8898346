package strscan

import (
	"fmt"
	"io"
)

// Scanner is a scan pointer into an immutable text, together with the
// history of pointer positions and matches.
//
// A Scanner created by New is ready to use. The zero value is not.
type Scanner struct {
	text     string
	hist     history
	patterns matcherCache
}

// New creates a scanner for text, with the scan pointer at 0.
func New(text string) *Scanner {
	return &Scanner{
		text:     text,
		hist:     newHistory(),
		patterns: newMatcherCache(),
	}
}

// FromReader reads all of r and creates a scanner for its content.
func FromReader(r io.Reader) (*Scanner, error) {
	if r == nil {
		return nil, ErrIllegalArguments
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("strscan: cannot read text: %w", err)
	}
	return New(string(b)), nil
}

// Text returns the complete text of the scanner.
func (s *Scanner) Text() string {
	return s.text
}

// Len returns the length of the text in bytes.
func (s *Scanner) Len() int {
	return len(s.text)
}

// Pos returns the current position of the scan pointer.
func (s *Scanner) Pos() int {
	pos, _ := s.hist.top()
	return pos
}

// Prev returns the position the scan pointer had before the latest mutating
// call. Initially this is 0.
func (s *Scanner) Prev() int {
	return s.hist.previous()
}

// Match returns the latest match, or nil if the latest mutating call did not
// produce a match.
func (s *Scanner) Match() *Match {
	_, m := s.hist.top()
	return m
}

// Outcome is the result of the scanning primitives ScanFull and SearchFull.
type Outcome struct {
	Matched bool   // did the pattern match?
	Text    string // scanned text, if requested
	Len     int    // length of the scanned text in bytes
}

// ScanFull tries to match p exactly at the scan pointer.
//
// If advance is set, a match moves the scan pointer to the end of the match.
// If wantString is set, the matched text is reported in Outcome.Text.
// Match and pointer are recorded in the history in any case, even if p does
// not match.
func (s *Scanner) ScanFull(p Pattern, wantString, advance bool) (Outcome, error) {
	m, err := s.patterns.resolve(p)
	if err != nil {
		return Outcome{}, err
	}
	return s.attempt(m, true, wantString, advance), nil
}

// SearchFull searches for the first match of p at or after the scan pointer.
//
// The text reported covers everything from the scan pointer up to the end of
// the match, including any text skipped. Otherwise SearchFull behaves like
// ScanFull.
func (s *Scanner) SearchFull(p Pattern, wantString, advance bool) (Outcome, error) {
	m, err := s.patterns.resolve(p)
	if err != nil {
		return Outcome{}, err
	}
	return s.attempt(m, false, wantString, advance), nil
}

// attempt runs m on the pending text and records the result. It is the single
// place where scanning operations change scanner state.
func (s *Scanner) attempt(m *matcher, atStart, wantString, advance bool) Outcome {
	pos := s.Pos()
	var match *Match
	if pos <= len(s.text) {
		loc, re := m.matchAt(s.text[pos:], atStart)
		match = newMatch(s.text, pos, loc, re)
	}
	newpos := pos
	if match != nil && advance {
		newpos = match.End()
	}
	s.hist.push(newpos, match)
	tracer().Debugf("strscan: /%s/ @ %d -> %v", m.search, pos, match)
	if match == nil {
		return Outcome{}
	}
	out := Outcome{Matched: true, Len: match.End() - pos}
	if wantString {
		out.Text = s.text[pos:match.End()]
	}
	return out
}

// Scan matches p at the scan pointer. On a match it advances the pointer and
// returns the matched text.
func (s *Scanner) Scan(p Pattern) (string, bool, error) {
	out, err := s.ScanFull(p, true, true)
	return out.Text, out.Matched, err
}

// Skip is like Scan, but returns the number of bytes matched.
func (s *Scanner) Skip(p Pattern) (int, bool, error) {
	out, err := s.ScanFull(p, false, true)
	return out.Len, out.Matched, err
}

// Check reports what Scan would return, without advancing the scan pointer.
func (s *Scanner) Check(p Pattern) (string, bool, error) {
	out, err := s.ScanFull(p, true, false)
	return out.Text, out.Matched, err
}

// ScanUntil searches for p from the scan pointer on. On a match it advances
// the pointer and returns the text from the old pointer position up to the
// end of the match.
func (s *Scanner) ScanUntil(p Pattern) (string, bool, error) {
	out, err := s.SearchFull(p, true, true)
	return out.Text, out.Matched, err
}

// SkipUntil is like ScanUntil, but returns the number of bytes advanced.
func (s *Scanner) SkipUntil(p Pattern) (int, bool, error) {
	out, err := s.SearchFull(p, false, true)
	return out.Len, out.Matched, err
}

// CheckUntil reports what ScanUntil would return, without advancing the scan
// pointer.
func (s *Scanner) CheckUntil(p Pattern) (string, bool, error) {
	out, err := s.SearchFull(p, true, false)
	return out.Text, out.Matched, err
}

// Exists reports what SkipUntil would return, without advancing the scan
// pointer.
func (s *Scanner) Exists(p Pattern) (int, bool, error) {
	out, err := s.SearchFull(p, false, false)
	return out.Len, out.Matched, err
}

// ScanUpto scans up to, but not including, the next occurrence of p. The
// occurrence itself stays pending.
//
// ScanUpto is a single step in the scanner history: one Undo restores the
// state before the call.
func (s *Scanner) ScanUpto(p Pattern) (string, bool, error) {
	before := s.Pos()
	out, err := s.SearchFull(p, false, true)
	if err != nil || !out.Matched {
		return "", false, err
	}
	m := s.Match()
	s.hist.rewriteTop(m.Start())
	return s.text[before:m.Start()], true, nil
}

// Undo resets scan pointer and match to the state before the latest mutating
// call. Undoing past the initial state yields ErrEmptyHistory.
func (s *Scanner) Undo() error {
	if err := s.hist.pop(); err != nil {
		tracer().Errorf("strscan: undo on initial state")
		return err
	}
	return nil
}

// HistoryLen returns the number of entries in the scanner history, including
// the initial entry.
func (s *Scanner) HistoryLen() int {
	return s.hist.len()
}

// PositionHistory returns a copy of all scan pointer positions recorded,
// oldest first.
func (s *Scanner) PositionHistory() []int {
	return append([]int(nil), s.hist.positions...)
}
