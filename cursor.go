package strscan

import (
	"io"
	"unicode/utf8"
)

// AtEnd reports whether the scan pointer is at the end of the text.
func (s *Scanner) AtEnd() bool {
	return s.Pos() == len(s.text)
}

// AtLineStart reports whether the scan pointer is at the beginning of a line,
// i.e. at position 0 or just after a newline. defined is false if the pointer
// is outside of the text, which should not happen.
func (s *Scanner) AtLineStart() (atStart bool, defined bool) {
	pos := s.Pos()
	switch {
	case pos > len(s.text):
		return false, false
	case pos == 0:
		return true, true
	}
	return s.text[pos-1] == '\n', true
}

// Peek returns the next n bytes of text without advancing the scan pointer.
// Fewer bytes are returned near the end of the text.
func (s *Scanner) Peek(n int) string {
	pos := s.Pos()
	if n <= 0 || pos >= len(s.text) {
		return ""
	}
	end := pos + n
	if end > len(s.text) || end < pos {
		end = len(s.text)
	}
	return s.text[pos:end]
}

// Rest returns the text which has not been scanned yet.
func (s *Scanner) Rest() string {
	pos := s.Pos()
	if pos >= len(s.text) {
		return ""
	}
	return s.text[pos:]
}

// ReadOne consumes a single byte and returns it. At the end of the text it
// returns the empty string; the call is recorded in the history nonetheless.
// The current match is left untouched.
func (s *Scanner) ReadOne() string {
	pos := s.Pos()
	if pos >= len(s.text) {
		s.hist.push(pos, s.Match())
		return ""
	}
	s.hist.push(pos+1, s.Match())
	return s.text[pos : pos+1]
}

// ReadRune consumes the UTF-8 encoded rune at the scan pointer and returns it
// together with its width in bytes. It implements io.RuneReader.
//
// At the end of text ReadRune returns io.EOF. Invalid encodings yield
// utf8.RuneError and consume a single byte. The call is recorded in the
// history in any case; the current match is left untouched.
func (s *Scanner) ReadRune() (r rune, size int, err error) {
	pos := s.Pos()
	if pos >= len(s.text) {
		s.hist.push(pos, s.Match())
		return 0, 0, io.EOF
	}
	r, size = utf8.DecodeRuneInString(s.text[pos:])
	s.hist.push(pos+size, s.Match())
	return r, size, nil
}

// SetPos moves the scan pointer to an absolute position. The current match is
// left untouched.
func (s *Scanner) SetPos(pos int) error {
	if pos < 0 || pos > len(s.text) {
		return ErrIndexOutOfBounds
	}
	s.hist.push(pos, s.Match())
	return nil
}

// Terminate moves the scan pointer to the end of the text and clears the
// match. This is a hard jump; it is recorded in the history, but undoing it
// is rarely useful.
func (s *Scanner) Terminate() {
	s.hist.push(len(s.text), nil)
}

// Matched returns the text of the latest match.
func (s *Scanner) Matched() (string, error) {
	m := s.Match()
	if m == nil {
		return "", ErrNoActiveMatch
	}
	return m.Text(), nil
}

// PreMatch returns the text preceding the latest match.
func (s *Scanner) PreMatch() (string, error) {
	m := s.Match()
	if m == nil {
		return "", ErrNoActiveMatch
	}
	return s.text[:m.Start()], nil
}

// PostMatch returns the text following the latest match.
func (s *Scanner) PostMatch() (string, error) {
	m := s.Match()
	if m == nil {
		return "", ErrNoActiveMatch
	}
	return s.text[m.End():], nil
}

// Group returns capture group i of the latest match; group 0 is the whole
// match.
func (s *Scanner) Group(i int) (string, error) {
	m := s.Match()
	if m == nil {
		return "", ErrNoActiveMatch
	}
	g, ok := m.Group(i)
	if !ok {
		return "", ErrNoSuchGroup
	}
	return g, nil
}

// NamedGroup returns the capture group called name of the latest match.
func (s *Scanner) NamedGroup(name string) (string, error) {
	m := s.Match()
	if m == nil {
		return "", ErrNoActiveMatch
	}
	g, ok := m.NamedGroup(name)
	if !ok {
		return "", ErrNoSuchGroup
	}
	return g, nil
}
