package strscan

import (
	"fmt"
	"strings"
)

// Coords is a human-readable text position. Line and Column are zero-based;
// Column counts bytes from the start of the line. LineText is the complete
// line containing the position, without newline characters.
type Coords struct {
	Line     int
	Column   int
	LineText string
}

func (c Coords) String() string {
	return fmt.Sprintf("%d:%d", c.Line+1, c.Column+1)
}

// Locate transforms a byte offset into text into line/column coordinates.
//
//	Locate("abcdef\nghijkl", 7)  // {1, 0, "ghijkl"}
//	Locate("abcdef\nghijkl", 4)  // {0, 4, "abcdef"}
//
// Locate depends on text and pos only; it does not need a scanner.
func Locate(text string, pos int) (Coords, error) {
	if pos < 0 || pos > len(text) {
		return Coords{}, ErrIndexOutOfBounds
	}
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		lineEnd = pos + i
	}
	return Coords{
		Line:     strings.Count(text[:pos], "\n"),
		Column:   pos - lineStart,
		LineText: text[lineStart:lineEnd],
	}, nil
}

// Coords returns the coordinates of the scan pointer.
func (s *Scanner) Coords() Coords {
	c, err := Locate(s.text, s.Pos())
	assert(err == nil, "strscan: scan pointer outside of text")
	return c
}
