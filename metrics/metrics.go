package metrics

import (
	"fmt"

	"github.com/npillmayer/strscan"
)

// Span is a byte-range descriptor inside a text.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// End returns the offset after the last byte of the span.
func (s Span) End() uint64 {
	return s.Pos + s.Len
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s.Pos, s.End())
}

// Find locates all non-overlapping occurrences of p in text[i:j]. Spans are
// reported relative to the start of text.
//
// An empty match is reported, then scanning resumes one rune further on.
//
// Matching runs on the text following the previous occurrence, so anchors
// like ^ and \b apply at every resume point: Find("aaa", 0, 3, Expr("^a"))
// reports three spans.
func Find(text string, i, j uint64, p strscan.Pattern) ([]Span, error) {
	if i > uint64(len(text)) || j > uint64(len(text)) || j < i {
		return nil, strscan.ErrIndexOutOfBounds
	}
	spans := make([]Span, 0, 8)
	s := strscan.New(text[i:j])
	for {
		_, ok, err := s.SkipUntil(p)
		if err != nil {
			return nil, fmt.Errorf("metrics.Find could not be applied: %w", err)
		}
		if !ok {
			break
		}
		m := s.Match()
		spans = append(spans, Span{Pos: i + uint64(m.Start()), Len: uint64(m.Len())})
		if m.Len() == 0 {
			if s.AtEnd() {
				break
			}
			s.ReadRune()
		}
	}
	tracer().Debugf("metrics: found %d occurrences of /%s/", len(spans), p)
	return spans, nil
}

// Count counts the non-overlapping occurrences of p in text[i:j].
func Count(text string, i, j uint64, p strscan.Pattern) (int, error) {
	spans, err := Find(text, i, j, p)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return len(spans), nil
}
