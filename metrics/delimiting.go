package metrics

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/strscan"
)

// ErrIllegalDelimiterPattern is flagged if a delimiter pattern is not suited
// to split a text, e.g. because it matches the empty string.
const ErrIllegalDelimiterPattern = strscan.ScanError("illegal delimiter pattern")

// --- Delimiter Metric ------------------------------------------------------

// DelimiterMetric splits texts at occurrences of a delimiter pattern.
type DelimiterMetric struct {
	pattern strscan.Pattern
}

// Delimiter creates a metric splitting text at matches of expr. expr must not
// match the empty string.
func Delimiter(expr string) (*DelimiterMetric, error) {
	r, err := regexp.Compile(expr)
	if err != nil {
		tracer().Errorf("delimiter metric: cannot compile regular expression input")
		return nil, fmt.Errorf("illegal delimiter: %w", err)
	}
	if r.MatchString("") {
		tracer().Errorf("delimiter metric: regular expression matches empty string")
		return nil, ErrIllegalDelimiterPattern
	}
	return &DelimiterMetric{pattern: strscan.Compiled(r)}, nil
}

// Parts returns the segments of text between delimiters. A text without
// delimiters is a single segment; a trailing delimiter yields an empty last
// segment.
func (dm *DelimiterMetric) Parts(text string) []string {
	parts := make([]string, 0, 8)
	s := strscan.New(text)
	for {
		part, ok, err := s.ScanUpto(dm.pattern)
		assert(err == nil, "delimiter metric: pattern rejected by scanner")
		if !ok {
			break
		}
		parts = append(parts, part)
		s.Skip(dm.pattern)
	}
	return append(parts, s.Rest())
}

// Count returns the number of segments of text.
func (dm *DelimiterMetric) Count(text string) int {
	s := strscan.New(text)
	cnt := 1
	for {
		if _, ok, _ := s.SkipUntil(dm.pattern); !ok {
			break
		}
		cnt++
	}
	return cnt
}

// --- Line count metric -----------------------------------------------------

var lines, _ = Delimiter("\n")

// LineCount counts the lines of a text, delimited by newline characters.
// Multiple consecutive newlines will be counted as multiple empty lines; an
// empty text has a single (empty) line.
func LineCount(text string) int {
	return lines.Count(text)
}

// Lines splits a text into lines, without newline characters.
func Lines(text string) []string {
	return lines.Parts(text)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
