package metrics

import (
	"strings"

	"github.com/npillmayer/strscan"
)

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric. Words are maximal runs of
// non-whitespace characters.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// word covers the same whitespace as unicode.IsSpace.
var word = strscan.MustCompile(`[^\s\x{85}\p{Z}]+`)

// Apply scans [i,j) for words and returns word spans plus a materialized text.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators.
func (WordsMetric) Apply(text string, i, j uint64) (WordsValue, string, error) {
	spans, err := Find(text, i, j, word)
	if err != nil {
		return WordsValue{}, "", err
	}
	value := WordsValue{Spans: spans}
	if len(spans) == 0 {
		return value, "", nil
	}
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(text[span.Pos:span.End()])
	}
	return value, b.String(), nil
}
