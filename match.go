package strscan

import (
	"fmt"
	"regexp"
)

// Match is the result of a successful match attempt. Offsets are byte
// positions in the scanner's text; End is exclusive.
//
// A Match is immutable and stays valid after the scanner has moved on.
type Match struct {
	text  string
	locs  []int // pairs of absolute offsets, -1 for groups not participating
	names []string
}

// newMatch creates a match from submatch indices as returned by
// regexp.FindStringSubmatchIndex on text[base:].
func newMatch(text string, base int, loc []int, re *regexp.Regexp) *Match {
	if loc == nil {
		return nil
	}
	locs := make([]int, len(loc))
	for i, l := range loc {
		if l < 0 {
			locs[i] = -1
			continue
		}
		locs[i] = base + l
	}
	return &Match{text: text, locs: locs, names: re.SubexpNames()}
}

// Start returns the offset of the first byte of the match.
func (m *Match) Start() int {
	return m.locs[0]
}

// End returns the offset after the last byte of the match.
func (m *Match) End() int {
	return m.locs[1]
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.locs[1] - m.locs[0]
}

// Text returns the matched text.
func (m *Match) Text() string {
	return m.text[m.locs[0]:m.locs[1]]
}

// GroupCount returns the number of capture groups of the pattern, not counting
// the whole match.
func (m *Match) GroupCount() int {
	return len(m.locs)/2 - 1
}

// Group returns capture group i, with group 0 being the whole match. ok is
// false if group i did not participate in the match.
func (m *Match) Group(i int) (group string, ok bool) {
	if i < 0 || 2*i+1 >= len(m.locs) || m.locs[2*i] < 0 {
		return "", false
	}
	return m.text[m.locs[2*i]:m.locs[2*i+1]], true
}

// NamedGroup returns the capture group called name.
func (m *Match) NamedGroup(name string) (group string, ok bool) {
	if name == "" {
		return "", false
	}
	for i, n := range m.names {
		if n == name {
			return m.Group(i)
		}
	}
	return "", false
}

// Groups returns all capture groups, excluding the whole match. Groups not
// participating in the match are returned as empty strings.
func (m *Match) Groups() []string {
	groups := make([]string, 0, m.GroupCount())
	for i := 1; i <= m.GroupCount(); i++ {
		g, _ := m.Group(i)
		groups = append(groups, g)
	}
	return groups
}

func (m *Match) String() string {
	if m == nil {
		return "<no match>"
	}
	return fmt.Sprintf("match[%d:%d]=%q", m.Start(), m.End(), m.Text())
}
