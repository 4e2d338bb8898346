package strscan

import (
	"fmt"
	"regexp"
)

type patternKind uint8

const (
	noPattern patternKind = iota
	exprPattern
	compiledPattern
)

// Pattern is the argument type for all scanning operations. It is either a raw
// expression string, compiled on first use, or an already compiled regular
// expression.
//
// The zero value is not a valid pattern; scanning with it yields
// ErrInvalidPattern.
type Pattern struct {
	kind patternKind
	expr string
	re   *regexp.Regexp
}

// Expr creates a pattern from a regular expression string (RE2 syntax).
// Compilation is deferred to the first scanning operation using the pattern.
func Expr(expr string) Pattern {
	return Pattern{kind: exprPattern, expr: expr}
}

// Compiled wraps a compiled regular expression as a pattern.
func Compiled(re *regexp.Regexp) Pattern {
	return Pattern{kind: compiledPattern, re: re}
}

// Compile compiles a regular expression string to a pattern.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return Compiled(re), nil
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
func MustCompile(expr string) Pattern {
	return Compiled(regexp.MustCompile(expr))
}

// String returns the source text of the pattern.
func (p Pattern) String() string {
	switch p.kind {
	case exprPattern:
		return p.expr
	case compiledPattern:
		if p.re != nil {
			return p.re.String()
		}
	}
	return "<invalid pattern>"
}

// --- Compiled matchers -----------------------------------------------------

// matcher holds the forms of a pattern needed by the scanner: the pattern
// itself for searching and, for raw expressions, a variant anchored at the
// start of input.
//
// Compiled regular expressions carry flags (e.g. Longest) which cannot be
// transferred to a recompiled variant. For them, anchored is nil and anchored
// matching runs the search expression, accepting only matches starting at the
// scan pointer. This is exact: the leftmost match starts at the pointer
// whenever any match does.
type matcher struct {
	search   *regexp.Regexp
	anchored *regexp.Regexp
}

func newMatcher(re *regexp.Regexp) (*matcher, error) {
	anchored, err := regexp.Compile(`\A(?:` + re.String() + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, re.String(), err)
	}
	return &matcher{search: re, anchored: anchored}, nil
}

// matchAt returns submatch indices for input, relative to input. If atStart
// is set, only a match starting at 0 is accepted.
func (m *matcher) matchAt(input string, atStart bool) (loc []int, re *regexp.Regexp) {
	if !atStart {
		return m.search.FindStringSubmatchIndex(input), m.search
	}
	if m.anchored != nil {
		return m.anchored.FindStringSubmatchIndex(input), m.anchored
	}
	loc = m.search.FindStringSubmatchIndex(input)
	if loc != nil && loc[0] != 0 {
		loc = nil
	}
	return loc, m.search
}

// matcherCache caches matchers per scanner. Raw expressions are cached by
// source text, compiled expressions by identity.
type matcherCache struct {
	byExpr   map[string]*matcher
	byRegexp map[*regexp.Regexp]*matcher
}

func newMatcherCache() matcherCache {
	return matcherCache{
		byExpr:   make(map[string]*matcher),
		byRegexp: make(map[*regexp.Regexp]*matcher),
	}
}

// resolve normalizes a pattern argument into a matcher. It is the only place
// where pattern kinds are distinguished.
func (mc matcherCache) resolve(p Pattern) (*matcher, error) {
	switch p.kind {
	case exprPattern:
		if m, ok := mc.byExpr[p.expr]; ok {
			return m, nil
		}
		re, err := regexp.Compile(p.expr)
		if err != nil {
			tracer().Errorf("strscan: cannot compile pattern %q", p.expr)
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p.expr, err)
		}
		m, err := newMatcher(re)
		if err != nil {
			return nil, err
		}
		mc.byExpr[p.expr] = m
		return m, nil
	case compiledPattern:
		if p.re == nil {
			return nil, fmt.Errorf("%w: nil regular expression", ErrInvalidPattern)
		}
		if m, ok := mc.byRegexp[p.re]; ok {
			return m, nil
		}
		m := &matcher{search: p.re}
		mc.byRegexp[p.re] = m
		return m, nil
	}
	return nil, fmt.Errorf("%w: %#v", ErrInvalidPattern, p)
}
