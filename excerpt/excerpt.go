package excerpt

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/strscan"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for excerpts.
type Config struct {
	LineWidth int            // maximum display width of an excerpt, in en; 0 for no limit
	Context   *uax11.Context // context for measuring character widths
}

// Excerpt is the visible part of a text line around a position.
type Excerpt struct {
	Coords       strscan.Coords // coordinates of the position
	Window       string         // visible part of Coords.LineText
	Offset       int            // byte offset of Window within the line
	Caret        int            // display column of the position within Window
	ClippedLeft  bool           // text of the line precedes Window
	ClippedRight bool           // text of the line follows Window
	context      *uax11.Context
}

// Make creates an excerpt for byte position pos of text.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment. It is safe to have config.Context set to nil. In
// this case, uax11.LatinContext is used.
func Make(text string, pos int, config *Config) (Excerpt, error) {
	coords, err := strscan.Locate(text, pos)
	if err != nil {
		return Excerpt{}, err
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	line := coords.LineText
	x := Excerpt{Coords: coords, Window: line, context: context}
	if config.LineWidth > 0 && displayWidth(line, context) > config.LineWidth {
		breaks := firstFit(line, config.LineWidth, context)
		start := 0
		for _, end := range breaks {
			if coords.Column < end || end == len(line) {
				x.Window, x.Offset = line[start:end], start
				x.ClippedLeft, x.ClippedRight = start > 0, end < len(line)
				break
			}
			start = end
		}
		tracer().Debugf("excerpt: line %d clipped to [%d…%d)", coords.Line+1,
			x.Offset, x.Offset+len(x.Window))
	}
	x.Caret = displayWidth(line[x.Offset:coords.Column], context)
	return x, nil
}

// FromScanner creates an excerpt for the scan position of s.
func FromScanner(s *strscan.Scanner, config *Config) (Excerpt, error) {
	return Make(s.Text(), s.Pos(), config)
}

// At returns the part of the window starting at the position.
func (x Excerpt) At() string {
	return x.Window[x.Coords.Column-x.Offset:]
}

// --- Line breaking ---------------------------------------------------------
/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
// firstFit returns the end positions of the rows of line, broken at UAX#14
// break opportunities. Fragments too wide for a row get a row of their own.
func firstFit(line string, linewidth int, context *uax11.Context) []int {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(line)))
	breaks := make([]int, 0, 8)
	spaceleft, prevpos, linestart := linewidth, 0, true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := displayWidth(frag, context)
		if fraglen > spaceleft && !linestart { // fragment overshoots line
			breaks = append(breaks, prevpos)
			spaceleft, linestart = linewidth, true
		}
		prevpos += len(frag)
		if fraglen > linewidth { // fragment is too long for a line
			breaks = append(breaks, prevpos)
			spaceleft, linestart = linewidth, true
			continue
		}
		spaceleft -= fraglen
		linestart = false
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] < prevpos {
		breaks = append(breaks, prevpos)
	}
	return breaks
}

// --- Character widths ------------------------------------------------------

var graphemeSetup sync.Once

// displayWidth measures s in fixed-width cells. Tabs count as a single cell,
// as they are output as spaces.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	s = strings.ReplaceAll(s, "\t", " ")
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}
