package excerpt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const ellipsis = "…"

// Console outputs an excerpt to a console with a fixed width font: a line
// with the coordinates and the window, followed by a line with a caret below
// the position. c colors the caret; it may be nil.
//
//	2:5: ghijkl
//	         ^
func (x Excerpt) Console(w io.Writer, c *color.Color) error {
	prefix := x.Coords.String() + ": "
	var b strings.Builder
	b.WriteString(prefix)
	indent := len(prefix) + x.Caret
	if x.ClippedLeft {
		b.WriteString(ellipsis)
		indent += displayWidth(ellipsis, x.context)
	}
	b.WriteString(strings.ReplaceAll(x.Window, "\t", " "))
	if x.ClippedRight {
		b.WriteString(ellipsis)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", indent))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	var err error
	if c != nil {
		_, err = c.Fprint(w, "^")
	} else {
		_, err = io.WriteString(w, "^")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// --- Config for terminals --------------------------------------------------

// fallbackWidth is the excerpt width if stdout is not a terminal.
const fallbackWidth = 65

// ConfigFromTerminal creates a Config for excerpts printed to stdout. If
// stdout is a terminal, LineWidth follows its number of columns, leaving room
// for the coordinates prefix.
func ConfigFromTerminal() *Config {
	width := fallbackWidth
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil {
			width = excerptWidth(cols)
		}
	}
	tracer().Debugf("excerpt: line width for stdout is %d en", width)
	return &Config{LineWidth: width}
}

// excerptWidth is the line width for a terminal with cols columns.
func excerptWidth(cols int) int {
	switch {
	case cols > 65:
		return cols - 10
	case cols > 30:
		return cols - 5
	}
	return max(cols, 10)
}
