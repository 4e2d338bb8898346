/*
Package excerpt renders positions in a text for humans.

An excerpt shows the line containing a position, together with a marker
pointing to the position. Lines too wide for the output device are clipped to
a window, which starts and ends at line-break opportunities (UAX#14). The
marker column is measured in display cells (UAX#11 over grapheme clusters,
UAX#29), so that it lines up for East Asian wide characters and combining
sequences as well.

	s := strscan.New(input)
	…
	x, _ := excerpt.Make(s.Text(), s.Pos(), nil)
	x.Console(os.Stderr, color.New(color.FgRed))

This package does not handle bi-directional text. Excerpts are output in
logical order.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package excerpt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}
