/*
Package metrics provides some pre-manufactured metrics on texts.

Metrics are calculated by driving a strscan.Scanner over the text, so every
pattern accepted by the scanner may be used to delimit or locate items.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}
