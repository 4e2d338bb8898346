/*
Package textfile provides API helpers to load UTF-8 text files as scanners.

Files are read in fragments by a small set of goroutines. Every fragment is
broadcast as soon as it has been read; Load collects the fragments and creates
a scanner once the complete text is resident. Load itself is synchronous.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}
