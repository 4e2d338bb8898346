/*
Package script implements a small command language for driving a scanner.

A script is a sequence of commands, optionally separated by semicolons. Each
command names a scanner operation, followed by a pattern (a Go string or raw
string) or a count, if the operation needs one:

	skip `\s*`
	scan `\w+`; skip_until ":"
	repeat {
		scan_upto `,|$`
		skip `,`
	}
	coords

`repeat { … }` runs its body until an iteration leaves the scan position
unchanged or the scanner has reached the end of the text. Comments use Go
syntax.

Scripts are parsed with participle. Running a script produces one Result per
executed command.
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}
