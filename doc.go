/*
Package strscan offers a lexical scanning cursor over an immutable text.

Scanners

A Scanner keeps a scan pointer into a text. Everything before the pointer has
been scanned, everything from the pointer onward is pending. Scanning works by
matching regular expressions against the pending text, either anchored at the
pointer or searched for anywhere after it:

	s := strscan.New("This is an example string")
	s.Scan(strscan.Expr(`\w+`))   // "This", true, nil
	s.Scan(strscan.Expr(`\w+`))   // "", false, nil
	s.Scan(strscan.Expr(`\s+`))   // " ", true, nil
	s.ScanUntil(strscan.Expr(`x`)) // "is an ex", true, nil

Operations come in families: Scan/Skip/Check match at the pointer and
ScanUntil/SkipUntil/CheckUntil/Exists search forward. Skip-style operations
report lengths, Check-style operations do not move the pointer. ScanUpto scans
up to, but not including, the next occurrence of a pattern.

The mechanism is similar to Ruby's StringScanner. As with StringScanner, `^`
and `\A` in a pattern anchor at the scan pointer, not at the start of the text.

Positions

Positions are byte offsets into the UTF-8 encoded text. The scanner does not
try to keep the pointer on rune boundaries; patterns and ReadRune do, ReadOne
and SetPos may not.

History

Every mutating call records the resulting pointer and match on a pair of
history stacks, even if the call did not match anything. Undo pops one entry
and restores the previous state. The history is never trimmed.

Concurrency

A Scanner is not safe for concurrent use. Clients have to serialize access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strscan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strscan'
func tracer() tracing.Trace {
	return tracing.Select("strscan")
}

// ScanError is an error type for the strscan module
type ScanError string

func (e ScanError) Error() string {
	return string(e)
}

// ErrInvalidPattern is flagged whenever a pattern argument is neither a
// compilable expression nor a compiled regular expression.
const ErrInvalidPattern = ScanError("invalid pattern")

// ErrNoActiveMatch is flagged if match data is requested while the latest
// scan did not match.
const ErrNoActiveMatch = ScanError("no match on this scanner")

// ErrEmptyHistory signals an attempt to undo past the initial scanner state.
const ErrEmptyHistory = ScanError("cannot undo past initial state")

// ErrIndexOutOfBounds is flagged whenever a position is
// greater than the length of the text.
const ErrIndexOutOfBounds = ScanError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ScanError("illegal arguments")

// ErrNoSuchGroup is flagged for capture group requests the current match
// cannot serve.
const ErrNoSuchGroup = ScanError("no such capture group")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
