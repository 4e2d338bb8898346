package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/strscan"
)

/*
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

// ErrInvalidUTF8 is flagged if a file does not contain valid UTF-8 text.
const ErrInvalidUTF8 = strscan.ScanError("text file is not valid UTF-8")

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// maxReaders is the number of goroutines reading fragments concurrently.
const maxReaders = 4

// fragment holds a piece of a text-file's content.
type fragment struct {
	content []byte // content of this fragment
	pos     int64  // start position of this fragment within the file
	err     error  // I/O error while reading this fragment
}

// textFile represents an OS file which will be loaded into a scanner.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and creates a scanner for it.
// Clients may indicate a recommended fragment length. It may be 0, letting
// Load use a sensible default depending on the size of the file.
//
// Fragments are read asynchronously, but Load waits until the complete text
// has arrived. Cancelling ctx aborts loading.
//
func Load(ctx context.Context, name string, fragSize int64) (*strscan.Scanner, error) {
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		tf.cast.Close()
		return strscan.New(""), nil
	}
	fragSize = fragmentSize(size, fragSize)
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d", name, size, fragSize)
	text, err := loadAllFragments(ctx, tf, fragSize)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(text) {
		at := firstInvalid(text)
		tracer().Errorf("textfile: %s: invalid UTF-8 at byte %d", name, at)
		return nil, fmt.Errorf("%w: %s, byte %d", ErrInvalidUTF8, name, at)
	}
	return strscan.New(string(text)), nil
}

// fragmentSize returns fragSize if it is a sensible value, or a default
// otherwise.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	if size < 64 {
		fragSize = size
	} else if size < 1024 {
		fragSize = 64
	} else if size < tenKb {
		fragSize = 256
	} else if size < hundredKb {
		fragSize = 512
	} else if size < oneMb {
		fragSize = twoKb
	} else {
		fragSize = sixKb
	}
	return fragSize
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutines -----------------------------------------------

// loadAllFragments starts the fragment readers and collects their output.
// The collector subscribes before any fragment is published and has room for
// every fragment, so publishing never blocks.
func loadAllFragments(ctx context.Context, tf *textFile, fragSize int64) ([]byte, error) {
	size := tf.info.Size()
	n := int((size + fragSize - 1) / fragSize)
	if err := ctx.Err(); err != nil {
		tf.cast.Close()
		return nil, err
	}
	frags, ok := tf.cast.Sub(ctx, uint(n))
	if !ok {
		tf.cast.Close()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("textfile: cannot subscribe to fragments of %s", tf.path)
	}
	positions := make(chan int64, n)
	for k := int64(0); k < size; k += fragSize {
		positions <- k
	}
	close(positions)
	var wg sync.WaitGroup
	for i := 0; i < min(maxReaders, n); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pos := range positions {
				if ctx.Err() != nil {
					return
				}
				tf.cast.Pub(readFragment(tf, pos, fragSize))
			}
		}()
	}
	go func() {
		wg.Wait()
		tf.cast.Close()
	}()
	//
	text := make([]byte, size)
	for loaded := 0; loaded < n; {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m, ok := <-frags:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("textfile: %s: %d of %d fragments loaded", tf.path, loaded, n)
			}
			frag := m.(*fragment)
			if frag.err != nil {
				return nil, frag.err
			}
			copy(text[frag.pos:], frag.content)
			loaded++
		}
	}
	return text, nil
}

func readFragment(tf *textFile, pos int64, fragSize int64) *fragment {
	length := min(fragSize, tf.info.Size()-pos)
	buf := make([]byte, length)
	cnt, err := tf.file.ReadAt(buf, pos)
	frag := &fragment{content: buf, pos: pos}
	if err != nil && err != io.EOF {
		frag.err = fmt.Errorf("error loading text fragment: %w", err)
	} else if int64(cnt) < length {
		frag.err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
	}
	return frag
}

// --- Helpers ---------------------------------------------------------------

func firstInvalid(text []byte) int {
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && w == 1 {
			return i
		}
		i += w
	}
	return len(text)
}
