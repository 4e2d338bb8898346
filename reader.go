package strscan

import "io"

// Reader returns a reader for the pending text. Reading does not move the
// scan pointer; the reader works on the text pending at the time of the call.
func (s *Scanner) Reader() io.Reader {
	return &restReader{text: s.text, cursor: s.Pos()}
}

type restReader struct {
	text   string
	cursor int
}

func (rr *restReader) Read(p []byte) (n int, err error) {
	if rr.cursor >= len(rr.text) {
		return 0, io.EOF
	}
	n = copy(p, rr.text[rr.cursor:])
	rr.cursor += n
	return n, nil
}
