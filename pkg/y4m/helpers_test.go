package y4m

import (
	"bytes"
	"errors"
	"io"
)

// testStream builds a stream of frames for a w x h header, where every
// byte of frame i is i+1 in Y, i+2 in U and i+3 in V.
func testStream(w, h, frames int) []byte {
	var buf bytes.Buffer
	buf.WriteString(NewHeader(w, h, 25).String())
	n := w * h
	for i := 0; i < frames; i++ {
		buf.WriteString("FRAME\n")
		buf.Write(bytes.Repeat([]byte{byte(i + 1)}, n))
		buf.Write(bytes.Repeat([]byte{byte(i + 2)}, n))
		buf.Write(bytes.Repeat([]byte{byte(i + 3)}, n))
	}
	return buf.Bytes()
}

// nopWriteCloser records writes and counts Close calls.
type nopWriteCloser struct {
	bytes.Buffer
	closes   int
	closeErr error
}

func (w *nopWriteCloser) Close() error {
	w.closes++
	return w.closeErr
}

// limitedWriter accepts at most limit bytes in total; writes beyond it are
// truncated and reported with err (which may be nil to model a writer
// that under-reports silently).
type limitedWriter struct {
	nopWriteCloser
	limit int
	err   error
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	room := w.limit - w.Len()
	if room >= len(p) {
		return w.Buffer.Write(p)
	}
	if room < 0 {
		room = 0
	}
	w.Buffer.Write(p[:room])
	return room, w.err
}

// forwardOnly hides any io.Seeker implementation of the wrapped reader.
type forwardOnly struct {
	r io.Reader
}

func (f forwardOnly) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

var errDisk = errors.New("disk full")
