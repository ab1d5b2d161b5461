package y4m

import (
	"bufio"
	"fmt"
	"io"
)

// frameHeader is the marker line written before every frame payload.
const frameHeader = frameMarker + "\n"

// WriteFrame writes a FRAME marker followed by the Y, U and V planes.
// A writer that accepts fewer bytes than offered yields ErrShortWrite.
func WriteFrame(w io.Writer, y, u, v []byte) error {
	for _, chunk := range [][]byte{[]byte(frameHeader), y, u, v} {
		n, err := w.Write(chunk)
		if n != len(chunk) {
			if err == nil {
				err = io.ErrShortWrite
			}
			return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrShortWrite, n, len(chunk), err)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	return nil
}

// ReadFrame reads the next frame from r into dst, which must be exactly one
// frame payload long. Blank lines before the marker are skipped and any
// parameters after the FRAME token are ignored. At a clean end of data
// ReadFrame returns io.EOF.
func ReadFrame(r *bufio.Reader, dst []byte) error {
	c := &cursor{src: r, size: -1, br: r}
	return c.readFrame(dst)
}

func (c *cursor) readFrame(dst []byte) error {
	found, err := c.nextMarker(ErrExpectedFrameMarker)
	if err != nil {
		return err
	}
	if !found {
		return io.EOF
	}
	n, err := c.readFull(dst)
	if err != nil {
		return err
	}
	if n < len(dst) {
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedFrame, n, len(dst))
	}
	return nil
}
