package y4m

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// frameMarker is the token that opens every frame.
const frameMarker = "FRAME"

// cursor is a forward-only reader over a stream that tracks the byte
// offset of the next unread byte. When the source is seekable its size is
// measured up front so that skips can be checked without reading.
type cursor struct {
	src    io.Reader
	seeker io.Seeker
	base   int64
	size   int64
	br     *bufio.Reader
	pos    int64
}

func newCursor(src io.Reader) (*cursor, error) {
	c := &cursor{src: src, size: -1}
	if s, ok := src.(io.Seeker); ok {
		base, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		end, err := s.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		if _, err := s.Seek(base, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		c.seeker, c.base, c.size = s, base, end-base
	}
	c.br = bufio.NewReader(src)
	return c, nil
}

// readLine returns the next line including its newline. The final line of
// the stream may lack a newline. At end of data it returns io.EOF. The
// returned slice is only valid until the next call.
func (c *cursor) readLine() ([]byte, error) {
	line, err := c.br.ReadSlice('\n')
	c.pos += int64(len(line))
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return nil, io.EOF
		}
		return line, nil
	case errors.Is(err, bufio.ErrBufferFull):
		return line, fmt.Errorf("%w: line longer than %d bytes", ErrUnexpectedContent, len(line))
	default:
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
}

// nextMarker advances past blank lines to the next FRAME marker. It
// returns false at a clean end of data; a line that is not a marker is
// reported with notMarker.
func (c *cursor) nextMarker(notMarker error) (bool, error) {
	for {
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			if errors.Is(err, ErrUnexpectedContent) {
				return false, fmt.Errorf("%w at offset %d", notMarker, c.pos-int64(len(line)))
			}
			return false, err
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if bytes.HasPrefix(line, []byte(frameMarker)) {
			return true, nil
		}
		return false, fmt.Errorf("%w at offset %d: %q", notMarker, c.pos-int64(len(line)), abbreviate(line))
	}
}

// readFull fills dst and reports how many bytes were read.
func (c *cursor) readFull(dst []byte) (int, error) {
	n, err := io.ReadFull(c.br, dst)
	c.pos += int64(n)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return n, nil
}

// skip advances n bytes and reports how many could be skipped. Seekable
// sources are checked against their size and skipped without reading.
func (c *cursor) skip(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative skip %d", ErrIO, n)
	}
	if c.seeker == nil {
		d, err := c.br.Discard(int(n))
		c.pos += int64(d)
		if err != nil && !errors.Is(err, io.EOF) {
			return int64(d), fmt.Errorf("%w: %w", ErrIO, err)
		}
		return int64(d), nil
	}

	if remaining := c.size - c.pos; n > remaining {
		n = remaining
	}
	if buffered := int64(c.br.Buffered()); n <= buffered {
		d, err := c.br.Discard(int(n))
		c.pos += int64(d)
		if err != nil {
			return int64(d), fmt.Errorf("%w: %w", ErrIO, err)
		}
		return int64(d), nil
	}
	if _, err := c.seeker.Seek(c.base+c.pos+n, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	c.br.Reset(c.src)
	c.pos += n
	return n, nil
}

// seekTo moves forward to the absolute stream offset off.
func (c *cursor) seekTo(off int64) error {
	if off < c.pos {
		return fmt.Errorf("%w: cannot move back to offset %d from %d", ErrIO, off, c.pos)
	}
	want := off - c.pos
	skipped, err := c.skip(want)
	if err != nil {
		return err
	}
	if skipped < want {
		return fmt.Errorf("%w: stream ends before offset %d", ErrPrematureEOF, off)
	}
	return nil
}

func abbreviate(line []byte) []byte {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) > 32 {
		return line[:32]
	}
	return line
}
