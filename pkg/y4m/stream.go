package y4m

import (
	"errors"
	"fmt"
	"io"

	"github.com/user/y4mkit/pkg/adapters/logger"
	"github.com/user/y4mkit/pkg/ports"
)

// FrameReader reads a stream one frame at a time with memory bounded by
// a single frame. It only moves forward.
type FrameReader struct {
	c      *cursor
	header StreamHeader
	index  int
	err    error
	log    ports.Logger
}

// NewFrameReader reads and validates the stream header from r.
func NewFrameReader(r io.Reader, log ports.Logger) (*FrameReader, error) {
	if log == nil {
		log = logger.NewNoop()
	}
	c, err := newCursor(r)
	if err != nil {
		return nil, err
	}
	header, err := readHeader(c)
	if err != nil {
		return nil, err
	}
	return &FrameReader{
		c:      c,
		header: header,
		log:    log.WithComponent("y4m.reader"),
	}, nil
}

// Header returns the stream header.
func (fr *FrameReader) Header() StreamHeader {
	return fr.header
}

// Index returns the number of frames read so far.
func (fr *FrameReader) Index() int {
	return fr.index
}

// Next reads the next frame into dst and returns views of its planes.
// dst must hold at least one frame. Next returns io.EOF once the stream
// ends cleanly. Once Next has returned an error it keeps returning it.
func (fr *FrameReader) Next(dst []byte) (FramePlanes, error) {
	if fr.err != nil {
		return FramePlanes{}, fr.err
	}
	size := fr.header.FrameSize()
	if len(dst) < size {
		return FramePlanes{}, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), size)
	}

	frame := dst[:size]
	if err := fr.c.readFrame(frame); err != nil {
		if errors.Is(err, io.EOF) {
			fr.log.Debug("Stream ended after %d frames", fr.index)
			fr.err = io.EOF
		} else {
			fr.err = fmt.Errorf("frame %d: %w", fr.index, err)
		}
		return FramePlanes{}, fr.err
	}
	fr.log.Trace("Read frame %d", fr.index)
	fr.index++
	return framePlanes(frame, fr.header.PlaneSize()), nil
}
