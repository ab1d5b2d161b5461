package y4m

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/user/y4mkit/pkg/ports"
)

// FramePlanes are non-copying views of one frame's planes inside a
// larger buffer. They share memory with that buffer and are only valid
// while it is.
type FramePlanes struct {
	Y, U, V []byte
}

// Image returns the planes as a 4:4:4 image without copying.
func (p FramePlanes) Image(width, height int) *image.YCbCr {
	return &image.YCbCr{
		Y:              p.Y,
		Cb:             p.U,
		Cr:             p.V,
		YStride:        width,
		CStride:        width,
		SubsampleRatio: image.YCbCrSubsampleRatio444,
		Rect:           image.Rect(0, 0, width, height),
	}
}

// framePlanes slices one frame payload into capacity-limited plane views
// so that appending to one plane can never overwrite the next.
func framePlanes(frame []byte, planeSize int) FramePlanes {
	n := planeSize
	return FramePlanes{
		Y: frame[0:n:n],
		U: frame[n : 2*n : 2*n],
		V: frame[2*n : 3*n : 3*n],
	}
}

// ReadInto reads every frame described by d from r into dst, back to back.
// r must be positioned at the start of the stream d was probed from.
// Nothing is read when dst is smaller than d.TotalBytes. On any other
// failure dst may be partially filled and must not be used.
func ReadInto(r io.Reader, d StreamDescriptor, dst []byte) error {
	if err := d.validate(); err != nil {
		return err
	}
	if int64(len(dst)) < d.TotalBytes {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), d.TotalBytes)
	}

	c, err := newCursor(r)
	if err != nil {
		return err
	}
	if err := c.seekTo(d.PayloadOffset); err != nil {
		return err
	}

	for i := 0; i < d.FrameCount; i++ {
		frame := dst[i*d.FrameSize : (i+1)*d.FrameSize]
		err := c.readFrame(frame)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: stream ends after %d of %d frames", ErrPrematureEOF, i, d.FrameCount)
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// ReadFileInto opens path on fs and reads its frames into dst.
func ReadFileInto(fs ports.FileSystem, path string, d StreamDescriptor, dst []byte) error {
	if err := d.validate(); err != nil {
		return err
	}
	if int64(len(dst)) < d.TotalBytes {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), d.TotalBytes)
	}
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()
	return ReadInto(f, d, dst)
}

// PlanesForFrame returns views of the Y, U and V planes of frame index
// inside buf, which must have been filled by ReadInto for d.
func PlanesForFrame(d StreamDescriptor, buf []byte, index int) (FramePlanes, error) {
	if err := d.validate(); err != nil {
		return FramePlanes{}, err
	}
	if index < 0 || index >= d.FrameCount {
		return FramePlanes{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, d.FrameCount)
	}
	if int64(len(buf)) < d.TotalBytes {
		return FramePlanes{}, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), d.TotalBytes)
	}
	off := index * d.FrameSize
	return framePlanes(buf[off:off+d.FrameSize], d.PlaneSize), nil
}
