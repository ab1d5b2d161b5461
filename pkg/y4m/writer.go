package y4m

import (
	"fmt"
	"io"

	"github.com/user/y4mkit/pkg/adapters/logger"
	"github.com/user/y4mkit/pkg/ports"
)

// State is the lifecycle state of a Writer.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Options describes the stream a Writer produces.
type Options struct {
	Width  int
	Height int
	FPS    int
}

// Validate checks that the options describe a writable stream.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if !frameSizeFits(o.Width, o.Height) {
		return fmt.Errorf("%w: dimensions %dx%d overflow the frame size", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidOptions, o.FPS)
	}
	return nil
}

// Planes are the caller-owned Y, U and V buffers a Writer converts each
// frame into before writing it.
type Planes struct {
	Y, U, V []byte
}

// NewPlanes allocates planes for a width x height stream.
func NewPlanes(width, height int) Planes {
	n := width * height
	buf := make([]byte, 3*n)
	return Planes{Y: buf[:n:n], U: buf[n : 2*n : 2*n], V: buf[2*n:]}
}

func (p Planes) validate(n int) error {
	if p.Y == nil || p.U == nil || p.V == nil {
		return fmt.Errorf("%w: missing plane buffer", ErrInvalidOptions)
	}
	if len(p.Y) < n || len(p.U) < n || len(p.V) < n {
		return fmt.Errorf("%w: plane buffers must hold %d samples", ErrInvalidOptions, n)
	}
	return nil
}

// Writer encodes packed RGB frames into a YUV4MPEG2 4:4:4 stream.
// A Writer is not safe for concurrent use.
type Writer struct {
	out    io.WriteCloser
	header StreamHeader
	planes Planes
	state  State
	frames int
	log    ports.Logger
}

// NewWriter validates the options, takes ownership of out and writes the
// stream header. On failure the returned error wraps ErrInvalidOptions or
// ErrIO and out is left untouched by the writer.
func NewWriter(out io.WriteCloser, opts Options, planes Planes, log ports.Logger) (*Writer, error) {
	if log == nil {
		log = logger.NewNoop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: no output stream", ErrInvalidOptions)
	}
	n := opts.Width * opts.Height
	if err := planes.validate(n); err != nil {
		return nil, err
	}

	w := &Writer{
		out:    out,
		header: NewHeader(opts.Width, opts.Height, opts.FPS),
		planes: Planes{Y: planes.Y[:n], U: planes.U[:n], V: planes.V[:n]},
		log:    log.WithComponent("y4m.writer"),
	}
	line := w.header.Marshal()
	if written, err := out.Write(line); err != nil || written != len(line) {
		return nil, fmt.Errorf("%w: write header: %d of %d bytes: %v", ErrIO, written, len(line), err)
	}
	w.state = StateOpen
	w.log.Debug("Stream opened: %dx%d at %d fps", opts.Width, opts.Height, opts.FPS)
	return w, nil
}

// Create creates path on fs and opens a Writer on it. The file is
// closed again if the writer cannot be opened.
func Create(fs ports.FileSystem, path string, opts Options, planes Planes, log ports.Logger) (*Writer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := planes.validate(opts.Width * opts.Height); err != nil {
		return nil, err
	}
	out, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	w, err := NewWriter(out, opts, planes, log)
	if err != nil {
		out.Close()
		return nil, err
	}
	return w, nil
}

// Header returns the header the writer emitted.
func (w *Writer) Header() StreamHeader {
	return w.header
}

// State returns the writer's lifecycle state.
func (w *Writer) State() State {
	return w.state
}

// FramesWritten returns the number of frames written successfully.
func (w *Writer) FramesWritten() int {
	return w.frames
}

// WriteFrame converts width*height packed pixels into the plane buffers
// and appends them to the stream as one frame.
//
// ErrShortWrite leaves the writer open, but the stream position is then
// unknown; callers should close or abandon the writer rather than keep
// writing frames.
func (w *Writer) WriteFrame(pixels []uint32, order ChannelOrder) error {
	if w.state != StateOpen {
		return fmt.Errorf("%w: state %s", ErrNotOpen, w.state)
	}
	if len(pixels) == 0 {
		return ErrNullPixelBuffer
	}
	if !order.Valid() {
		return fmt.Errorf("%w: channel order %d", ErrInvalidOptions, int(order))
	}
	n := w.header.PlaneSize()
	if len(pixels) < n {
		return fmt.Errorf("%w: pixel buffer has %d samples, need %d", ErrInvalidOptions, len(pixels), n)
	}

	TransformPlanes(pixels[:n], order, w.planes.Y, w.planes.U, w.planes.V)
	if err := WriteFrame(w.out, w.planes.Y, w.planes.U, w.planes.V); err != nil {
		w.log.Error("Failed to write frame %d: %v", w.frames, err)
		return err
	}
	w.frames++
	w.log.Trace("Wrote frame %d", w.frames-1)
	return nil
}

// Close closes the output stream. Closing a closed writer does nothing
// except emit a warning; the underlying stream is closed exactly once.
func (w *Writer) Close() error {
	switch w.state {
	case StateClosed:
		w.log.Warn("%v", ErrAlreadyClosed)
		return nil
	case StateOpen:
	default:
		return fmt.Errorf("%w: state %s", ErrNotOpen, w.state)
	}

	w.state = StateClosed
	err := w.out.Close()
	w.out = nil
	if err != nil {
		w.log.Error("Failed to close stream: %v", err)
		return fmt.Errorf("%w: close: %w", ErrIO, err)
	}
	w.log.Debug("Stream closed after %d frames", w.frames)
	return nil
}
