package y4m

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/user/y4mkit/pkg/adapters/logger"
	"github.com/user/y4mkit/pkg/ports"
)

// StreamDescriptor describes a probed stream. It is a value and is never
// modified after Probe returns it.
type StreamDescriptor struct {
	Header        StreamHeader `yaml:"header"`
	FrameCount    int          `yaml:"frame_count"`
	PlaneSize     int          `yaml:"plane_size"`
	FrameSize     int          `yaml:"frame_size"`
	TotalBytes    int64        `yaml:"total_bytes"`
	PayloadOffset int64        `yaml:"payload_offset"`
}

// validate checks that the descriptor sizes follow from a supported header.
func (d StreamDescriptor) validate() error {
	if err := d.Header.Validate(); err != nil {
		return err
	}
	switch {
	case d.PlaneSize != d.Header.PlaneSize() || d.FrameSize != d.Header.FrameSize():
		return fmt.Errorf("%w: descriptor sizes do not match %dx%d", ErrUnsupportedProfile, d.Header.Width, d.Header.Height)
	case d.FrameCount < 0 || int64(d.FrameCount) > math.MaxInt64/int64(d.FrameSize):
		return fmt.Errorf("%w: frame count %d", ErrUnsupportedProfile, d.FrameCount)
	case d.TotalBytes != int64(d.FrameCount)*int64(d.FrameSize):
		return fmt.Errorf("%w: total bytes %d for %d frames", ErrUnsupportedProfile, d.TotalBytes, d.FrameCount)
	}
	return nil
}

// Prober validates a stream and counts its frames in one forward pass.
type Prober struct {
	log ports.Logger
}

// NewProber creates a new Prober.
func NewProber(log ports.Logger) *Prober {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Prober{log: log.WithComponent("y4m.probe")}
}

// ProbeFile opens path on fs and probes it.
func (p *Prober) ProbeFile(fs ports.FileSystem, path string) (StreamDescriptor, error) {
	f, err := fs.Open(path)
	if err != nil {
		return StreamDescriptor{}, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()
	return p.Probe(f)
}

// Probe reads the header, then walks every frame marker, skipping the
// payloads, until the data ends at a marker boundary. The format carries
// no length field, so the whole stream is always scanned.
func (p *Prober) Probe(r io.Reader) (StreamDescriptor, error) {
	c, err := newCursor(r)
	if err != nil {
		return StreamDescriptor{}, err
	}

	header, err := readHeader(c)
	if err != nil {
		return StreamDescriptor{}, err
	}
	p.log.Debug("Header: %dx%d at %s fps", header.Width, header.Height, header.FrameRate)

	d := StreamDescriptor{
		Header:        header,
		PlaneSize:     header.PlaneSize(),
		FrameSize:     header.FrameSize(),
		PayloadOffset: c.pos,
	}

	frameSize := int64(d.FrameSize)
	for {
		found, err := c.nextMarker(ErrUnexpectedContent)
		if err != nil {
			return StreamDescriptor{}, fmt.Errorf("frame %d: %w", d.FrameCount, err)
		}
		if !found {
			break
		}
		skipped, err := c.skip(frameSize)
		if err != nil {
			return StreamDescriptor{}, err
		}
		if skipped < frameSize {
			return StreamDescriptor{}, fmt.Errorf("%w: frame %d has %d of %d bytes",
				ErrTruncatedStream, d.FrameCount, skipped, frameSize)
		}
		p.log.Trace("Frame %d ends at offset %d", d.FrameCount, c.pos)
		d.FrameCount++
	}

	d.TotalBytes = int64(d.FrameCount) * frameSize
	p.log.Debug("Probed %d frames, %d payload bytes", d.FrameCount, d.TotalBytes)
	return d, nil
}

// readHeader reads and validates the header line at the cursor.
func readHeader(c *cursor) (StreamHeader, error) {
	line, err := c.readLine()
	if errors.Is(err, io.EOF) {
		return StreamHeader{}, fmt.Errorf("%w: empty stream", ErrMalformedHeader)
	}
	if errors.Is(err, ErrUnexpectedContent) {
		return StreamHeader{}, fmt.Errorf("%w: header line too long", ErrMalformedHeader)
	}
	if err != nil {
		return StreamHeader{}, err
	}
	if line[len(line)-1] != '\n' {
		return StreamHeader{}, fmt.Errorf("%w: header line is not terminated", ErrMalformedHeader)
	}
	return ParseHeader(string(line))
}
