package ports

import (
	"image"
)

// FrameSink receives frames decoded from a stream.
type FrameSink interface {
	// Enabled returns true if the sink keeps what it receives.
	Enabled() bool

	// SaveFrame stores the frame with the given stream index.
	SaveFrame(index int, img image.Image) error
}
