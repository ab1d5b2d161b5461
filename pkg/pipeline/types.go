package pipeline

import (
	"image"

	"github.com/user/y4mkit/pkg/y4m"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// FrameSource yields the frames of a clip by index. Frames may be produced
// lazily; callers must not assume Frame is cheap.
type FrameSource interface {
	// Len returns the number of frames.
	Len() int

	// Frame returns frame i, for 0 <= i < Len().
	Frame(i int) (image.Image, error)
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for writing a Y4M stream.
type EncodeInput struct {
	Source     FrameSource
	OutputPath string
	FPS        int
	Order      y4m.ChannelOrder // Packed sample order fed to the writer
}

// DefaultEncodeInput returns EncodeInput with default values.
func DefaultEncodeInput() EncodeInput {
	return EncodeInput{
		FPS:   60,
		Order: y4m.OrderRGB,
	}
}

// EncodeResult describes the written stream.
type EncodeResult struct {
	Header y4m.StreamHeader
	Frames int
	Bytes  int64 // Header plus frame markers and payload
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for reading frames out of a stream.
type ExtractInput struct {
	InputPath string
	Indices   []int // Frames to hand to the sink; empty means all
	Streaming bool  // Read one frame at a time instead of buffering the stream
}

// ExtractResult contains the extraction output.
type ExtractResult struct {
	Descriptor y4m.StreamDescriptor // Zero FrameCount when streaming
	Frames     int                  // Frames read from the stream
	Saved      int                  // Frames handed to the sink
}
