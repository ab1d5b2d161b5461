package y4m

import "errors"

var (
	// ErrInvalidOptions is returned when writer options, plane buffers or
	// pixel buffers do not describe a usable session.
	ErrInvalidOptions = errors.New("y4m: invalid options")

	// ErrMalformedHeader is returned when the stream header cannot be parsed.
	ErrMalformedHeader = errors.New("y4m: malformed header")

	// ErrUnsupportedProfile is returned for valid Y4M headers outside the
	// supported subset (progressive, 4:4:4, 1:1 aspect, integer frame rate).
	ErrUnsupportedProfile = errors.New("y4m: unsupported profile")

	// ErrIO is returned when opening, closing or flushing a stream fails.
	ErrIO = errors.New("y4m: i/o failure")

	// ErrShortWrite is returned when fewer bytes were written than expected.
	ErrShortWrite = errors.New("y4m: short write")

	// ErrPrematureEOF is returned when data ends before an expected frame.
	ErrPrematureEOF = errors.New("y4m: premature end of stream")

	// ErrTruncatedFrame is returned when a frame payload is incomplete.
	ErrTruncatedFrame = errors.New("y4m: truncated frame")

	// ErrExpectedFrameMarker is returned when a frame read finds a line
	// that is not a FRAME marker.
	ErrExpectedFrameMarker = errors.New("y4m: expected FRAME marker")

	// ErrUnexpectedContent is returned when probing finds a line that is
	// neither blank nor a FRAME marker.
	ErrUnexpectedContent = errors.New("y4m: unexpected content")

	// ErrTruncatedStream is returned when probing would skip past the end of data.
	ErrTruncatedStream = errors.New("y4m: truncated stream")

	// ErrBufferTooSmall is returned when a destination buffer cannot hold the payload.
	ErrBufferTooSmall = errors.New("y4m: buffer too small")

	// ErrIndexOutOfRange is returned for frame indices outside [0, FrameCount).
	ErrIndexOutOfRange = errors.New("y4m: frame index out of range")

	// ErrNotOpen is returned when a writer is used outside the open state.
	ErrNotOpen = errors.New("y4m: writer not open")

	// ErrNullPixelBuffer is returned when a frame write has no pixel data.
	ErrNullPixelBuffer = errors.New("y4m: no pixel data")

	// ErrAlreadyClosed identifies the warning emitted when a closed writer
	// is closed again. Close itself does not return it.
	ErrAlreadyClosed = errors.New("y4m: writer already closed")
)
