package summarizer

import (
	"fmt"
	"strings"
)

// NewTextFormatter returns a Formatter that prints one aligned key per line.
func NewTextFormatter() Formatter {
	return FormatFunc(formatText)
}

func formatText(s *Summary) string {
	var b strings.Builder
	d := s.Stream
	fmt.Fprintf(&b, "file:           %s\n", s.Source.Path)
	fmt.Fprintf(&b, "size:           %dx%d\n", d.Header.Width, d.Header.Height)
	fmt.Fprintf(&b, "fps:            %d\n", d.Header.FrameRate.Num)
	fmt.Fprintf(&b, "frames:         %d\n", d.FrameCount)
	fmt.Fprintf(&b, "duration:       %s\n", s.Duration())
	fmt.Fprintf(&b, "frame_size:     %d\n", d.FrameSize)
	fmt.Fprintf(&b, "payload_bytes:  %d\n", d.TotalBytes)
	fmt.Fprintf(&b, "payload_offset: %d\n", d.PayloadOffset)
	if s.Source.Compressed {
		b.WriteString("compressed:     zstd\n")
	}
	return b.String()
}
