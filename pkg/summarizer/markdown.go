package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder
	h := s.Stream.Header

	b.WriteString("# Stream Summary\n\n")
	if s.Source.Path != "" {
		fmt.Fprintf(&b, "**File:** `%s`", s.Source.Path)
		if s.Source.Compressed {
			b.WriteString(" (zstd)")
		}
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Header\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(&b, "| Size | %dx%d |\n", h.Width, h.Height)
	fmt.Fprintf(&b, "| Frame rate | %s fps |\n", h.FrameRate)
	fmt.Fprintf(&b, "| Interlace | %s |\n", interlaceName(h.Interlace))
	fmt.Fprintf(&b, "| Pixel aspect | %s |\n", h.PixelAspect)
	fmt.Fprintf(&b, "| Chroma | %s |\n", h.Chroma)
	b.WriteString("\n")

	b.WriteString("## Payload\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Frames | %d |\n", s.Stream.FrameCount)
	fmt.Fprintf(&b, "| Duration | %s |\n", formatDuration(s.Duration()))
	fmt.Fprintf(&b, "| Plane size | %s |\n", formatBytes(int64(s.Stream.PlaneSize)))
	fmt.Fprintf(&b, "| Frame size | %s |\n", formatBytes(int64(s.Stream.FrameSize)))
	fmt.Fprintf(&b, "| Payload | %s |\n", formatBytes(s.Stream.TotalBytes))
	fmt.Fprintf(&b, "| Payload offset | %d |\n", s.Stream.PayloadOffset)

	return b.String()
}

func interlaceName(c byte) string {
	switch c {
	case 'p', 'P':
		return "progressive"
	case 0:
		return "-"
	default:
		return string(c)
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2f s", d.Seconds())
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit*unit:
		return fmt.Sprintf("%.2f GB", float64(n)/(unit*unit*unit))
	case n >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
