// Package summarizer provides Markdown reports for probed Y4M streams.
package summarizer

import (
	"time"

	"github.com/user/y4mkit/pkg/y4m"
)

// Summary contains everything known about one probed stream.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Where the stream came from
	Source SourceInfo

	// Probe result
	Stream y4m.StreamDescriptor
}

// SourceInfo describes the probed file.
type SourceInfo struct {
	Path       string
	Compressed bool
}

// Duration returns the playback length of the stream.
func (s *Summary) Duration() time.Duration {
	fps := s.Stream.Header.FrameRate.Num
	if fps <= 0 {
		return 0
	}
	return time.Duration(s.Stream.FrameCount) * time.Second / time.Duration(fps)
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source file information.
func (b *Builder) WithSource(path string, compressed bool) *Builder {
	b.summary.Source = SourceInfo{
		Path:       path,
		Compressed: compressed,
	}
	return b
}

// WithStream sets the probe result.
func (b *Builder) WithStream(d y4m.StreamDescriptor) *Builder {
	b.summary.Stream = d
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
