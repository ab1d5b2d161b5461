// Package filesink provides a file-based frame sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/y4mkit/pkg/ports"
)

// DefaultPattern names extracted frames by stream index.
const DefaultPattern = "frame-%04d.png"

// Sink saves frames as image files under a base directory.
type Sink struct {
	baseDir  string
	pattern  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file Sink. pattern is a printf pattern taking the frame
// index; its extension selects PNG or JPEG. An empty pattern means DefaultPattern.
func New(baseDir, pattern string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Sink{
		baseDir:  baseDir,
		pattern:  pattern,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveFrame encodes img and writes it to the file for index.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	name := fmt.Sprintf(s.pattern, index)
	format := ports.FormatFromPath(name)
	data, err := s.renderer.EncodeImage(img, format, 90)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
