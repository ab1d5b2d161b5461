// Package imageseq reads a numbered sequence of still images as a clip.
package imageseq

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
)

// Source decodes image files in order and scales them to a fixed size.
// It implements pipeline.FrameSource.
type Source struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	paths    []string
	width    int
	height   int
	logger   ports.Logger
}

// New creates a source over paths. A zero width or height keeps each
// image at its decoded size.
func New(fs ports.FileSystem, renderer ports.Renderer, paths []string, width, height int, logger ports.Logger) *Source {
	return &Source{
		fs:       fs,
		renderer: renderer,
		paths:    paths,
		width:    width,
		height:   height,
		logger:   logger.WithComponent("imageseq"),
	}
}

// Glob expands pattern and returns the matches in lexical order, which is
// frame order for zero-padded names.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Len implements pipeline.FrameSource.
func (s *Source) Len() int {
	return len(s.paths)
}

// Frame implements pipeline.FrameSource.
func (s *Source) Frame(i int) (image.Image, error) {
	if i < 0 || i >= len(s.paths) {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, len(s.paths))
	}
	path := s.paths[i]

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := s.renderer.DecodeImage(data, ports.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	if s.width > 0 && s.height > 0 && (b.Dx() != s.width || b.Dy() != s.height) {
		s.logger.Debug("Resizing frame %d from %dx%d to %dx%d", i, b.Dx(), b.Dy(), s.width, s.height)
		img = s.renderer.ResizeImage(img, s.width, s.height)
	}
	return img, nil
}

var _ pipeline.FrameSource = (*Source)(nil)
