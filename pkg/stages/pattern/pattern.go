// Package pattern renders synthetic test-pattern clips.
package pattern

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
)

// Kind selects what each frame shows.
type Kind string

const (
	// KindSolid fills every frame with one colour.
	KindSolid Kind = "solid"
	// KindBars draws 75% colour bars that scroll by one bar per frame.
	KindBars Kind = "bars"
	// KindCounter draws the frame number and a progress bar over the colour.
	KindCounter Kind = "counter"
)

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindSolid, KindBars, KindCounter:
		return k, nil
	default:
		return "", fmt.Errorf("unknown pattern %q", s)
	}
}

// bars are the seven 75% intensity colour bars.
var bars = []color.RGBA{
	{191, 191, 191, 255},
	{191, 191, 0, 255},
	{0, 191, 191, 255},
	{0, 191, 0, 255},
	{191, 0, 191, 255},
	{191, 0, 0, 255},
	{0, 0, 191, 255},
}

// Options configures a pattern clip.
type Options struct {
	Kind   Kind
	Width  int
	Height int
	Frames int
	Color  color.Color
}

// Source renders frames on demand. It implements pipeline.FrameSource.
type Source struct {
	renderer ports.Renderer
	opts     Options
	logger   ports.Logger
}

// New creates a pattern source.
func New(renderer ports.Renderer, opts Options, logger ports.Logger) (*Source, error) {
	if _, err := ParseKind(string(opts.Kind)); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid pattern size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 0 {
		return nil, fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.Color == nil {
		opts.Color = color.Black
	}
	return &Source{
		renderer: renderer,
		opts:     opts,
		logger:   logger.WithComponent("pattern"),
	}, nil
}

// Len implements pipeline.FrameSource.
func (s *Source) Len() int {
	return s.opts.Frames
}

// Frame implements pipeline.FrameSource.
func (s *Source) Frame(i int) (image.Image, error) {
	if i < 0 || i >= s.opts.Frames {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, s.opts.Frames)
	}

	w, h := s.opts.Width, s.opts.Height
	canvas := s.renderer.CreateCanvas(w, h, s.opts.Color)

	switch s.opts.Kind {
	case KindBars:
		for k := range bars {
			x0 := k * w / len(bars)
			x1 := (k + 1) * w / len(bars)
			canvas.DrawRect(x0, 0, x1-x0, h, bars[(k+i)%len(bars)])
		}
	case KindCounter:
		canvas.DrawRect(0, 0, w, h, s.opts.Color)
		barHeight := max(h/20, 1)
		canvas.DrawRect(0, h-barHeight, w*(i+1)/s.opts.Frames, barHeight, color.White)
		canvas.DrawText(fmt.Sprintf("%d", i), w/2, h/2, ports.TextStyle{
			FontSize: float64(h) / 4,
			Color:    color.White,
			Align:    ports.AlignCenter,
		})
	default:
		canvas.DrawRect(0, 0, w, h, s.opts.Color)
	}

	s.logger.Trace("Rendered %s frame %d", s.opts.Kind, i)
	return canvas.ToImage(), nil
}

var _ pipeline.FrameSource = (*Source)(nil)
