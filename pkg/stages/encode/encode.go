// Package encode implements the Y4M encoding stage.
package encode

import (
	"context"
	"fmt"
	"image"

	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
	"github.com/user/y4mkit/pkg/y4m"
)

// Stage drains a frame source into a Y4M file.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("encode"),
	}
}

// Execute writes every frame of the source. The stream size is taken from
// the first frame and every later frame must match it. When ctx is
// cancelled between frames the frames written so far are kept and the
// stream is closed cleanly.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.Source == nil || input.Source.Len() == 0 {
		return result, fmt.Errorf("no frames to encode")
	}

	// Get dimensions from first frame
	first, err := input.Source.Frame(0)
	if err != nil {
		return result, fmt.Errorf("load frame 0: %w", err)
	}
	bounds := first.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	opts := y4m.Options{Width: width, Height: height, FPS: input.FPS}
	w, err := y4m.Create(s.fs, input.OutputPath, opts, y4m.NewPlanes(width, height), s.logger)
	if err != nil {
		return result, fmt.Errorf("create stream: %w", err)
	}

	pixels := make([]uint32, width*height)
	frames, err := s.writeFrames(ctx, w, input, first, pixels)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close stream: %w", cerr)
	}
	if err != nil {
		return result, err
	}

	header := w.Header()
	result.Header = header
	result.Frames = frames
	result.Bytes = int64(len(header.String())) + int64(frames)*int64(len("FRAME\n")+header.FrameSize())

	s.logger.Info("Wrote %d frames to %s", frames, input.OutputPath)
	return result, nil
}

func (s *Stage) writeFrames(ctx context.Context, w *y4m.Writer, input pipeline.EncodeInput, first image.Image, pixels []uint32) (int, error) {
	size := first.Bounds().Size()
	for i := 0; i < input.Source.Len(); i++ {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}

		img := first
		if i > 0 {
			var err error
			if img, err = input.Source.Frame(i); err != nil {
				return i, fmt.Errorf("load frame %d: %w", i, err)
			}
		}
		if img.Bounds().Size() != size {
			return i, fmt.Errorf("frame %d is %v, stream is %v", i, img.Bounds().Size(), size)
		}

		if err := y4m.PackImage(img, input.Order, pixels); err != nil {
			return i, fmt.Errorf("pack frame %d: %w", i, err)
		}
		if err := w.WriteFrame(pixels, input.Order); err != nil {
			return i, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return input.Source.Len(), nil
}
