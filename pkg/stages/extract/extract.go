// Package extract implements the frame extraction stage.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
	"github.com/user/y4mkit/pkg/y4m"
)

// Stage reads frames from a Y4M file and hands them to a sink.
type Stage struct {
	fs     ports.FileSystem
	sink   ports.FrameSink
	logger ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(fs ports.FileSystem, sink ports.FrameSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		sink:   sink,
		logger: logger.WithComponent("extract"),
	}
}

// Execute extracts the requested frames. The buffered path probes the
// file, reads the whole payload into one buffer and slices frames out of
// it. The streaming path holds a single frame at a time.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	if input.Streaming {
		return s.executeStreaming(ctx, input)
	}
	return s.executeBuffered(ctx, input)
}

func (s *Stage) executeBuffered(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	d, err := y4m.NewProber(s.logger).ProbeFile(s.fs, input.InputPath)
	if err != nil {
		return result, fmt.Errorf("probe %s: %w", input.InputPath, err)
	}
	result.Descriptor = d

	indices := input.Indices
	if len(indices) == 0 {
		indices = allIndices(d.FrameCount)
	}
	for _, i := range indices {
		if i < 0 || i >= d.FrameCount {
			return result, fmt.Errorf("%w: frame %d not in [0, %d)", y4m.ErrIndexOutOfRange, i, d.FrameCount)
		}
	}

	s.logger.Debug("Reading %d frames into %d bytes", d.FrameCount, d.TotalBytes)
	buf := make([]byte, d.TotalBytes)
	if err := y4m.ReadFileInto(s.fs, input.InputPath, d, buf); err != nil {
		return result, fmt.Errorf("read %s: %w", input.InputPath, err)
	}
	result.Frames = d.FrameCount

	if !s.sink.Enabled() {
		return result, nil
	}
	for _, i := range indices {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		planes, err := y4m.PlanesForFrame(d, buf, i)
		if err != nil {
			return result, err
		}
		if err := s.sink.SaveFrame(i, planes.Image(d.Header.Width, d.Header.Height)); err != nil {
			return result, fmt.Errorf("save frame %d: %w", i, err)
		}
		result.Saved++
	}
	return result, nil
}

func (s *Stage) executeStreaming(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	f, err := s.fs.Open(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("open %s: %w", input.InputPath, err)
	}
	defer f.Close()

	s.logger.Debug("Streaming frames from %s", input.InputPath)
	fr, err := y4m.NewFrameReader(f, s.logger)
	if err != nil {
		return result, fmt.Errorf("read header: %w", err)
	}
	header := fr.Header()

	selected := len(input.Indices) > 0
	wanted := make(map[int]bool, len(input.Indices))
	for _, i := range input.Indices {
		wanted[i] = true
	}

	buf := make([]byte, header.FrameSize())
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		index := fr.Index()
		planes, err := fr.Next(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, err
		}
		result.Frames++

		if selected {
			if !wanted[index] {
				continue
			}
			delete(wanted, index)
		}
		if !s.sink.Enabled() {
			continue
		}
		if err := s.sink.SaveFrame(index, planes.Image(header.Width, header.Height)); err != nil {
			return result, fmt.Errorf("save frame %d: %w", index, err)
		}
		result.Saved++
	}

	for i := range wanted {
		return result, fmt.Errorf("%w: frame %d not in [0, %d)", y4m.ErrIndexOutOfRange, i, result.Frames)
	}
	return result, nil
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
