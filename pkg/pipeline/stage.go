// Package pipeline provides the stage types shared by the y4mtool workflows.
package pipeline

import (
	"context"
	"fmt"
	"image"
)

// Stage represents a processing stage in the pipeline.
// Each stage takes an input and produces an output.
type Stage[In, Out any] interface {
	// Execute runs the stage with the given input and returns the output.
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Images adapts an in-memory slice to FrameSource.
type Images []image.Image

// Len implements FrameSource.
func (s Images) Len() int { return len(s) }

// Frame implements FrameSource.
func (s Images) Frame(i int) (image.Image, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, len(s))
	}
	return s[i], nil
}
