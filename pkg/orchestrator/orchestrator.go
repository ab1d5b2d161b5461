// Package orchestrator coordinates writing a clip and checking the result.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
	"github.com/user/y4mkit/pkg/summarizer"
	"github.com/user/y4mkit/pkg/y4m"
)

// Config contains all configuration for one run.
type Config struct {
	// Input
	Source pipeline.FrameSource

	// Output
	OutputPath  string
	SummaryPath string // Markdown report; empty disables it
	Compressed  bool   // Reported in the summary

	// Encoding
	FPS   int
	Order y4m.ChannelOrder

	// Verify re-probes the written file and checks the frame count.
	Verify bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FPS:    60,
		Order:  y4m.OrderRGB,
		Verify: true,
	}
}

// Orchestrator runs the encode stage, then optionally probes and
// summarizes its output.
type Orchestrator struct {
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs          ports.FileSystem
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		encodeStage: encodeStage,
		fs:          fs,
		logger:      logger,
	}
}

// RunResult contains the results of a run for reporting.
type RunResult struct {
	Encoded    pipeline.EncodeResult
	Descriptor y4m.StreamDescriptor // Zero unless verified
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{}

	existed, err := o.fs.Exists(config.OutputPath)
	if err != nil {
		return result, fmt.Errorf("check output: %w", err)
	}

	encoded, err := o.encodeStage.Execute(ctx, o.buildEncodeInput(config))
	if err != nil {
		o.logger.Error("Failed to encode stream: %v", err)
		// A cancelled run keeps its closed, valid prefix.
		if !existed && ctx.Err() == nil {
			o.removeIncomplete(config.OutputPath)
		}
		return result, fmt.Errorf("encode stage: %w", err)
	}
	result.Encoded = encoded

	if !config.Verify && config.SummaryPath == "" {
		return result, nil
	}

	d, err := y4m.NewProber(o.logger).ProbeFile(o.fs, config.OutputPath)
	if err != nil {
		o.logger.Error("Failed to verify stream: %v", err)
		return result, fmt.Errorf("verify output: %w", err)
	}
	if d.FrameCount != encoded.Frames {
		return result, fmt.Errorf("verify output: wrote %d frames, probed %d", encoded.Frames, d.FrameCount)
	}
	result.Descriptor = d

	if config.SummaryPath != "" {
		summary := summarizer.NewBuilder().
			WithSource(config.OutputPath, config.Compressed).
			WithStream(d).
			Build()
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), o.fs)
		if err := w.Write(config.SummaryPath, summary); err != nil {
			o.logger.Error("Failed to write summary: %v", err)
			return result, fmt.Errorf("write summary: %w", err)
		}
		o.logger.Info("Summary saved to %s", config.SummaryPath)
	}

	return result, nil
}

// removeIncomplete deletes an output the failed run created.
func (o *Orchestrator) removeIncomplete(path string) {
	created, err := o.fs.Exists(path)
	if err != nil || !created {
		return
	}
	if err := o.fs.Remove(path); err != nil {
		o.logger.Warn("Failed to remove incomplete output %s: %v", path, err)
		return
	}
	o.logger.Warn("Removed incomplete output %s", path)
}

func (o *Orchestrator) buildEncodeInput(config Config) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Source:     config.Source,
		OutputPath: config.OutputPath,
		FPS:        config.FPS,
		Order:      config.Order,
	}
}
