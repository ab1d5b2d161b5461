package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/y4mkit/pkg/adapters/ggrenderer"
	"github.com/user/y4mkit/pkg/adapters/zstdfs"
	"github.com/user/y4mkit/pkg/config"
	"github.com/user/y4mkit/pkg/orchestrator"
	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/stages/encode"
	"github.com/user/y4mkit/pkg/stages/imageseq"
	"github.com/user/y4mkit/pkg/stages/pattern"
)

// streamFlags are shared by the commands that write a stream.
func streamFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output .y4m or .y4m.zst path (required)")},
		&cli.IntFlag{Name: "fps", Aliases: []string{"r"}, Usage: l10n.T("Frames per second")},
		&cli.StringFlag{Name: "order", Usage: l10n.T("Packed pixel channel order (rgb, bgr)")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a Markdown summary to this path")},
		&cli.BoolFlag{Name: "no-verify", Usage: l10n.T("Skip re-probing the written stream")},
	}
}

// applyFlags copies explicitly set flags over the configuration.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("frames") {
		cfg.Frames = c.Int("frames")
	}
	if c.IsSet("pattern") {
		cfg.Pattern = c.String("pattern")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.IsSet("order") {
		cfg.PixelOrder = c.String("order")
	}
}

func generateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Generate a test-pattern stream"),
		Flags: append(streamFlags(),
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Frame width in pixels")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Frame height in pixels")},
			&cli.IntFlag{Name: "frames", Aliases: []string{"n"}, Usage: l10n.T("Number of frames")},
			&cli.StringFlag{Name: "pattern", Aliases: []string{"p"}, Usage: l10n.T("Pattern (solid, bars, counter)")},
			&cli.StringFlag{Name: "color", Usage: l10n.T("Fill color (#rrggbb)")},
		),
		Action: func(c *cli.Context) error {
			cfg := e.cfg
			applyFlags(c, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			src, err := pattern.New(ggrenderer.New(), pattern.Options{
				Kind:   pattern.Kind(cfg.Pattern),
				Width:  cfg.Width,
				Height: cfg.Height,
				Frames: cfg.Frames,
				Color:  config.ParseColor(cfg.Color),
			}, e.log)
			if err != nil {
				return err
			}

			output := c.String("output")
			e.log.Info("Generating %d frames (%dx%d at %d fps) to %s", cfg.Frames, cfg.Width, cfg.Height, cfg.FPS, output)
			return e.run(c, cfg, src)
		},
	}
}

func encodeCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     l10n.T("Encode still images into a stream"),
		ArgsUsage: "[image ...]",
		Flags: append(streamFlags(),
			&cli.StringFlag{Name: "glob", Aliases: []string{"g"}, Usage: l10n.T("Glob selecting input images, in lexical order")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Frame width in pixels (default: first image's width)")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Frame height in pixels (default: first image's height)")},
		),
		Action: func(c *cli.Context) error {
			cfg := e.cfg
			applyFlags(c, &cfg)
			if _, err := cfg.ChannelOrder(); err != nil {
				return err
			}

			paths := c.Args().Slice()
			if glob := c.String("glob"); glob != "" {
				matches, err := imageseq.Glob(glob)
				if err != nil {
					return err
				}
				paths = append(paths, matches...)
			}
			if len(paths) == 0 {
				return fmt.Errorf("%s", l10n.T("no input images"))
			}

			// Without an explicit size every image keeps its own; the
			// encoder rejects a clip whose frames disagree.
			width, height := 0, 0
			if c.IsSet("width") && c.IsSet("height") {
				width, height = cfg.Width, cfg.Height
			}
			src := imageseq.New(e.fs, ggrenderer.New(), paths, width, height, e.log)

			e.log.Info("Encoding %d images to %s", len(paths), c.String("output"))
			return e.run(c, cfg, src)
		},
	}
}

// run writes src to the output path through the orchestrator.
func (e *env) run(c *cli.Context, cfg config.Config, src pipeline.FrameSource) error {
	order, err := cfg.ChannelOrder()
	if err != nil {
		return err
	}

	output := c.String("output")
	orch := orchestrator.New(encode.NewStage(e.fs, e.log), e.fs, e.log)
	_, err = orch.Run(c.Context, orchestrator.Config{
		Source:      src,
		OutputPath:  output,
		SummaryPath: c.String("summary"),
		Compressed:  zstdfs.Compressed(output),
		FPS:         cfg.FPS,
		Order:       order,
		Verify:      !c.Bool("no-verify"),
	})
	return err
}
