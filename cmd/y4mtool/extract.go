package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/y4mkit/pkg/adapters/filesink"
	"github.com/user/y4mkit/pkg/adapters/ggrenderer"
	"github.com/user/y4mkit/pkg/adapters/nullsink"
	"github.com/user/y4mkit/pkg/pipeline"
	"github.com/user/y4mkit/pkg/ports"
	"github.com/user/y4mkit/pkg/stages/extract"
	"github.com/user/y4mkit/pkg/y4m"
)

func extractCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     l10n.T("Extract frames as images"),
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Value: "frames", Usage: l10n.T("Directory for extracted frames")},
			&cli.StringFlag{Name: "name", Value: filesink.DefaultPattern, Usage: l10n.T("File name pattern, extension selects PNG or JPEG")},
			&cli.IntSliceFlag{Name: "frames", Aliases: []string{"i"}, Usage: l10n.T("Frame indices to extract (default: all)")},
			&cli.BoolFlag{Name: "streaming", Aliases: []string{"s"}, Usage: l10n.T("Read one frame at a time instead of buffering")},
			&cli.BoolFlag{Name: "dry-run", Usage: l10n.T("Decode without writing any files")},
		},
		Action: func(c *cli.Context) error {
			path, err := inputPath(c)
			if err != nil {
				return err
			}

			outDir := c.String("output-dir")
			var sink ports.FrameSink
			if c.Bool("dry-run") {
				sink = nullsink.New()
			} else {
				sink = filesink.New(outDir, c.String("name"), e.fs, ggrenderer.New())
			}

			result, err := extract.NewStage(e.fs, sink, e.log).Execute(c.Context, pipeline.ExtractInput{
				InputPath: path,
				Indices:   c.IntSlice("frames"),
				Streaming: c.Bool("streaming"),
			})
			if err != nil {
				return err
			}

			e.log.Info("Extracted %d frames to %s", result.Saved, outDir)
			return nil
		},
	}
}

func streamCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stream",
		Usage:     l10n.T("Print the first sample of every frame"),
		ArgsUsage: "<input>",
		Action: func(c *cli.Context) error {
			path, err := inputPath(c)
			if err != nil {
				return err
			}

			f, err := e.fs.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			fr, err := y4m.NewFrameReader(f, e.log)
			if err != nil {
				return err
			}

			buf := make([]byte, fr.Header().FrameSize())
			for {
				select {
				case <-c.Context.Done():
					return c.Context.Err()
				default:
				}

				index := fr.Index()
				planes, err := fr.Next(buf)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				y, u, v := planes.Y[0], planes.U[0], planes.V[0]
				r, g, b := y4m.YUVToRGB(y, u, v)
				fmt.Fprintf(c.App.Writer, "%d Y=%d U=%d V=%d RGB=#%02x%02x%02x\n", index, y, u, v, r, g, b)
			}
		},
	}
}
