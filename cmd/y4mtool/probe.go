package main

import (
	"fmt"
	"io"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/user/y4mkit/pkg/adapters/zstdfs"
	"github.com/user/y4mkit/pkg/summarizer"
	"github.com/user/y4mkit/pkg/y4m"
)

func probeCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Validate a stream and describe its layout"),
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: l10n.T("Output format (text, yaml, markdown)")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a Markdown summary to this path")},
		},
		Action: func(c *cli.Context) error {
			path, err := inputPath(c)
			if err != nil {
				return err
			}

			d, err := y4m.NewProber(e.log).ProbeFile(e.fs, path)
			if err != nil {
				return fmt.Errorf("probe %s: %w", path, err)
			}

			summary := summarizer.NewBuilder().
				WithSource(path, zstdfs.Compressed(path)).
				WithStream(d).
				Build()

			if out := c.String("summary"); out != "" {
				w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), e.fs)
				if err := w.Write(out, summary); err != nil {
					return err
				}
				e.log.Info("Summary saved to %s", out)
			}

			return printDescriptor(c.App.Writer, c.String("format"), summary)
		},
	}
}

func printDescriptor(w io.Writer, format string, s *summarizer.Summary) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, summarizer.NewTextFormatter().Format(s))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.Stream); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "markdown", "md":
		_, err := io.WriteString(w, summarizer.NewMarkdownFormatter().Format(s))
		return err
	default:
		return fmt.Errorf("%s", l10n.F("unknown format %q", format))
	}
}
