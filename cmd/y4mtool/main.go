// Package main provides the CLI entry point for y4mtool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/y4mkit/pkg/adapters/logger"
	"github.com/user/y4mkit/pkg/adapters/osfilesystem"
	"github.com/user/y4mkit/pkg/adapters/zstdfs"
	"github.com/user/y4mkit/pkg/config"
	"github.com/user/y4mkit/pkg/ports"
)

var version = "dev"

// env is the state shared by all commands, built once flags are parsed.
type env struct {
	cfg    config.Config
	log    ports.Logger
	fs     ports.FileSystem
	stderr io.Writer
}

func main() {
	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	e := &env{stderr: stderr}

	return &cli.App{
		Name:        "y4mtool",
		Usage:       l10n.T("Write, inspect and decode YUV4MPEG2 streams"),
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (trace, debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output")},
			&cli.StringFlag{Name: "compression", Usage: l10n.T("zstd level for .zst outputs (fastest, default, better, best)")},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			generateCommand(e),
			encodeCommand(e),
			probeCommand(e),
			extractCommand(e),
			streamCommand(e),
			versionCommand(),
		},
	}
}

// setup loads the configuration file, applies global flags and builds
// the logger and filesystem.
func (e *env) setup(c *cli.Context) error {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("compression") {
		cfg.Compression.Level = c.String("compression")
	}
	e.cfg = cfg

	switch {
	case c.Bool("quiet"):
		e.log = logger.NewNoop()
	case e.stderr == os.Stderr:
		e.log = logger.NewConsole(cfg.Level())
	default:
		e.log = logger.NewWriterConsole(cfg.Level(), e.stderr)
	}

	level, err := zstdfs.ParseLevel(cfg.Compression.Level)
	if err != nil {
		return err
	}
	e.fs = zstdfs.New(osfilesystem.New(), level)
	return nil
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("y4mtool version %s", version))
			return nil
		},
	}
}

// inputPath returns the single positional argument every reading command takes.
func inputPath(c *cli.Context) (string, error) {
	if c.Args().Len() < 1 {
		return "", fmt.Errorf("%s", l10n.T("missing input path"))
	}
	return c.Args().First(), nil
}
