// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/y4mkit/pkg/ports"
	"github.com/user/y4mkit/pkg/y4m"
)

// Config represents the full configuration for y4mtool.
type Config struct {
	// Stream
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`

	// Generation
	Frames     int    `yaml:"frames"`
	PixelOrder string `yaml:"pixel_order"`
	Color      string `yaml:"color"`
	Pattern    string `yaml:"pattern"`

	// Output
	LogLevel    string            `yaml:"log_level"`
	Compression CompressionConfig `yaml:"compression"`
}

// CompressionConfig controls how .zst outputs are written.
type CompressionConfig struct {
	Level string `yaml:"level"`
}

// Patterns lists the test patterns the generator can render.
var Patterns = []string{"solid", "bars", "counter"}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Width:  1600,
		Height: 900,
		FPS:    60,

		Frames:     300,
		PixelOrder: "rgb",
		Color:      "#00ff00",
		Pattern:    "solid",

		LogLevel: "info",
		Compression: CompressionConfig{
			Level: "default",
		},
	}
}

// LoadFromFile loads configuration from a YAML file. Fields missing from
// the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a writable stream.
func (c Config) Validate() error {
	opts := y4m.Options{Width: c.Width, Height: c.Height, FPS: c.FPS}
	if err := opts.Validate(); err != nil {
		return err
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative: %d", c.Frames)
	}
	if _, err := c.ChannelOrder(); err != nil {
		return err
	}
	if !validHex(c.Color) {
		return fmt.Errorf("invalid color %q: want #rrggbb", c.Color)
	}
	if !validPattern(c.Pattern) {
		return fmt.Errorf("unknown pattern %q: want one of %s", c.Pattern, strings.Join(Patterns, ", "))
	}
	return nil
}

// ChannelOrder returns the configured packed pixel order.
func (c Config) ChannelOrder() (y4m.ChannelOrder, error) {
	return y4m.ParseChannelOrder(c.PixelOrder)
}

// Level returns the configured log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	r := hexValue(hex[0])<<4 | hexValue(hex[1])
	g := hexValue(hex[2])<<4 | hexValue(hex[3])
	b := hexValue(hex[4])<<4 | hexValue(hex[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

func validPattern(name string) bool {
	for _, p := range Patterns {
		if p == name {
			return true
		}
	}
	return false
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
