package y4m

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Magic is the token that opens every YUV4MPEG2 stream.
const Magic = "YUV4MPEG2"

// Chroma444 is the only chroma subsampling tag this codec supports.
const Chroma444 = "444"

// defaultChroma is the subsampling the format assumes when no C tag is present.
const defaultChroma = "420jpeg"

// Ratio is a numerator/denominator pair as used by the F and A header tags.
type Ratio struct {
	Num int `yaml:"num"`
	Den int `yaml:"den"`
}

// String returns the ratio in header notation.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// StreamHeader holds the fields of a stream header line.
type StreamHeader struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	FrameRate   Ratio  `yaml:"frame_rate"`
	Interlace   byte   `yaml:"-"`
	PixelAspect Ratio  `yaml:"pixel_aspect"`
	Chroma      string `yaml:"chroma"`
}

// NewHeader returns the canonical progressive 4:4:4 header for the given
// dimensions and integer frame rate.
func NewHeader(width, height, fps int) StreamHeader {
	return StreamHeader{
		Width:       width,
		Height:      height,
		FrameRate:   Ratio{Num: fps, Den: 1},
		Interlace:   'p',
		PixelAspect: Ratio{Num: 1, Den: 1},
		Chroma:      Chroma444,
	}
}

// PlaneSize returns the number of samples in one plane.
func (h StreamHeader) PlaneSize() int {
	return h.Width * h.Height
}

// FrameSize returns the payload size of one frame (Y, U and V planes).
func (h StreamHeader) FrameSize() int {
	return h.PlaneSize() * 3
}

// frameSizeFits reports whether a width x height frame of three planes can
// be sized in an int. Both dimensions must be positive.
func frameSizeFits(width, height int) bool {
	return width <= math.MaxInt/height/3
}

// ParseHeader parses and validates a stream header line. The trailing
// newline is optional.
func ParseHeader(line string) (StreamHeader, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != Magic {
		return StreamHeader{}, fmt.Errorf("%w: missing %s signature", ErrMalformedHeader, Magic)
	}

	h := StreamHeader{
		FrameRate:   Ratio{},
		Interlace:   'p',
		PixelAspect: Ratio{Num: 1, Den: 1},
		Chroma:      defaultChroma,
	}

	for _, field := range fields[1:] {
		tag, val := field[0], field[1:]

		var err error
		switch tag {
		case 'W':
			h.Width, err = parseInt(tag, val)
		case 'H':
			h.Height, err = parseInt(tag, val)
		case 'F':
			h.FrameRate, err = parseRatio(tag, val)
		case 'A':
			h.PixelAspect, err = parseRatio(tag, val)
		case 'I':
			if len(val) != 1 {
				err = fmt.Errorf("%w: field %q", ErrMalformedHeader, field)
			} else {
				h.Interlace = val[0]
			}
		case 'C':
			h.Chroma = normalizeChroma(val)
		default:
			// X and any future tags carry nothing this profile needs.
		}
		if err != nil {
			return StreamHeader{}, err
		}
	}

	if err := h.Validate(); err != nil {
		return StreamHeader{}, err
	}
	return h, nil
}

// Validate checks the header against the supported profile.
func (h StreamHeader) Validate() error {
	switch {
	case h.Width <= 0 || h.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrUnsupportedProfile, h.Width, h.Height)
	case !frameSizeFits(h.Width, h.Height):
		return fmt.Errorf("%w: dimensions %dx%d overflow the frame size", ErrUnsupportedProfile, h.Width, h.Height)
	case h.FrameRate.Num <= 0:
		return fmt.Errorf("%w: frame rate %s", ErrUnsupportedProfile, h.FrameRate)
	case h.FrameRate.Den != 1:
		return fmt.Errorf("%w: non-integer frame rate %s", ErrUnsupportedProfile, h.FrameRate)
	case h.Interlace != 'p' && h.Interlace != 'P':
		return fmt.Errorf("%w: interlace mode %q", ErrUnsupportedProfile, h.Interlace)
	case h.PixelAspect.Num != 1 || h.PixelAspect.Den != 1:
		return fmt.Errorf("%w: pixel aspect %s", ErrUnsupportedProfile, h.PixelAspect)
	case normalizeChroma(h.Chroma) != Chroma444:
		return fmt.Errorf("%w: chroma subsampling %q", ErrUnsupportedProfile, h.Chroma)
	}
	return nil
}

// Marshal returns the canonical header line, including the trailing newline.
func (h StreamHeader) Marshal() []byte {
	return []byte(h.String())
}

// String returns the canonical header line, including the trailing newline.
func (h StreamHeader) String() string {
	return fmt.Sprintf("%s W%d H%d F%d:1 Ip A1:1 C%s\n", Magic, h.Width, h.Height, h.FrameRate.Num, Chroma444)
}

// normalizeChroma accepts "C444" as well as "444"; some writers repeat
// the tag letter inside the value.
func normalizeChroma(val string) string {
	return strings.TrimPrefix(val, "C")
}

func parseInt(tag byte, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: field %c%s: %v", ErrMalformedHeader, tag, val, err)
	}
	return n, nil
}

// parseRatio parses "N" or "N:D"; a missing denominator means 1.
func parseRatio(tag byte, val string) (Ratio, error) {
	num, den, found := strings.Cut(val, ":")
	n, err := parseInt(tag, num)
	if err != nil {
		return Ratio{}, err
	}
	if !found {
		return Ratio{Num: n, Den: 1}, nil
	}
	d, err := parseInt(tag, den)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{Num: n, Den: d}, nil
}
