package y4m

import (
	"fmt"
	"image"
	"image/color"
)

// ChannelOrder selects how a packed 32-bit pixel stores its channels.
type ChannelOrder int

const (
	// OrderRGB stores red in bits 16-23, green in 8-15 and blue in 0-7.
	OrderRGB ChannelOrder = iota + 1
	// OrderBGR stores blue in bits 16-23, green in 8-15 and red in 0-7.
	OrderBGR
)

// String returns the string representation of the channel order.
func (o ChannelOrder) String() string {
	switch o {
	case OrderRGB:
		return "rgb"
	case OrderBGR:
		return "bgr"
	default:
		return "unknown"
	}
}

// Valid reports whether o is a known channel order.
func (o ChannelOrder) Valid() bool {
	return o == OrderRGB || o == OrderBGR
}

// ParseChannelOrder parses "rgb" or "bgr".
func ParseChannelOrder(s string) (ChannelOrder, error) {
	switch s {
	case "rgb", "RGB":
		return OrderRGB, nil
	case "bgr", "BGR":
		return OrderBGR, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel order %q", ErrInvalidOptions, s)
	}
}

// Unpack extracts 8-bit red, green and blue from a packed pixel.
// Bits 24-31 are ignored.
func (o ChannelOrder) Unpack(pixel uint32) (r, g, b uint8) {
	if o == OrderBGR {
		return uint8(pixel), uint8(pixel >> 8), uint8(pixel >> 16)
	}
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}

// Pack builds a packed pixel from 8-bit red, green and blue.
func (o ChannelOrder) Pack(r, g, b uint8) uint32 {
	if o == OrderBGR {
		return uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	}
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGBToYUV converts one packed pixel to full-range BT.601 Y, U and V.
//
// Each product is rounded to float32 on its own so that no platform fuses
// the multiply-adds; the sum is saturated to [0,255] and truncated toward zero.
// Unknown orders are treated as OrderRGB.
func RGBToYUV(pixel uint32, order ChannelOrder) (y, u, v uint8) {
	r8, g8, b8 := order.Unpack(pixel)
	r, g, b := float32(r8), float32(g8), float32(b8)

	yf := float32(0.299*r) + float32(0.587*g) + float32(0.114*b)
	uf := float32(-0.169*r) - float32(0.331*g) + float32(0.500*b) + 128
	vf := float32(0.500*r) - float32(0.419*g) - float32(0.081*b) + 128

	return saturate(yf), saturate(uf), saturate(vf)
}

func saturate(f float32) uint8 {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	default:
		return uint8(f)
	}
}

// YUVToRGB is the approximate inverse of RGBToYUV, used for previews of
// decoded frames. It delegates to the standard library's JFIF conversion,
// which uses the same full-range BT.601 matrix.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	return color.YCbCrToRGB(y, u, v)
}

// TransformPlanes converts pixels into the Y, U and V planes.
// All planes must hold at least len(pixels) samples.
func TransformPlanes(pixels []uint32, order ChannelOrder, yp, up, vp []byte) {
	yp, up, vp = yp[:len(pixels)], up[:len(pixels)], vp[:len(pixels)]
	for i, px := range pixels {
		yp[i], up[i], vp[i] = RGBToYUV(px, order)
	}
}

// PackImage writes img into dst as packed pixels in row-major order.
// dst must hold at least Dx*Dy samples.
func PackImage(img image.Image, order ChannelOrder, dst []uint32) error {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if len(dst) < w*h {
		return fmt.Errorf("%w: pixel buffer has %d samples, image needs %d", ErrBufferTooSmall, len(dst), w*h)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			off := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := rgba.Pix[off : off+w*4]
			for x := 0; x < w; x++ {
				p := row[x*4 : x*4+3]
				dst[y*w+x] = order.Pack(p[0], p[1], p[2])
			}
		}
		return nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			dst[y*w+x] = order.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return nil
}
