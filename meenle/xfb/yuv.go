package xfb

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Converter packs two RGBA pixels into one YUYV cell.
type Converter interface {
	RGBAPairToYUYV(c1, c2 color.RGBA) uint32
}

// BT601 is the studio-swing BT.601 conversion done in float32, as on the console.
type BT601 struct{}

var _ Converter = BT601{}

func (BT601) RGBAPairToYUYV(c1, c2 color.RGBA) uint32 {
	y1, u1, v1 := RGBToYUV(c1)
	y2, u2, v2 := RGBToYUV(c2)
	u := uint8(0.5*float32(u1) + 0.5*float32(u2))
	v := uint8(0.5*float32(v1) + 0.5*float32(v2))
	return Pack(y1, u, y2, v)
}

// RGBToYUV converts one pixel. Alpha is ignored.
func RGBToYUV(c color.RGBA) (y, u, v uint8) {
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	y = f32ToU8(0.257*r + 0.504*g + 0.098*b + 16)
	u = f32ToU8(-0.148*r - 0.291*g + 0.439*b + 128)
	v = f32ToU8(0.439*r - 0.368*g - 0.071*b + 128)
	return y, u, v
}

// YUVToRGB is the approximate inverse of RGBToYUV, used to preview a YUYV buffer.
func YUVToRGB(y, u, v uint8) color.RGBA {
	yy := 1.164 * (float32(y) - 16)
	uu := float32(u) - 128
	vv := float32(v) - 128
	return color.RGBA{
		R: f32ToU8(yy + 1.596*vv),
		G: f32ToU8(yy - 0.813*vv - 0.391*uu),
		B: f32ToU8(yy + 2.018*uu),
		A: 0xFF,
	}
}

// Pack builds 0xYYUUYYVV.
func Pack(y1, u, y2, v uint8) uint32 {
	return uint32(y1)<<24 | uint32(u)<<16 | uint32(y2)<<8 | uint32(v)
}

// Unpack splits a cell into its components.
func Unpack(c uint32) (y1, u, y2, v uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// f32ToU8 truncates after clamping to [0, 255].
func f32ToU8(v float32) uint8 {
	return uint8(math32.Min(math32.Max(v, 0), 255))
}
