//go:build tinygo && baremetal

package hal

import (
	"image/color"

	"meenle/meenle/xfb"
)

// ramFramebuffer is a YUYV buffer in RAM; the video unit scans it out directly, so
// Present has nothing to do.
type ramFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func newRAMFramebuffer(w, h int) *ramFramebuffer {
	return &ramFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *ramFramebuffer) Width() int          { return f.w }
func (f *ramFramebuffer) Height() int         { return f.h }
func (f *ramFramebuffer) Format() PixelFormat { return PixelFormatYUYV }
func (f *ramFramebuffer) StrideBytes() int    { return f.w * 2 }
func (f *ramFramebuffer) Buffer() []byte      { return f.buf }

func (f *ramFramebuffer) ClearRGB(r, g, b uint8) {
	c := color.RGBA{R: r, G: g, B: b, A: 0xFF}
	fillYUYV(f.buf, xfb.BT601{}.RGBAPairToYUYV(c, c))
}

func (f *ramFramebuffer) Present() error { return nil }

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
