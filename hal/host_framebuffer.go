//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"meenle/meenle/xfb"
)

// hostFramebuffer is drawn into by the app; Present publishes a copy for the window.
type hostFramebuffer struct {
	mu        sync.Mutex
	width     int
	height    int
	stride    int
	format    PixelFormat
	buf       []byte
	front     []byte
	presented uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	f := &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
	if format == PixelFormatYUYV {
		// An all-zero YUYV cell is green; start both buffers black.
		black := xfb.Pack(16, 128, 16, 128)
		fillYUYV(f.buf, black)
		fillYUYV(f.front, black)
	}
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.format {
	case PixelFormatYUYV:
		c := color.RGBA{R: r, G: g, B: b, A: 0xFF}
		fillYUYV(f.buf, xfb.BT601{}.RGBAPairToYUYV(c, c))
	default:
		fillRGBA(f.buf, r, g, b)
	}
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.presented++
	return nil
}

// snapshotRGBA writes the last presented frame into dst as RGBA.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.format {
	case PixelFormatYUYV:
		decodeYUYV(dst, f.front)
	default:
		copy(dst, f.front)
	}
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}
