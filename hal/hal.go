package hal

import (
	"errors"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
	// PixelFormatYUYV is 16bpp packed in 4-byte big-endian cells: Y1 U Y2 V.
	PixelFormatYUYV
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8888:
		return "rgba8888"
	case PixelFormatYUYV:
		return "yuyv"
	}
	return "unknown"
}

// BytesPerPixel is the storage cost of one pixel, 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8888:
		return 4
	case PixelFormatYUYV:
		return 2
	}
	return 0
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// Each tick is one millisecond and carries its sequence number, so the latest value
// received is the elapsed time since start.
type Time interface {
	Ticks() <-chan uint64
}

// Services are the primitives the renderer borrows from the platform.
type Services interface {
	// Allocate reserves mesh storage against the platform heap.
	Allocate(bytes int) error
	Free(bytes int)
	// Abort logs the failure and stops the program. It does not return.
	Abort(file string, line int, msg string)
	SinCos(rad float64) (sin, cos float64)
	RGBAPairToYUYV(c1, c2 color.RGBA) uint32
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Services() Services
}
