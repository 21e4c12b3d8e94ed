package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Frame buffer dimensions.
const (
	Width  = 500
	Height = 500

	BytesPerPixel = 4
	StrideBytes   = Width * BytesPerPixel
	FrameBytes    = StrideBytes * Height
)

var ErrShortBuffer = errors.New("render: destination shorter than frame")

// Pixel is an RGBA color in 8-bit channels, laid out as 4 bytes in the frame buffer.
type Pixel struct {
	R, G, B, A uint8
}

var (
	White = Pixel{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = Pixel{A: 0xFF}
)

func (p Pixel) RGBA() color.RGBA { return color.RGBA(p) }

// FrameBuffer is the render target: a live Width×Height RGBA buffer plus the
// background snapshot it is cleared from every frame.
//
// Rows are stored top to bottom, 4 bytes per pixel, no padding.
type FrameBuffer struct {
	pix []byte
	bg  []byte
}

// NewFrameBuffer allocates a frame buffer. Until GenerateBackground is called the
// background is transparent black.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pix: make([]byte, FrameBytes),
		bg:  make([]byte, FrameBytes),
	}
}

// GenerateBackground computes the gradient background: red grows downward, green grows
// to the right and blue fades downward.
func (f *FrameBuffer) GenerateBackground() {
	for row := 0; row < Height; row++ {
		r := uint8(math.Round(255.0 / Height * float64(row)))
		b := uint8(math.Round(255 - 255.0/Height*float64(row)))
		off := row * StrideBytes
		for col := 0; col < Width; col++ {
			i := off + col*BytesPerPixel
			f.bg[i+0] = r
			f.bg[i+1] = uint8(math.Round(255.0 / Width * float64(col)))
			f.bg[i+2] = b
			f.bg[i+3] = 0xFF
		}
	}
}

// Fill overwrites the live buffer with the background.
func (f *FrameBuffer) Fill() { copy(f.pix, f.bg) }

// Pix returns the live buffer. It is exactly FrameBytes long and aliases the frame
// buffer; read it only between render calls.
func (f *FrameBuffer) Pix() []byte { return f.pix }

// Background returns the background snapshot.
func (f *FrameBuffer) Background() []byte { return f.bg }

// CopyTo copies the live frame (Width*Height pixels, row-major, 4 bytes each) into dst.
func (f *FrameBuffer) CopyTo(dst []byte) (int, error) {
	if len(dst) < FrameBytes {
		return 0, ErrShortBuffer
	}
	return copy(dst, f.pix), nil
}

// Image wraps the live buffer as an image without copying.
func (f *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.pix,
		Stride: StrideBytes,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}

// At returns the pixel at column x, row y. Out-of-range reads return the zero Pixel.
func (f *FrameBuffer) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return Pixel{}
	}
	i := y*StrideBytes + x*BytesPerPixel
	return Pixel{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Set writes the pixel at column x, row y. Out-of-range writes are dropped.
func (f *FrameBuffer) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	f.set(x, y, p)
}

func (f *FrameBuffer) set(x, y int, p Pixel) {
	i := y*StrideBytes + x*BytesPerPixel
	f.pix[i+0] = p.R
	f.pix[i+1] = p.G
	f.pix[i+2] = p.B
	f.pix[i+3] = p.A
}

// The methods below let text and terminal renderers from the TinyGo drivers ecosystem
// draw straight into the live buffer.

var _ drivers.Displayer = (*FrameBuffer)(nil)

func (f *FrameBuffer) Size() (x, y int16) { return Width, Height }

func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	f.Set(int(x), int(y), Pixel(c))
}

func (f *FrameBuffer) Display() error { return nil }

func (f *FrameBuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, Width)
	y0 := clampInt(int(y), 0, Height)
	x1 := clampInt(int(x)+int(width), 0, Width)
	y1 := clampInt(int(y)+int(height), 0, Height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	p := Pixel(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.set(px, py, p)
		}
	}
	return nil
}

func (f *FrameBuffer) SetScroll(int16) {}

func (f *FrameBuffer) SetRotation(drivers.Rotation) error { return nil }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
