package xfb

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"meenle/meenle/render"
)

// Display geometry of the console video mode.
const (
	DisplayWidth  = 640
	DisplayHeight = 480
)

// DefaultBorder is the pillarbox color.
var DefaultBorder = color.RGBA{R: 11, G: 11, B: 68, A: 255}

// Pairing selects which two source pixels share a cell.
type Pairing uint8

const (
	// PairHorizontal packs a pixel with its right-hand neighbour.
	PairHorizontal Pairing = iota
	// PairVertical packs a pixel with the one below it. It halves horizontal detail and
	// exists to reproduce frames captured from the legacy console build.
	PairVertical
)

func (p Pairing) String() string {
	switch p {
	case PairHorizontal:
		return "horizontal"
	case PairVertical:
		return "vertical"
	}
	return "unknown"
}

// ParsePairing accepts the names printed by Pairing.String. Empty means horizontal.
func ParsePairing(s string) (Pairing, error) {
	switch s {
	case "", "horizontal":
		return PairHorizontal, nil
	case "vertical":
		return PairVertical, nil
	}
	return PairHorizontal, fmt.Errorf("xfb: unknown pairing %q", s)
}

// Options controls Convert.
type Options struct {
	Border  color.RGBA
	Pairing Pairing
}

func DefaultOptions() Options {
	return Options{Border: DefaultBorder, Pairing: PairHorizontal}
}

// Buffer is a Rows×Cols grid of YUYV cells, one cell per two display pixels.
type Buffer struct {
	Rows  int
	Cols  int
	Cells []uint32
}

// NewBuffer allocates a buffer for a display width×height pixels.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cols := width / 2
	return &Buffer{Rows: height, Cols: cols, Cells: make([]uint32, cols*height)}
}

func (b *Buffer) At(row, col int) uint32 { return b.Cells[row*b.Cols+col] }

// SizeBytes is the serialized size.
func (b *Buffer) SizeBytes() int { return len(b.Cells) * 4 }

// PutBytes serializes the cells big-endian into dst and returns the bytes written.
func (b *Buffer) PutBytes(dst []byte) int {
	n := 0
	for _, c := range b.Cells {
		if n+4 > len(dst) {
			break
		}
		binary.BigEndian.PutUint32(dst[n:], c)
		n += 4
	}
	return n
}

// WriteTo writes the big-endian serialization to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, b.SizeBytes())
	n := b.PutBytes(buf)
	written, err := w.Write(buf[:n])
	return int64(written), err
}

// Convert fills dst from the frame in src.
//
// With vbar = (displayWidth - render.Width) / 4, cells c <= vbar and c >= vbar +
// render.Width/2 are border. Other cells read source column (c-vbar)*2 of row r and its
// partner chosen by opt.Pairing. The partner is clamped to the frame, rows past the
// bottom of the frame are border, and so is any cell whose source column falls outside
// the frame. A nil conv uses BT601.
func Convert(dst *Buffer, src *render.FrameBuffer, conv Converter, opt Options) {
	if conv == nil {
		conv = BT601{}
	}
	border := conv.RGBAPairToYUYV(opt.Border, opt.Border)
	vbar := (dst.Cols*2 - render.Width) / 4

	for r := 0; r < dst.Rows; r++ {
		row := dst.Cells[r*dst.Cols : (r+1)*dst.Cols]
		for c := range row {
			if c <= vbar || c >= vbar+render.Width/2 || r >= render.Height {
				row[c] = border
				continue
			}
			sc := (c - vbar) * 2
			if sc < 0 || sc >= render.Width {
				row[c] = border
				continue
			}
			px, py := sc, r
			switch opt.Pairing {
			case PairVertical:
				py = minInt(r+1, render.Height-1)
			default:
				px = minInt(sc+1, render.Width-1)
			}
			row[c] = conv.RGBAPairToYUYV(src.At(sc, r).RGBA(), src.At(px, py).RGBA())
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
