package render

import (
	"math"
	"math/bits"
)

// OutOfBounds selects what happens to a line pixel that falls outside the frame.
type OutOfBounds uint8

const (
	// ClampToOrigin writes the pixel to (0,0) instead, so off-screen geometry shows up
	// as a lit top-left pixel.
	ClampToOrigin OutOfBounds = iota
	// Clip drops the pixel.
	Clip
)

func (o OutOfBounds) String() string {
	switch o {
	case ClampToOrigin:
		return "clamp"
	case Clip:
		return "clip"
	}
	return "unknown"
}

// DrawLine draws a white line between two points given in centered coordinates:
// (0,0) is the middle of the frame, +x is right and +y moves down the stored rows.
//
// Endpoints are truncated toward zero, then both axes are offset by Width/2. The
// vertical offset is Width/2 as well; the frame is square.
func (r *Renderer) DrawLine(fx0, fy0, fx1, fy1 float64) {
	const half = Width / 2

	x0 := int64(truncInt32(fx0)) + half
	y0 := int64(truncInt32(fy0)) + half
	x1 := int64(truncInt32(fx1)) + half
	y1 := int64(truncInt32(fy1)) + half

	steep := abs64(y1-y0) > abs64(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs64(y1 - y0)
	e := dx / 2
	ystep := int64(-1)
	if y0 < y1 {
		ystep = 1
	}

	// Steps outside the frame along the major axis are skipped, so a line costs at
	// most one iteration per frame column or row whatever its endpoints.
	limit := int64(Width)
	if steep {
		limit = Height
	}
	if x1 < 0 || x0 >= limit {
		r.plotOffFrame()
		return
	}
	y := y0
	if x0 < 0 {
		k, rest := bresenhamSkip(uint64(-x0), uint64(dx), uint64(dy), uint64(e))
		y += int64(k) * ystep
		e = int64(rest)
		x0 = 0
		r.plotOffFrame()
	}
	if x1 >= limit {
		x1 = limit - 1
		r.plotOffFrame()
	}

	for x := x0; x <= x1; x++ {
		if steep {
			r.plot(y, x)
		} else {
			r.plot(x, y)
		}
		e -= dy
		if e < 0 {
			y += ystep
			e += dx
		}
	}
}

func (r *Renderer) plot(x, y int64) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		if r.OutOfBounds == Clip {
			return
		}
		x, y = 0, 0
	}
	r.fb.set(int(x), int(y), White)
}

// plotOffFrame accounts for pixels that were skipped because they lie off the frame.
func (r *Renderer) plotOffFrame() {
	if r.OutOfBounds == ClampToOrigin {
		r.fb.set(0, 0, White)
	}
}

// bresenhamSkip returns the minor-axis steps taken and the new error term after n
// major-axis steps starting from error e. Requires 0 <= e < dx and dy <= dx.
func bresenhamSkip(n, dx, dy, e uint64) (steps, rest uint64) {
	hi, lo := bits.Mul64(n, dy)
	if hi == 0 && lo <= e {
		return 0, e - lo
	}
	lo, borrow := bits.Sub64(lo, e, 0)
	hi -= borrow
	q, rem := bits.Div64(hi, lo, dx)
	if rem == 0 {
		return q, 0
	}
	return q + 1, dx - rem
}

// truncInt32 converts like a saturating float-to-int cast: toward zero, clamped to the
// int32 range, NaN to 0.
func truncInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
