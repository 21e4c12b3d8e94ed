package render

import (
	"fmt"
	"math"
)

// Params is a one-shot pose: uniform scale, then rotations about X, Y and Z in that order.
type Params struct {
	Scale  float64
	AngleX float64
	AngleY float64
	AngleZ float64
}

// Renderer draws meshes into a FrameBuffer.
//
// Create it once per frame buffer and reuse it. It is not safe for concurrent use.
type Renderer struct {
	OutOfBounds OutOfBounds

	fb       *FrameBuffer
	platform Platform
}

// NewRenderer returns a renderer drawing into fb. A nil platform uses the standard
// library trig, an unbounded heap and a panicking abort.
func NewRenderer(fb *FrameBuffer, p Platform) *Renderer {
	if p == nil {
		p = hostless{}
	}
	return &Renderer{fb: fb, platform: p}
}

func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

// RenderFrame clears the frame from the background and draws every edge of m.
//
// Only X and Y are used; triangles are drawn in mesh order.
func (r *Renderer) RenderFrame(m Mesh) {
	r.fb.Fill()
	for i := range m.Tris {
		r.drawTriangle(&m.Tris[i])
	}
}

func (r *Renderer) drawTriangle(t *Triangle) {
	r.DrawLine(t.V[0].X, t.V[0].Y, t.V[1].X, t.V[1].Y)
	r.DrawLine(t.V[1].X, t.V[1].Y, t.V[2].X, t.V[2].Y)
	r.DrawLine(t.V[2].X, t.V[2].Y, t.V[0].X, t.V[0].Y)
}

// Render draws a posed copy of m. m is not modified.
func (r *Renderer) Render(m Mesh, p Params) {
	posed, ok := r.clone(m)
	if !ok {
		return
	}
	defer r.platform.Free(posed.SizeBytes())

	posed.Scale(p.Scale)
	posed.RotateSinCos(r.platform.SinCos, AxisX, p.AngleX)
	posed.RotateSinCos(r.platform.SinCos, AxisY, p.AngleY)
	posed.RotateSinCos(r.platform.SinCos, AxisZ, p.AngleZ)
	r.RenderFrame(posed)
}

// RenderSpin draws m turned about Y by SpinAngle(elapsed, period). m is not modified.
func (r *Renderer) RenderSpin(m Mesh, elapsed, period float64) {
	spun, ok := r.clone(m)
	if !ok {
		return
	}
	defer r.platform.Free(spun.SizeBytes())

	spun.RotateSinCos(r.platform.SinCos, AxisY, SpinAngle(elapsed, period))
	r.RenderFrame(spun)
}

// SpinAngle returns the Y angle of a spin with one revolution every period seconds.
// A non-positive period does not spin.
func SpinAngle(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	const tau = 2 * math.Pi
	return math.Mod(elapsed*tau/period, tau)
}

func (r *Renderer) clone(m Mesh) (Mesh, bool) {
	if err := r.platform.Allocate(m.SizeBytes()); err != nil {
		r.abort(fmt.Sprintf("allocating %d bytes for mesh %q: %v", m.SizeBytes(), m.Name, err))
		return Mesh{}, false
	}
	return m.Clone(), true
}
