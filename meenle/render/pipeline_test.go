package render

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

type fakePlatform struct {
	budget  int
	inUse   int
	aborted []string
	sincos  int
}

func (p *fakePlatform) Allocate(n int) error {
	if p.inUse+n > p.budget {
		return errors.New("out of memory")
	}
	p.inUse += n
	return nil
}

func (p *fakePlatform) Free(n int) { p.inUse -= n }

func (p *fakePlatform) Abort(file string, line int, msg string) {
	p.aborted = append(p.aborted, msg)
	if !strings.HasSuffix(file, ".go") || line <= 0 {
		p.aborted = append(p.aborted, "bad location")
	}
}

func (p *fakePlatform) SinCos(rad float64) (float64, float64) {
	p.sincos++
	return math.Sincos(rad)
}

func TestRenderFrameIdempotent(t *testing.T) {
	r := newTestRenderer()
	m := testCube()
	m.Rotate(AxisX, 0.4)
	m.Rotate(AxisY, 0.9)

	r.RenderFrame(m)
	first := append([]byte(nil), r.FrameBuffer().Pix()...)
	r.RenderFrame(m)
	if !bytes.Equal(first, r.FrameBuffer().Pix()) {
		t.Fatal("second render differs from the first")
	}
}

func TestRenderFrameClearsPreviousFrame(t *testing.T) {
	r := newTestRenderer()
	r.RenderFrame(testCube())
	r.RenderFrame(Mesh{})
	if !bytes.Equal(r.FrameBuffer().Pix(), r.FrameBuffer().Background()) {
		t.Fatal("empty mesh did not leave a clean background")
	}
}

func TestRenderFrameDrawsCubeOutline(t *testing.T) {
	r := newTestRenderer()
	r.RenderFrame(testCube())
	fb := r.FrameBuffer()
	// Face-on cube: a square from 200 to 300 on both axes plus its diagonals.
	for _, p := range [][2]int{{200, 200}, {300, 300}, {200, 300}, {300, 200}, {250, 200}, {250, 250}} {
		if fb.At(p[0], p[1]) != White {
			t.Fatalf("pixel %v not lit", p)
		}
	}
	if fb.At(150, 150) == White || fb.At(0, 0) == White {
		t.Fatal("unexpected lit pixel outside the cube")
	}
}

func TestRenderScaleZeroCollapses(t *testing.T) {
	r := newTestRenderer()
	r.Render(testCube(), Params{Scale: 0})
	lit := litPixels(r.FrameBuffer())
	if len(lit) != 1 || !lit[[2]int{250, 250}] {
		t.Fatalf("lit = %d pixels", len(lit))
	}
}

func TestRenderDoesNotMutateMesh(t *testing.T) {
	r := newTestRenderer()
	m := testCube()
	r.Render(m, Params{Scale: 2, AngleX: 1, AngleY: 2, AngleZ: 3})
	r.RenderSpin(m, 1.25, 5)
	if m.Tris[0].V[0] != V3(-50, -50, -50) {
		t.Fatalf("canonical pose changed: %+v", m.Tris[0].V[0])
	}
}

func TestRenderSpinMatchesManualRotation(t *testing.T) {
	a := newTestRenderer()
	b := newTestRenderer()
	m := testCube()

	a.RenderSpin(m, 1.25, 5)
	b.RenderFrame(WithTransform(m, func(x *Mesh) { x.Rotate(AxisY, SpinAngle(1.25, 5)) }))
	if !bytes.Equal(a.FrameBuffer().Pix(), b.FrameBuffer().Pix()) {
		t.Fatal("spin differs from rendering a rotated copy")
	}
}

func TestSpinAngle(t *testing.T) {
	tests := []struct {
		elapsed, period, want float64
	}{
		{0, 5, 0},
		{1.25, 5, math.Pi / 2},
		{5, 5, 0},
		{7.5, 5, math.Pi},
		{3, 0, 0},
		{3, -1, 0},
	}
	for _, tc := range tests {
		got := SpinAngle(tc.elapsed, tc.period)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("SpinAngle(%v, %v) = %v, want %v", tc.elapsed, tc.period, got, tc.want)
		}
	}
}

func TestRenderUsesPlatform(t *testing.T) {
	p := &fakePlatform{budget: 1 << 20}
	fb := NewFrameBuffer()
	r := NewRenderer(fb, p)
	r.Render(testCube(), Params{Scale: 1, AngleX: 0.1})
	if p.sincos != 3 {
		t.Fatalf("sincos calls = %d, want 3", p.sincos)
	}
	if p.inUse != 0 {
		t.Fatalf("leaked %d bytes", p.inUse)
	}
	if len(p.aborted) != 0 {
		t.Fatalf("unexpected abort: %v", p.aborted)
	}
}

func TestRenderAbortsWhenHeapExhausted(t *testing.T) {
	p := &fakePlatform{budget: 16}
	fb := NewFrameBuffer()
	fb.GenerateBackground()
	r := NewRenderer(fb, p)
	r.RenderSpin(testCube(), 1, 5)

	if len(p.aborted) != 1 {
		t.Fatalf("aborts = %v", p.aborted)
	}
	if !strings.Contains(p.aborted[0], "out of memory") || !strings.Contains(p.aborted[0], `"cube"`) {
		t.Fatalf("abort message = %q", p.aborted[0])
	}
	if fb.At(0, 0) != (Pixel{}) {
		t.Fatal("frame was rendered after abort")
	}
}

func TestHostlessAbortPanics(t *testing.T) {
	defer func() {
		v := recover()
		s, ok := v.(string)
		if !ok || !strings.Contains(s, "boom") || !strings.HasPrefix(s, "[") {
			t.Fatalf("recovered %v", v)
		}
	}()
	hostless{}.Abort("x.go", 3, "boom")
}
