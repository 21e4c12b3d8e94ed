package app

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"

	"meenle/hal"
	"meenle/meenle/config"
	"meenle/meenle/render"
	"meenle/meenle/xfb"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testFramebuffer struct {
	w, h      int
	format    hal.PixelFormat
	buf       []byte
	presented int
	cleared   int
}

func newTestFramebuffer(w, h int, format hal.PixelFormat) *testFramebuffer {
	return &testFramebuffer{w: w, h: h, format: format, buf: make([]byte, w*h*format.BytesPerPixel())}
}

func (f *testFramebuffer) Width() int              { return f.w }
func (f *testFramebuffer) Height() int             { return f.h }
func (f *testFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *testFramebuffer) StrideBytes() int        { return f.w * f.format.BytesPerPixel() }
func (f *testFramebuffer) Buffer() []byte          { return f.buf }
func (f *testFramebuffer) ClearRGB(r, g, b uint8)  { f.cleared++ }
func (f *testFramebuffer) Present() error          { f.presented++; return nil }

type aborted struct{ msg string }

type testServices struct {
	heap *hal.Heap
}

func (s *testServices) Allocate(n int) error { return s.heap.Allocate(n) }
func (s *testServices) Free(n int)           { s.heap.Free(n) }
func (s *testServices) Abort(file string, line int, msg string) {
	panic(aborted{msg: msg})
}
func (s *testServices) SinCos(rad float64) (float64, float64) { return math.Sincos(rad) }
func (s *testServices) RGBAPairToYUYV(c1, c2 color.RGBA) uint32 {
	return xfb.BT601{}.RGBAPairToYUYV(c1, c2)
}

type testHAL struct {
	log   *testLogger
	fb    *testFramebuffer
	keys  chan hal.KeyEvent
	ticks chan uint64
	svc   *testServices
}

func newTestHAL(fb *testFramebuffer, heapBytes int) *testHAL {
	return &testHAL{
		log:   &testLogger{},
		fb:    fb,
		keys:  make(chan hal.KeyEvent, 8),
		ticks: make(chan uint64, 8),
		svc:   &testServices{heap: hal.NewHeap(heapBytes)},
	}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Keyboard() hal.Keyboard       { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *testHAL) Time() hal.Time               { return h }
func (h *testHAL) Ticks() <-chan uint64         { return h.ticks }
func (h *testHAL) Services() hal.Services       { return h.svc }

func newTestSystem(t *testing.T, h *testHAL, cfg config.Config) *system {
	t.Helper()
	s, err := newSystem(h, cfg)
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	return s
}

func TestStepPresentsRGBA(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(render.Width, render.Height, hal.PixelFormatRGBA8888), 0)
	s := newTestSystem(t, h, config.Default())
	if h.fb.cleared != 1 {
		t.Fatalf("surface cleared %d times before the first frame, want 1", h.fb.cleared)
	}

	h.ticks <- 1250
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.nowMS != 1250 {
		t.Fatalf("nowMS=%d, want 1250", s.nowMS)
	}
	if h.fb.presented != 1 {
		t.Fatalf("presented=%d", h.fb.presented)
	}
	if !bytes.Equal(h.fb.buf, s.fb.Pix()) {
		t.Fatal("surface differs from the rendered frame")
	}
	if h.svc.heap.InUse() != 0 || h.svc.heap.Peak() == 0 {
		t.Fatalf("heap in use %d peak %d", h.svc.heap.InUse(), h.svc.heap.Peak())
	}
}

func TestStepPresentsSmallerRGBA(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(100, 50, hal.PixelFormatRGBA8888), 0)
	s := newTestSystem(t, h, config.Default())
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	row := 49
	want := s.fb.Pix()[row*render.StrideBytes : row*render.StrideBytes+100*4]
	got := h.fb.buf[row*400 : row*400+400]
	if !bytes.Equal(got, want) {
		t.Fatal("cropped row differs from the rendered frame")
	}
}

func TestStepPresentsYUYV(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(xfb.DisplayWidth, xfb.DisplayHeight, hal.PixelFormatYUYV), 0)
	cfg := config.Default()
	cfg.Still = true
	s := newTestSystem(t, h, cfg)
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := h.fb.buf[:4]; !bytes.Equal(got, []byte{0x1F, 0x99, 0x1F, 0x7B}) {
		t.Fatalf("first cell=% x, want border", got)
	}
	if s.xbuf.Rows != 480 || s.xbuf.Cols != 320 {
		t.Fatalf("xfb %dx%d", s.xbuf.Rows, s.xbuf.Cols)
	}
}

func TestKeys(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(render.Width, render.Height, hal.PixelFormatRGBA8888), 0)
	s := newTestSystem(t, h, config.Default())

	start := s.demo.Index()
	h.keys <- hal.KeyEvent{Code: hal.KeyUp, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyUp, Press: false}
	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.demo.Index() != start+1 {
		t.Fatalf("index=%d, want %d", s.demo.Index(), start+1)
	}
	if s.demo.ZoomLevel() != zoomStep {
		t.Fatalf("zoom=%v, want %v", s.demo.ZoomLevel(), zoomStep)
	}

	h.keys <- hal.KeyEvent{Press: true, Rune: 'r'}
	h.keys <- hal.KeyEvent{Press: true, Rune: ' '}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.demo.ZoomLevel() != 1 || !s.still {
		t.Fatalf("zoom=%v still=%v after r and space", s.demo.ZoomLevel(), s.still)
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyDown, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.demo.Index() != start || s.still {
		t.Fatalf("index=%d still=%v after Down and Enter", s.demo.Index(), s.still)
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := s.step(); !errors.Is(err, ErrQuit) {
		t.Fatalf("err=%v, want ErrQuit", err)
	}
	h.keys <- hal.KeyEvent{Press: true, Rune: 'q'}
	if err := s.step(); !errors.Is(err, ErrQuit) {
		t.Fatalf("err=%v, want ErrQuit", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(10, 10, hal.PixelFormatRGBA8888), 0)
	cfg := config.Default()
	cfg.Zoom = -1
	if _, err := New(h, cfg); err == nil {
		t.Fatal("expected config error")
	}
}

func TestUnknownMeshFallsBack(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(10, 10, hal.PixelFormatRGBA8888), 0)
	cfg := config.Default()
	cfg.Mesh = "monkey"
	s := newTestSystem(t, h, cfg)
	if s.demo.Index() != 0 {
		t.Fatalf("index=%d, want 0", s.demo.Index())
	}
	if len(h.log.lines) == 0 || !bytes.Contains([]byte(h.log.lines[0]), []byte(`unknown mesh "monkey"`)) {
		t.Fatalf("log=%q", h.log.lines)
	}
}

func TestAbortScreen(t *testing.T) {
	h := newTestHAL(newTestFramebuffer(render.Width, render.Height, hal.PixelFormatRGBA8888), 64)
	s := newTestSystem(t, h, config.Default())

	var got aborted
	func() {
		defer func() {
			r := recover()
			a, ok := r.(aborted)
			if !ok {
				t.Fatalf("recovered %v, want abort", r)
			}
			got = a
		}()
		_ = s.step()
	}()

	want := fmt.Sprintf("for mesh %q", s.demo.Mesh().Name)
	if !bytes.Contains([]byte(got.msg), []byte(want)) {
		t.Fatalf("abort message %q lacks %q", got.msg, want)
	}
	if h.fb.presented != 1 {
		t.Fatalf("presented=%d, want the abort screen", h.fb.presented)
	}
	drawn := 0
	for i := 0; i < 40*render.StrideBytes; i += 4 {
		if h.fb.buf[i] != abortBackground.R || h.fb.buf[i+1] != abortBackground.G {
			drawn++
		}
	}
	if drawn == 0 {
		t.Fatal("expected the terminal to draw over the top rows")
	}
}
