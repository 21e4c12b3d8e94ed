//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"meenle/meenle/render"
	"meenle/meenle/xfb"
)

// Options selects the host surface.
type Options struct {
	// Console presents through a 640×480 YUYV surface like the console video target.
	Console bool
	// HeapBytes bounds mesh storage; 0 is unlimited.
	HeapBytes int
	// Step fixes the time advanced per tick instead of following the wall clock.
	Step time.Duration
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	svc    *services
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	fb := newHostFramebuffer(render.Width, render.Height, PixelFormatRGBA8888)
	if opts.Console {
		fb = newHostFramebuffer(xfb.DisplayWidth, xfb.DisplayHeight, PixelFormatYUYV)
	}
	return &hostHAL{
		logger: logger,
		fb:     fb,
		kbd:    newHostKeyboard(),
		t:      newHostTime(opts.Step),
		svc:    newServices(logger, NewHeap(opts.HeapBytes), func() { os.Exit(2) }),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Display() Display   { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input       { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time         { return h.t }
func (h *hostHAL) Services() Services { return h.svc }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
