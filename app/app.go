package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"meenle/hal"
	"meenle/internal/buildinfo"
	"meenle/meenle/config"
	"meenle/meenle/demo"
	"meenle/meenle/meshes"
	"meenle/meenle/render"
	"meenle/meenle/xfb"
)

// ErrQuit is returned by the step function when the user asks to leave.
var ErrQuit = errors.New("app: quit")

const zoomStep = 1.25

type system struct {
	h      hal.HAL
	logger hal.Logger
	svc    hal.Services

	fb   *render.FrameBuffer
	r    *render.Renderer
	demo *demo.Demo

	out  hal.Framebuffer
	xbuf *xfb.Buffer
	xopt xfb.Options

	still  bool
	period float64
	nowMS  uint64
}

// New builds the renderer for h from cfg and returns the step function to call once
// per tick.
func New(h hal.HAL, cfg config.Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

// Run drives the step function at roughly 60 frames per second and blocks forever
// (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg config.Config) {
	step, err := New(h, cfg)
	if err != nil {
		h.Services().Abort("app", 0, err.Error())
		return
	}
	for {
		if err := step(); err != nil {
			if !errors.Is(err, ErrQuit) {
				h.Logger().WriteLineString("meenle: " + err.Error())
			}
			select {}
		}
		time.Sleep(time.Second / 60)
	}
}

func newSystem(h hal.HAL, cfg config.Config) (*system, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bootStep(h, "config ok")

	s := &system{
		h:      h,
		logger: h.Logger(),
		svc:    h.Services(),
		still:  cfg.Still,
		period: cfg.Period,
	}

	s.fb = render.NewFrameBuffer()
	s.fb.GenerateBackground()
	s.r = render.NewRenderer(s.fb, abortPlatform{Services: s.svc, s: s})
	if cfg.Clip {
		s.r.OutOfBounds = render.Clip
	}

	if disp := h.Display(); disp != nil {
		s.out = disp.Framebuffer()
	}
	if s.out != nil {
		// The frame may not cover the whole surface.
		s.out.ClearRGB(0, 0, 0)
	}
	if s.out != nil && s.out.Format() == hal.PixelFormatYUYV {
		pairing, err := cfg.Pairing()
		if err != nil {
			return nil, err
		}
		s.xbuf = xfb.NewBuffer(s.out.Width(), s.out.Height())
		s.xopt = xfb.DefaultOptions()
		s.xopt.Pairing = pairing
	}
	bootStep(h, "surface ok")

	cat := meshes.Default()
	idx, ok := cat.Index(cfg.Mesh)
	if !ok && cfg.Mesh != "" {
		s.logf("meenle: unknown mesh %q, using %s", cfg.Mesh, cat[0].Name)
	}
	d, err := demo.New(s.r, cat, s.logger, demo.Options{
		Mesh:   idx,
		Period: cfg.Period,
		Zoom:   cfg.Zoom,
		Fit:    cfg.Fit,
		HUD:    cfg.HUD,
	})
	if err != nil {
		return nil, err
	}
	s.demo = d
	bootStep(h, "demo ok")

	surface := "none"
	if s.out != nil {
		surface = fmt.Sprintf("%s %dx%d", s.out.Format(), s.out.Width(), s.out.Height())
	}
	s.logf("meenle %s: surface=%s bounds=%s still=%v", buildinfo.Short(), surface, s.r.OutOfBounds, s.still)
	return s, nil
}

func (s *system) step() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	s.drainTicks()

	elapsed := float64(s.nowMS) / 1000
	if s.still {
		s.demo.Still(render.Params{
			Scale:  2 * s.demo.ZoomLevel(),
			AngleX: math.Pi,
			AngleY: render.SpinAngle(elapsed, s.period),
		})
	} else {
		s.demo.Frame(elapsed)
	}
	return s.present()
}

func (s *system) drainTicks() {
	t := s.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			s.nowMS = seq
		default:
			return
		}
	}
}

func (s *system) handleInput() error {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return nil
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			if err := s.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyUp:
		return s.demo.Next()
	case hal.KeyDown:
		return s.demo.Prev()
	case hal.KeyLeft:
		s.demo.Zoom(1 / zoomStep)
	case hal.KeyRight:
		s.demo.Zoom(zoomStep)
	case hal.KeyEnter:
		s.still = !s.still
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyUnknown:
		switch ev.Rune {
		case 'q':
			return ErrQuit
		case 'r':
			s.demo.ResetZoom()
		case 'h':
			s.demo.ToggleHUD()
		case '+', '=':
			s.demo.Zoom(zoomStep)
		case '-':
			s.demo.Zoom(1 / zoomStep)
		case ' ':
			s.still = !s.still
		}
	}
	return nil
}

// present copies the rendered frame to the platform surface in its pixel format.
func (s *system) present() error {
	out := s.out
	if out == nil {
		return nil
	}
	buf := out.Buffer()
	if buf == nil {
		return hal.ErrNotImplemented
	}

	switch out.Format() {
	case hal.PixelFormatRGBA8888:
		if out.StrideBytes() == render.StrideBytes && out.Height() == render.Height {
			if _, err := s.fb.CopyTo(buf); err != nil {
				return err
			}
			break
		}
		pix := s.fb.Pix()
		w := min(out.Width(), render.Width) * render.BytesPerPixel
		for y := 0; y < min(out.Height(), render.Height); y++ {
			copy(buf[y*out.StrideBytes():], pix[y*render.StrideBytes:y*render.StrideBytes+w])
		}
	case hal.PixelFormatYUYV:
		xfb.Convert(s.xbuf, s.fb, s.svc, s.xopt)
		s.xbuf.PutBytes(buf)
	default:
		return fmt.Errorf("app: unsupported pixel format %s", out.Format())
	}
	return out.Present()
}

func (s *system) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WriteLineString(fmt.Sprintf(format, args...))
}
