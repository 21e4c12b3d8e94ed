package app

import (
	"fmt"
	"image/color"

	"meenle/hal"
	"meenle/internal/buildinfo"
	"meenle/meenle/render"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var abortBackground = color.RGBA{R: 0x40, A: 0xFF}

// abortPlatform shows the failure on screen before handing it to the HAL, which logs
// it and stops.
type abortPlatform struct {
	hal.Services
	s *system
}

func (p abortPlatform) Abort(file string, line int, msg string) {
	p.s.showAbort(fmt.Sprintf("[%s:%d]: %s", file, line, msg))
	p.Services.Abort(file, line, msg)
}

func (s *system) showAbort(msg string) {
	fb := s.fb
	_ = fb.FillRectangle(0, 0, render.Width, render.Height, abortBackground)

	term := tinyterm.NewTerminal(fb)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 7,
	})
	fmt.Fprintf(term, "meenle abort (%s)\r\n\r\n", buildinfo.Short())
	fmt.Fprintf(term, "%s\r\n", msg)
	if d := s.demo; d != nil {
		m := d.Mesh()
		fmt.Fprintf(term, "mesh: %s (%d triangles, %d bytes)\r\n", m.Name, len(m.Tris), m.SizeBytes())
	}
	_ = fb.Display()
	_ = s.present()
}
