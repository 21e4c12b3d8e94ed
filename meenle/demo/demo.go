// Package demo drives the spinning-model showcase: it owns the selected mesh, the
// user's zoom and the HUD, and renders one frame per call.
package demo

import (
	"errors"
	"fmt"
	"image/color"

	"meenle/meenle/meshes"
	"meenle/meenle/render"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Zoom limits.
const (
	MinZoom = 0.1
	MaxZoom = 10
)

var ErrEmptyCatalog = errors.New("demo: catalog is empty")

// Logger is the subset of hal.Logger the demo writes to.
type Logger interface {
	WriteLineString(s string)
}

type Options struct {
	Mesh int
	// Period is the seconds per revolution of Frame.
	Period float64
	Zoom   float64
	// Fit, when > 0, rescales each mesh so it covers that proportion of the half-width.
	Fit float64
	HUD bool
}

func DefaultOptions() Options {
	return Options{Period: 5, Zoom: 1, HUD: true}
}

type Demo struct {
	r      *render.Renderer
	cat    meshes.Catalog
	logger Logger

	index int
	mesh  render.Mesh

	period   float64
	zoom     float64
	baseZoom float64
	fit      float64
	hud      bool

	font       tinyfont.Fonter
	fontHeight int16
}

var hudColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0x40, A: 0xFF}

// New selects opts.Mesh, falling back to the first entry when it is out of range.
func New(r *render.Renderer, cat meshes.Catalog, logger Logger, opts Options) (*Demo, error) {
	if len(cat) == 0 {
		return nil, ErrEmptyCatalog
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}
	d := &Demo{
		r:          r,
		cat:        cat,
		logger:     logger,
		index:      -1,
		period:     opts.Period,
		zoom:       clampZoom(opts.Zoom),
		baseZoom:   clampZoom(opts.Zoom),
		fit:        opts.Fit,
		hud:        opts.HUD,
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
	}
	ok, err := d.Select(opts.Mesh)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := d.Select(0); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Select makes catalog entry i current. An index outside the catalog is ignored and
// reports false.
func (d *Demo) Select(i int) (bool, error) {
	m, ok, err := d.cat.Load(i)
	if err != nil || !ok {
		return false, err
	}
	if d.fit > 0 {
		m = meshes.FitToScreen(m, d.fit)
	}
	d.index = i
	d.mesh = m
	d.logf("demo: mesh=%s tris=%d", m.Name, len(m.Tris))
	return true, nil
}

func (d *Demo) Next() error {
	_, err := d.Select((d.index + 1) % d.cat.Len())
	return err
}

func (d *Demo) Prev() error {
	_, err := d.Select((d.index + d.cat.Len() - 1) % d.cat.Len())
	return err
}

// Zoom multiplies the zoom level by factor within [MinZoom, MaxZoom].
func (d *Demo) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	d.zoom = clampZoom(d.zoom * factor)
}

func (d *Demo) ResetZoom()         { d.zoom = d.baseZoom }
func (d *Demo) ToggleHUD()         { d.hud = !d.hud }
func (d *Demo) Index() int         { return d.index }
func (d *Demo) ZoomLevel() float64 { return d.zoom }
func (d *Demo) Mesh() render.Mesh  { return d.mesh }

// Frame draws the current mesh spun to elapsed seconds.
func (d *Demo) Frame(elapsed float64) {
	if d.zoom == 1 {
		d.r.RenderSpin(d.mesh, elapsed, d.period)
	} else {
		d.r.Render(d.mesh, render.Params{Scale: d.zoom, AngleY: render.SpinAngle(elapsed, d.period)})
	}
	d.overlay()
}

// Still draws the current mesh in an explicit pose; p.Scale is used as given.
func (d *Demo) Still(p render.Params) {
	d.r.Render(d.mesh, p)
	d.overlay()
}

func (d *Demo) overlay() {
	if !d.hud {
		return
	}
	fb := d.r.FrameBuffer()
	tinyfont.WriteLine(fb, d.font, 6, 6+d.fontHeight, fmt.Sprintf("%d/%d %s", d.index+1, d.cat.Len(), d.mesh.Name), hudColor)
	tinyfont.WriteLine(fb, d.font, 6, 6+2*d.fontHeight, fmt.Sprintf("tris %d  zoom %.2f", len(d.mesh.Tris), d.zoom), hudColor)
}

func (d *Demo) logf(format string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.WriteLineString(fmt.Sprintf(format, args...))
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
