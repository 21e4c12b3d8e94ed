// Command mnsnap renders one frame headlessly and writes it as a PNG and, optionally,
// as a raw big-endian YUYV console frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"meenle/internal/buildinfo"
	"meenle/meenle/demo"
	"meenle/meenle/meshes"
	"meenle/meenle/render"
	"meenle/meenle/xfb"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

type options struct {
	mesh    string
	elapsed float64
	period  float64
	zoom    float64
	out     string
	scale   int
	xfbOut  string
	pairing string
	clip    bool
	hud     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	cat := meshes.Default()

	var o options
	fs := flag.NewFlagSet("mnsnap", flag.ContinueOnError)
	fs.StringVar(&o.mesh, "mesh", "icosphere", "Mesh to render: "+strings.Join(cat.Names(), "|")+".")
	fs.Float64Var(&o.elapsed, "t", 0, "Elapsed seconds into the spin.")
	fs.Float64Var(&o.period, "period", 5, "Seconds per revolution (0 = no spin).")
	fs.Float64Var(&o.zoom, "zoom", 1, "Zoom factor.")
	fs.StringVar(&o.out, "out", "frame.png", "PNG output path (empty = skip).")
	fs.IntVar(&o.scale, "scale", 1, "Nearest-neighbour upscale factor for the PNG.")
	fs.StringVar(&o.xfbOut, "xfb", "", "Raw YUYV 640x480 output path (empty = skip).")
	fs.StringVar(&o.pairing, "pairing", "horizontal", "YUYV pixel pairing: horizontal|vertical.")
	fs.BoolVar(&o.clip, "clip", false, "Drop off-frame pixels instead of plotting them at the origin.")
	fs.BoolVar(&o.hud, "hud", false, "Draw the mesh name and triangle count.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idx, ok := cat.Index(o.mesh)
	if !ok {
		return fmt.Errorf("unknown mesh %q (have %s)", o.mesh, strings.Join(cat.Names(), ", "))
	}
	if o.scale < 1 || o.scale > 16 {
		return fmt.Errorf("scale out of range: %d", o.scale)
	}
	pairing, err := xfb.ParsePairing(o.pairing)
	if err != nil {
		return err
	}

	fb := render.NewFrameBuffer()
	fb.GenerateBackground()
	r := render.NewRenderer(fb, nil)
	if o.clip {
		r.OutOfBounds = render.Clip
	}
	d, err := demo.New(r, cat, nil, demo.Options{Mesh: idx, Period: o.period, Zoom: o.zoom, HUD: o.hud})
	if err != nil {
		return err
	}
	d.Frame(o.elapsed)

	if o.out != "" {
		img := fb.Image()
		if o.scale > 1 {
			img = transform.Resize(img, render.Width*o.scale, render.Height*o.scale, transform.NearestNeighbor)
		}
		if err := imgio.Save(o.out, img, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("write %s: %w", o.out, err)
		}
		fmt.Fprintf(stdout, "mnsnap %s: %s t=%.3fs -> %s\n", buildinfo.Short(), d.Mesh().Name, o.elapsed, o.out)
	}

	if o.xfbOut != "" {
		buf := xfb.NewBuffer(xfb.DisplayWidth, xfb.DisplayHeight)
		opt := xfb.DefaultOptions()
		opt.Pairing = pairing
		xfb.Convert(buf, fb, xfb.BT601{}, opt)
		if err := writeXFB(o.xfbOut, buf); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "mnsnap %s: %s pairing, %d bytes -> %s\n", buildinfo.Short(), pairing, buf.SizeBytes(), o.xfbOut)
	}
	return nil
}

func writeXFB(path string, buf *xfb.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
