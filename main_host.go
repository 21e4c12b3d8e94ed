//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"meenle/app"
	"meenle/hal"
	"meenle/internal/buildinfo"
	"meenle/meenle/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	var configPath, mesh, pairing string
	var period, zoom float64
	var console, clip, noHUD, still, version bool
	var heapBytes int
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&configPath, "config", "meenle.toml", "Settings file (missing = defaults).")
	flag.StringVar(&mesh, "mesh", "", "Mesh to show first.")
	flag.Float64Var(&period, "period", -1, "Seconds per revolution (0 = no spin).")
	flag.Float64Var(&zoom, "zoom", 0, "Initial zoom.")
	flag.BoolVar(&console, "console", false, "Present through a 640x480 YUYV surface.")
	flag.StringVar(&pairing, "pairing", "", "YUYV pixel pairing: horizontal|vertical.")
	flag.BoolVar(&clip, "clip", false, "Drop off-frame pixels instead of plotting them at the origin.")
	flag.BoolVar(&noHUD, "no-hud", false, "Hide the mesh name overlay.")
	flag.BoolVar(&still, "still", false, "Use the fixed console pose.")
	flag.IntVar(&heapBytes, "heap", -1, "Mesh heap budget in bytes (0 = unlimited).")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Full())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	// Flags that were set override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mesh":
			cfg.Mesh = mesh
		case "period":
			cfg.Period = period
		case "zoom":
			cfg.Zoom = zoom
		case "console":
			cfg.Console.Enabled = console
		case "pairing":
			cfg.Console.Pairing = pairing
		case "clip":
			cfg.Clip = clip
		case "no-hud":
			cfg.HUD = !noHUD
		case "still":
			cfg.Still = still
		case "heap":
			cfg.HeapBytes = heapBytes
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	opts := hal.Options{Console: cfg.Console.Enabled, HeapBytes: cfg.HeapBytes}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, opts, hcfg, newApp); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, app.ErrQuit) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(opts, newApp); err != nil && !errors.Is(err, app.ErrQuit) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
