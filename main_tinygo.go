//go:build tinygo

package main

import (
	"meenle/app"
	"meenle/hal"
	"meenle/meenle/config"
)

func main() {
	// No filesystem on the board: the console loop's settings are fixed.
	cfg := config.Default()
	cfg.Mesh = "cube"
	cfg.Still = true
	cfg.HUD = false
	app.Run(hal.New(), cfg)
}
