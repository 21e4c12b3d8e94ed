//go:build !(tinygo && bootdebug)

package app

import "meenle/hal"

func bootStep(hal.HAL, string) {}
