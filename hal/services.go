package hal

import (
	"fmt"
	"image/color"
	"math"

	"meenle/meenle/xfb"
)

// services is shared by every target; only halt differs.
type services struct {
	heap   *Heap
	logger Logger
	conv   xfb.Converter
	halt   func()
}

func newServices(logger Logger, heap *Heap, halt func()) *services {
	if heap == nil {
		heap = NewHeap(0)
	}
	return &services{heap: heap, logger: logger, conv: xfb.BT601{}, halt: halt}
}

func (s *services) Allocate(n int) error { return s.heap.Allocate(n) }
func (s *services) Free(n int)           { s.heap.Free(n) }

func (s *services) Abort(file string, line int, msg string) {
	if s.logger != nil {
		s.logger.WriteLineString(fmt.Sprintf("abort: [%s:%d]: %s", file, line, msg))
	}
	if s.halt != nil {
		s.halt()
	}
	select {}
}

func (s *services) SinCos(rad float64) (float64, float64) { return math.Sincos(rad) }

func (s *services) RGBAPairToYUYV(c1, c2 color.RGBA) uint32 {
	return s.conv.RGBAPairToYUYV(c1, c2)
}
