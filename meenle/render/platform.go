package render

import (
	"fmt"
	"math"
	"runtime"
)

// Platform is the set of host primitives the pipeline may call.
//
// Desktop and embedded targets supply different implementations; hal.Services
// satisfies it.
type Platform interface {
	// Allocate reserves bytes of mesh storage. An error means the heap is exhausted.
	Allocate(bytes int) error
	Free(bytes int)
	// Abort reports an unrecoverable failure. It is not expected to return.
	Abort(file string, line int, msg string)
	SinCos(rad float64) (sin, cos float64)
}

type hostless struct{}

func (hostless) Allocate(int) error { return nil }
func (hostless) Free(int)           {}

func (hostless) Abort(file string, line int, msg string) {
	panic(fmt.Sprintf("[%s:%d]: %s", file, line, msg))
}

func (hostless) SinCos(rad float64) (float64, float64) { return math.Sincos(rad) }

// abort reports msg through the platform with the caller's source location.
func (r *Renderer) abort(msg string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "render", 0
	}
	r.platform.Abort(file, line, msg)
}
