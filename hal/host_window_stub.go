//go:build !tinygo && !cgo

package hal

import "errors"

// Without cgo there is no window backend: RunWindow fails and the keyboard stays silent.
// RunHeadless works unchanged.

func RunWindow(_ Options, _ func(h HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {}
