//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

type hostTime struct {
	ch  chan uint64
	seq uint64

	// fixed, when set, replaces the wall clock: every step advances by fixed.
	fixed time.Duration
	last  time.Time
	acc   time.Duration
}

func newHostTime(fixed time.Duration) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), fixed: fixed}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step(n uint64) {
	if t.fixed > 0 {
		t.acc += t.fixed * time.Duration(n)
	} else {
		now := time.Now()
		if t.last.IsZero() {
			t.last = now
			t.acc = 0
			t.stepN(n)
			return
		}
		t.acc += now.Sub(t.last)
		t.last = now
	}

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
