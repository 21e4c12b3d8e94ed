package hal

import (
	"errors"
	"fmt"
	"sync"
)

var ErrHeapExhausted = errors.New("heap exhausted")

// Heap is a byte budget for mesh storage. A limit <= 0 never runs out.
type Heap struct {
	mu    sync.Mutex
	limit int
	used  int
	peak  int
}

func NewHeap(limit int) *Heap { return &Heap{limit: limit} }

func (h *Heap) Allocate(n int) error {
	if n < 0 {
		return fmt.Errorf("allocate %d bytes: negative size", n)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.limit > 0 && h.used+n > h.limit {
		return fmt.Errorf("allocate %d bytes (%d/%d in use): %w", n, h.used, h.limit, ErrHeapExhausted)
	}
	h.used += n
	if h.used > h.peak {
		h.peak = h.used
	}
	return nil
}

func (h *Heap) Free(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.used -= n
	if h.used < 0 {
		h.used = 0
	}
}

func (h *Heap) InUse() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.used
}

func (h *Heap) Peak() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.peak
}

func (h *Heap) Limit() int { return h.limit }
