//go:build tinygo && baremetal

package hal

import (
	"machine"

	"meenle/meenle/xfb"
)

// DefaultHeapBytes is the mesh budget on boards without an OS allocator to ask.
const DefaultHeapBytes = 4 << 20

type tinyGoHAL struct {
	logger *uartLogger
	fb     *ramFramebuffer
	kbd    Keyboard
	t      *tinyGoTime
	svc    *services
}

// New returns a baremetal HAL: serial logging, a RAM YUYV frame buffer laid out for a
// 640×480 video scanout, and a fixed mesh heap.
//
// UART: the board's default serial port, 115200 8N1.
func New() HAL {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	logger := &uartLogger{uart: uart}
	return &tinyGoHAL{
		logger: logger,
		fb:     newRAMFramebuffer(xfb.DisplayWidth, xfb.DisplayHeight),
		kbd:    &stubKeyboard{},
		t:      newTinyGoTime(),
		svc:    newServices(logger, NewHeap(DefaultHeapBytes), func() { select {} }),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Display() Display   { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input       { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time         { return h.t }
func (h *tinyGoHAL) Services() Services { return h.svc }
