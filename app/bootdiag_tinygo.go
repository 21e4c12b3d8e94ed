//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"meenle/hal"
)

var (
	bootDiagMu    sync.Mutex
	bootDiagStep  string
	bootDiagStart sync.Once
)

// bootStep records the last completed boot stage. A heartbeat repeats it every 250ms so
// a hang during bring-up can be located from the serial log alone.
func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()

	bootDiagStart.Do(func() {
		l := h.Logger()
		go func() {
			for {
				bootDiagMu.Lock()
				step := bootDiagStep
				bootDiagMu.Unlock()
				line := "bootdiag: " + step

				if l != nil {
					l.WriteLineString(line)
				}

				// Also stream to USB CDC when it becomes available.
				if usb := machine.USBCDC; usb != nil {
					_, _ = usb.Write([]byte(line + "\r\n"))
				}

				time.Sleep(250 * time.Millisecond)
			}
		}()
	})
}
