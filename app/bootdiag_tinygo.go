//go:build tinygo && bootdebug

package app

import (
	"machine"
	"time"

	"longbrot/hal"
)

// bootDiagStart reports the render state on the logger when it changes and
// on USB CDC every second, so a stalled pass is visible on a board without a
// panel.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		prev := ""
		for {
			line := renderDiag.line()
			if line != prev && l != nil {
				l.WriteLineString(line)
			}
			prev = line
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			time.Sleep(time.Second)
		}
	}()
}
