//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	disp   fbDisplay
	kbd    *nullKeyboard
}

// New returns a Pico 2 (RP2350) HAL without a panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The framebuffer is kept in
// RAM so a render can still be checked over the log.
func New() HAL {
	l := newUARTLogger()
	return &tinyGoHAL{
		logger: l,
		disp:   newDisplay(NewFramebuffer(160, 128), l),
		kbd:    &nullKeyboard{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Input() Input     { return kbdInput{kbd: h.kbd} }
