//go:build tinygo && baremetal && picocalc

package hal

type picoCalcHAL struct {
	logger *uartLogger
	disp   fbDisplay
	kbd    Keyboard
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. Display: 320x320 ILI9488 on
// SPI1. Keyboard: I2C address 0x1F on GP6/GP7.
func New() HAL {
	l := newUARTLogger()

	fb, err := newPicoCalcFramebuffer()
	if err != nil {
		l.WriteLineString("hal: display: " + err.Error())
	}

	var kbd Keyboard = &nullKeyboard{}
	if k, err := initI2CKeyboard(); err != nil {
		l.WriteLineString("hal: " + err.Error())
	} else {
		kbd = k
	}
	return &picoCalcHAL{
		logger: l,
		disp:   newDisplay(fb, l),
		kbd:    kbd,
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return h.disp }
func (h *picoCalcHAL) Input() Input     { return kbdInput{kbd: h.kbd} }

const picoCalcSize = 320

// picoCalcFramebuffer keeps the frame in RAM and blits it on Present.
type picoCalcFramebuffer struct {
	*MemFramebuffer
	lcd *ili9488
}

func newPicoCalcFramebuffer() (*picoCalcFramebuffer, error) {
	fb := &picoCalcFramebuffer{MemFramebuffer: NewFramebuffer(picoCalcSize, picoCalcSize)}
	lcd, err := initILI9488()
	if err != nil {
		return fb, err
	}
	fb.lcd = lcd
	return fb, nil
}

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blitRGB565LittleEndian(f.Buffer(), f.Width(), f.Height())
}
