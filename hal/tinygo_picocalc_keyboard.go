//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyAlt  byte = 0xA1
	picoCalcKeyCtrl byte = 0xA5
	picoCalcKeyEsc  byte = 0xB1
)

const picoCalcKbdPoll = 10 * time.Millisecond

// i2cKeyboard polls the PicoCalc keyboard MCU and forwards presses and
// releases on a buffered channel. Only Escape, Enter and printable runes are
// reported; modifiers are swallowed.
type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte

	ch chan KeyEvent
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (stock PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write, ch: make(chan KeyEvent, 16)}

			// The keyboard MCU can be slow to answer after power-up.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					go k.poll()
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *i2cKeyboard) poll() {
	for {
		for {
			ev, ok := k.readEvent()
			if !ok {
				break
			}
			select {
			case k.ch <- ev:
			default:
				// Drop when the app is busy rendering.
			}
		}
		time.Sleep(picoCalcKbdPoll)
	}
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	switch k.read[0] {
	case 0x01: // key down
		return translatePicoCalcKey(k.read[1], true)
	case 0x03: // key up
		return translatePicoCalcKey(k.read[1], false)
	default:
		return KeyEvent{}, false
	}
}

func translatePicoCalcKey(code byte, press bool) (KeyEvent, bool) {
	switch code {
	case 0, picoCalcKeyAlt, picoCalcKeyCtrl:
		return KeyEvent{}, false
	case picoCalcKeyEsc:
		return KeyEvent{Press: press, Code: KeyEscape}, true
	case '\r', '\n':
		return KeyEvent{Press: press, Code: KeyEnter}, true
	}
	if code < 0x20 || code >= 0x7F {
		return KeyEvent{}, false
	}
	return KeyEvent{Press: press, Rune: rune(code)}, true
}
