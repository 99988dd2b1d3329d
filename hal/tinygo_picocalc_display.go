//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// ili9488 drives the PicoCalc panel in 16bpp over SPI1.
type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	tx []byte
}

// Panel init sequence: command byte followed by its parameters.
var ili9488Init = [][]byte{
	{0xC0, 0x17, 0x15},             // PWCTRL1
	{0xC1, 0x41},                   // PWCTRL2
	{0xC5, 0x00, 0x12, 0x80, 0x40}, // VMCTRL
	{0x3A, 0x55},                   // COLMOD: 16bpp
	{0xB1, 0xA0, 0x11},             // FRMCTRL1
	{0xB6, 0x02, 0x22, 0x27},       // DISCTRL, 320 lines
	{0x21},                         // INVON
	{0x36, 0x40 | 0x04 | 0x08},     // MADCTL: MX|MH|BGR for the PicoCalc wiring
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	d := &ili9488{
		spi: *machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		tx:  make([]byte, 4096),
	}
	for _, p := range []machine.Pin{d.cs, d.dc, d.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, c := range ili9488Init {
		d.cmd(c[0], c[1:]...)
	}
	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
	return d, nil
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) window(w, h int) {
	x1, y1 := uint16(w-1), uint16(h-1)
	d.cmd(0x2A, 0, 0, byte(x1>>8), byte(x1)) // CASET
	d.cmd(0x2B, 0, 0, byte(y1>>8), byte(y1)) // PASET
	d.cmd(0x2C)                              // RAMWR
}

// blitRGB565LittleEndian streams the whole frame. The panel wants big-endian
// pixels, so bytes are swapped chunk by chunk.
func (d *ili9488) blitRGB565LittleEndian(buf []byte, w, h int) error {
	n := w * h * 2
	if w <= 0 || h <= 0 || len(buf) < n {
		return errors.New("invalid framebuffer")
	}
	chunk := d.tx[:len(d.tx)&^1]
	if len(chunk) < 2 {
		return errors.New("tx buffer too small")
	}

	d.window(w, h)
	d.cs.Low()
	d.dc.High()
	for off := 0; off < n; {
		m := len(chunk)
		if rest := n - off; m > rest {
			m = rest
		}
		src := buf[off : off+m]
		for i := 0; i < m; i += 2 {
			chunk[i], chunk[i+1] = src[i+1], src[i]
		}
		d.spi.Tx(chunk[:m], nil)
		off += m
	}
	d.cs.High()
	return nil
}
