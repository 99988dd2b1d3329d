// Package target writes palette colour codes into a HAL framebuffer.
package target

import (
	"sync"

	"longbrot/fractal/palette"
	"longbrot/hal"
)

// Framebuffer renders grid cells into an RGB565 framebuffer.
//
// Cell (x, y) covers a Scale x Scale block whose top-left pixel is
// (OriginX + x*Scale, OriginY + y*Scale). Pixels outside the framebuffer are
// clipped. The target does not call Present.
type Framebuffer struct {
	FB      hal.Framebuffer
	OriginX int
	OriginY int
	Scale   int
	// W and H bound the grid area used by Clear.
	W, H int

	lut [64]uint16
}

// New returns a target for a w x h grid drawn at the given scale.
func New(fb hal.Framebuffer, w, h, scale int) *Framebuffer {
	if scale < 1 {
		scale = 1
	}
	t := &Framebuffer{FB: fb, Scale: scale, W: w, H: h}
	for i := range t.lut {
		r, g, b := palette.RGB(palette.ColorIndex(i))
		t.lut[i] = hal.RGB565(r, g, b)
	}
	return t
}

func (t *Framebuffer) usable() bool {
	return t != nil && t.FB != nil && t.FB.Format() == hal.PixelFormatRGB565 && t.FB.Buffer() != nil
}

// Write fills the block for cell (x, y).
func (t *Framebuffer) Write(x, y int, c palette.ColorIndex) {
	if !t.usable() {
		return
	}
	t.fill(t.OriginX+x*t.Scale, t.OriginY+y*t.Scale, t.Scale, t.Scale, t.lut[c&0x3F])
}

// Clear fills the whole grid area with c.
func (t *Framebuffer) Clear(c palette.ColorIndex) {
	if !t.usable() {
		return
	}
	t.fill(t.OriginX, t.OriginY, t.W*t.Scale, t.H*t.Scale, t.lut[c&0x3F])
}

func (t *Framebuffer) fill(x0, y0, w, h int, pixel uint16) {
	if l, ok := t.FB.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}
	buf := t.FB.Buffer()
	stride := t.FB.StrideBytes()
	fw := t.FB.Width()
	fh := t.FB.Height()

	x1, y1 := x0+w, y0+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > fw {
		x1 = fw
	}
	if y1 > fh {
		y1 = fh
	}

	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}
