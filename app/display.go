package app

import (
	"image/color"
	"sync"

	"longbrot/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// fbDisplay exposes a framebuffer as a drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fillRect(int(x), int(y), 1, 1, c)
}

// Display is a no-op; callers present the framebuffer once they are done.
func (d fbDisplay) Display() error { return nil }

func (d fbDisplay) fillRect(x0, y0, w, h int, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	x1, y1 := x0+w, y0+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > d.fb.Width() {
		x1 = d.fb.Width()
	}
	if y1 > d.fb.Height() {
		y1 = d.fb.Height()
	}

	if l, ok := d.fb.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	stride := d.fb.StrideBytes()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			off := y*stride + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
}

const (
	// captionHeight is the strip reserved below the grid: TomThumb glyphs
	// are 5 pixels tall with a 6 pixel advance, plus a one pixel margin.
	captionHeight = 8
	captionBase   = 7
)

var (
	captionFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	captionBG = color.RGBA{A: 0xFF}
	panicFG   = color.RGBA{A: 0xFF}
)

func textFont() tinyfont.Fonter { return &tinyfont.TomThumb }

// drawCaption writes one line of text in the strip starting at row y. It does
// nothing when the strip does not fit.
func drawCaption(fb hal.Framebuffer, y int, text string) bool {
	if fb == nil || y < 0 || y+captionHeight > fb.Height() {
		return false
	}
	d := fbDisplay{fb: fb}
	d.fillRect(0, y, fb.Width(), captionHeight, captionBG)
	font := textFont()
	text = fitText(font, text, fb.Width()-2)
	tinyfont.WriteLine(d, font, 1, int16(y+captionBase), text, captionFG)
	return true
}

// fitText trims s from the end until it is at most maxW pixels wide.
func fitText(f tinyfont.Fonter, s string, maxW int) string {
	r := []rune(s)
	for len(r) > 0 {
		_, w := tinyfont.LineWidth(f, string(r))
		if int(w) <= maxW {
			break
		}
		r = r[:len(r)-1]
	}
	return string(r)
}
