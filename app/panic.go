package app

import (
	"fmt"
	"strings"

	"longbrot/hal"

	"tinygo.org/x/tinyfont"
)

// guard runs step and turns a panic into an error after painting it on the
// display, so a broken pass is visible on devices without a console.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			err = fmt.Errorf("app: panic: %v", v)
			if l := h.Logger(); l != nil {
				l.WriteLineString(err.Error())
			}
			showPanic(h, v)
		}()
		return step()
	}
}

func showPanic(h hal.HAL, v any) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	d := fbDisplay{fb: fb}
	font := textFont()
	_, adv := tinyfont.LineWidth(font, "0")
	cols := 1
	if adv > 0 {
		cols = fb.Width() / int(adv)
	}

	lines := []string{"longbrot panic:"}
	for _, s := range strings.Split(fmt.Sprint(v), "\n") {
		for len(s) > cols {
			lines = append(lines, s[:cols])
			s = s[cols:]
		}
		lines = append(lines, s)
	}

	y := captionBase
	for _, line := range lines {
		if y > fb.Height() {
			break
		}
		tinyfont.WriteLine(d, font, 0, int16(y), line, panicFG)
		y += captionHeight
	}
	_ = fb.Present()
}
