//go:build tinygo && bootdebug

package app

import (
	"longbrot/hal"
	"longbrot/internal/buildinfo"

	"tinygo.org/x/tinyfont"
)

// bootScreen shows the stage on the panel before the first pass paints it.
func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil || h.Display() == nil {
		return
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)
	d := fbDisplay{fb: fb}
	font := textFont()
	tinyfont.WriteLine(d, font, 0, captionBase, "longbrot "+buildinfo.Short(), captionFG)
	tinyfont.WriteLine(d, font, 0, captionBase+captionHeight, msg, captionFG)
	_ = fb.Present()
}
