//go:build tinygo && !baremetal

package hal

import "runtime"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	disp   fbDisplay
	kbd    *nullKeyboard
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. The framebuffer lives in RAM and is never shown.
func New() HAL {
	l := &tinyGoHostLogger{}
	l.WriteLineString("hal: tinygo/" + runtime.GOOS)
	return &tinyGoHostHAL{
		logger: l,
		disp:   newDisplay(NewFramebuffer(160, 128), l),
		kbd:    &nullKeyboard{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.disp }
func (h *tinyGoHostHAL) Input() Input     { return kbdInput{kbd: h.kbd} }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
