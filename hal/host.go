//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig sizes the host framebuffer and window.
type HostConfig struct {
	Width  int
	Height int
	// WindowScale multiplies the window size; the framebuffer is unchanged.
	WindowScale int
}

// DefaultHostConfig fits a 160x120 grid plus an 8-pixel caption strip.
func DefaultHostConfig() HostConfig {
	return HostConfig{Width: 160, Height: 128, WindowScale: 4}
}

func (c HostConfig) normalized() HostConfig {
	d := DefaultHostConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.WindowScale <= 0 {
		c.WindowScale = d.WindowScale
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *MemFramebuffer
	disp   fbDisplay
	kbd    *hostKeyboard
}

// New returns a host HAL with the default configuration.
func New() HAL {
	return NewHost(DefaultHostConfig())
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	cfg = cfg.normalized()
	logger := &hostLogger{w: os.Stdout}
	fb := NewFramebuffer(cfg.Width, cfg.Height)
	return &hostHAL{
		cfg:    cfg,
		logger: logger,
		fb:     fb,
		disp:   newDisplay(fb, logger),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostKeyboard buffers key events. Only the window backend fills it; headless
// runs see an empty stream.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
