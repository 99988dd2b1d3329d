package hal

import (
	"fmt"
	"sync"
)

// modeState tracks the selected video mode and logs changes.
type modeState struct {
	mu     sync.Mutex
	mode   int
	set    bool
	logger Logger
}

func (m *modeState) SetMode(mode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.set && m.mode == mode {
		return
	}
	m.mode = mode
	m.set = true
	if m.logger != nil {
		m.logger.WriteLineString(fmt.Sprintf("display: mode %d", mode))
	}
}

func (m *modeState) Mode() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// fbDisplay pairs a framebuffer with a mode register.
type fbDisplay struct {
	fb Framebuffer
	*modeState
}

func newDisplay(fb Framebuffer, logger Logger) fbDisplay {
	return fbDisplay{fb: fb, modeState: &modeState{logger: logger}}
}

func (d fbDisplay) Framebuffer() Framebuffer { return d.fb }
