package app

import (
	"fmt"
	"sync"
	"time"

	"longbrot/fractal/render"
)

// passDiag is the last known render state. bootdebug builds report it from a
// background goroutine.
type passDiag struct {
	mu      sync.Mutex
	stage   string
	passes  int
	last    render.Stats
	elapsed time.Duration
}

var renderDiag passDiag

func (d *passDiag) setStage(msg string) {
	d.mu.Lock()
	d.stage = msg
	d.mu.Unlock()
}

func (d *passDiag) pass(st render.Stats, elapsed time.Duration) {
	d.mu.Lock()
	d.stage = "idle"
	d.passes++
	d.last = st
	d.elapsed = elapsed
	d.mu.Unlock()
}

func (d *passDiag) line() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	stage := d.stage
	if stage == "" {
		stage = "boot"
	}
	if d.passes == 0 {
		return "diag: " + stage
	}
	return fmt.Sprintf("diag: %s passes=%d inside=%d/%d last=%dms",
		stage, d.passes, d.last.Inside, d.last.Samples, d.elapsed.Milliseconds())
}

func bootDiagSetStep(msg string) { renderDiag.setStage(msg) }

func bootDiagPass(st render.Stats, elapsed time.Duration) { renderDiag.pass(st, elapsed) }
