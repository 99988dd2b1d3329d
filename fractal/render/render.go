// Package render drives one escape-time render pass over a sample grid.
//
// A pass scans the viewport, iterates each seed, translates the count through
// the palette and hands the colour code to a Writer. Each cell is written
// exactly once and nothing is retained between passes.
package render

import (
	"fmt"

	"longbrot/fractal/escape"
	"longbrot/fractal/palette"
	"longbrot/fractal/viewport"
)

// Writer receives one colour code per grid cell.
type Writer interface {
	Write(x, y int, c palette.ColorIndex)
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(x, y int, c palette.ColorIndex)

func (f WriterFunc) Write(x, y int, c palette.ColorIndex) { f(x, y, c) }

// Clearer is implemented by writers that can fill their whole area at once.
type Clearer interface {
	Clear(c palette.ColorIndex)
}

// ModeController switches the output device between display modes.
// Selecting the current mode again has no effect.
type ModeController interface {
	SetMode(mode int)
}

// Pass is the full input of a render.
type Pass struct {
	Viewport viewport.Viewport
	Engine   escape.Engine
	Palette  palette.Palette
	Order    viewport.Order
}

// Validate checks every part of the pass, including that the palette has an
// entry for each possible iteration count.
func (p Pass) Validate() error {
	if err := p.Viewport.Validate(); err != nil {
		return err
	}
	if err := p.Engine.Validate(); err != nil {
		return err
	}
	if !p.Palette.Covers(p.Engine.MaxIterations) {
		return fmt.Errorf("%w: have %d, need %d", palette.ErrTooShort, p.Palette.Len(), p.Engine.MaxIterations+1)
	}
	return nil
}

// Stats summarizes a finished pass.
type Stats struct {
	Samples int
	// Inside counts samples that reached the iteration cap.
	Inside int
	// Histogram[k] counts samples that stopped after k iterations.
	Histogram []int
}

// Render runs the pass and writes every cell to w. The pass must be valid.
func (p Pass) Render(w Writer) Stats {
	st := Stats{Histogram: make([]int, p.Engine.MaxIterations+1)}

	sc := p.Viewport.Scan(p.Order)
	for {
		s, ok := sc.Next()
		if !ok {
			break
		}
		n := p.Engine.Iterate(escape.Complex{Re: s.Re, Im: s.Im})
		w.Write(s.X, s.Y, p.Palette.Lookup(n))

		st.Samples++
		st.Histogram[n]++
		if n == p.Engine.MaxIterations {
			st.Inside++
		}
	}
	return st
}

// Grid renders the pass into memory.
func (p Pass) Grid() (*Grid, Stats) {
	g := NewGrid(p.Viewport.Width, p.Viewport.Height)
	st := p.Render(g)
	return g, st
}

// RunOptions controls the display handling around a pass.
type RunOptions struct {
	// Mode is selected before rendering.
	Mode int
	// RestoreMode is selected afterwards when Restore is set.
	RestoreMode int
	Restore     bool
	// Clear fills the writer with the interior colour first, if it can.
	Clear bool
}

// DefaultRunOptions matches the Gigatron demo: mode 3 for the render, screen
// cleared to the interior colour, mode 0 restored at the end.
func DefaultRunOptions() RunOptions {
	return RunOptions{Mode: 3, RestoreMode: 0, Restore: true, Clear: true}
}

// Run validates p, sets the display mode, renders into w and restores the mode.
// mc may be nil when the output has no modes.
func Run(mc ModeController, w Writer, p Pass, opts RunOptions) (Stats, error) {
	if err := p.Validate(); err != nil {
		return Stats{}, err
	}
	// Validate guarantees the table covers the engine cap.
	pal, err := p.Palette.For(p.Engine.MaxIterations)
	if err != nil {
		return Stats{}, err
	}
	if mc != nil {
		mc.SetMode(opts.Mode)
	}
	if c, ok := w.(Clearer); ok && opts.Clear {
		c.Clear(pal.Interior())
	}
	st := p.Render(w)
	if mc != nil && opts.Restore {
		mc.SetMode(opts.RestoreMode)
	}
	return st, nil
}
