package app

import (
	"errors"
	"fmt"
	"time"

	"longbrot/fractal/escape"
	"longbrot/fractal/fixed"
	"longbrot/fractal/palette"
	"longbrot/fractal/render"
	"longbrot/fractal/target"
	"longbrot/fractal/viewport"
	"longbrot/hal"
	"longbrot/internal/buildinfo"
)

// Config selects what to render and how it is shown.
type Config struct {
	Preset        string
	Width, Height int
	MaxIterations int
	Threshold     fixed.Fixed
	Order         viewport.Order
	// Palette defaults to the Gigatron gradient when empty.
	Palette palette.Palette

	// Mode is the video mode used while rendering; RestoreMode is selected
	// afterwards.
	Mode        int
	RestoreMode int

	// Scale is the pixel block size per cell; 0 picks the largest that fits.
	Scale   int
	Caption bool
}

// DefaultConfig is the Gigatron demo: classic view, 160x120, 15 iterations.
func DefaultConfig() Config {
	return Config{
		Preset:        "classic",
		Width:         160,
		Height:        120,
		MaxIterations: escape.DefaultMaxIterations,
		Threshold:     escape.DefaultThreshold,
		Order:         viewport.ColumnMajor,
		Mode:          3,
		RestoreMode:   0,
		Caption:       true,
	}
}

// Pass builds and validates the render pass described by cfg.
func (cfg Config) Pass() (render.Pass, error) {
	v, err := viewport.Lookup(cfg.Preset, cfg.Width, cfg.Height)
	if err != nil {
		return render.Pass{}, err
	}
	e, err := escape.New(cfg.MaxIterations, cfg.Threshold)
	if err != nil {
		return render.Pass{}, err
	}
	p := cfg.Palette
	if p.Len() == 0 {
		p = palette.Default()
	}
	pass := render.Pass{Viewport: v, Engine: e, Palette: p, Order: cfg.Order}
	if err := pass.Validate(); err != nil {
		return render.Pass{}, err
	}
	return pass, nil
}

// FrameSize returns the framebuffer size that holds the grid at cfg.Scale
// (1 when automatic) plus the caption strip.
func (cfg Config) FrameSize() (w, h int) {
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	w, h = cfg.Width*scale, cfg.Height*scale
	if cfg.Caption {
		h += captionHeight
	}
	return w, h
}

type system struct {
	h    hal.HAL
	cfg  Config
	pass render.Pass
	log  hal.Logger
	disp hal.Display

	events <-chan hal.KeyEvent

	rendered bool
	last     render.Stats
}

// New initializes the renderer with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the step function for the host runners. The first
// step renders one pass; later steps only watch the keyboard: Enter renders
// again, Escape returns hal.ErrQuit. A bad config surfaces as the first
// step's error.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guard(h, s.step)
}

// pollInterval paces keyboard polling between steps on devices.
const pollInterval = 20 * time.Millisecond

// Run renders once and then serves keys forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig steps until Escape or an error, then parks. It never returns:
// a device has nowhere to exit to.
func RunWithConfig(h hal.HAL, cfg Config) {
	bootDiagStart(h)
	bootScreen(h, "rendering "+cfg.Preset)

	step := NewWithConfig(h, cfg)
	for {
		err := step()
		if errors.Is(err, hal.ErrQuit) {
			break
		}
		if err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString(err.Error())
			}
			break
		}
		time.Sleep(pollInterval)
	}
	bootDiagSetStep("stopped")
	select {}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: %w: no display", hal.ErrNotImplemented)
	}
	pass, err := cfg.Pass()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s := &system{
		h:    h,
		cfg:  cfg,
		pass: pass,
		log:  h.Logger(),
		disp: h.Display(),
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
	}
	return s, nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *system) step() error {
	if !s.rendered {
		s.rendered = true
		return s.render()
	}
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape || ev.Rune == 'q':
				return hal.ErrQuit
			case ev.Code == hal.KeyEnter || ev.Rune == 'r':
				if err := s.render(); err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}

// layout returns the cell scale and the grid origin inside the framebuffer.
func (s *system) layout(fb hal.Framebuffer) (scale, ox, oy int) {
	w, h := s.pass.Viewport.Width, s.pass.Viewport.Height
	scale = s.cfg.Scale
	if scale <= 0 {
		avail := fb.Height()
		if s.cfg.Caption {
			avail -= captionHeight
		}
		scale = 1
		for (scale+1)*w <= fb.Width() && (scale+1)*h <= avail {
			scale++
		}
	}
	ox = (fb.Width() - w*scale) / 2
	if ox < 0 {
		ox = 0
	}
	return scale, ox, 0
}

func (s *system) render() error {
	fb := s.disp.Framebuffer()
	v := s.pass.Viewport
	scale, ox, oy := s.layout(fb)

	dRe, dIm := v.Step()
	s.logf("app: longbrot %s", buildinfo.Short())
	s.logf("app: view %s [%s, %s] x [%s, %s] %dx%d step (%d, %d)",
		s.cfg.Preset, v.RealMin, v.RealMax, v.ImagMin, v.ImagMax, v.Width, v.Height, dRe, dIm)
	s.logf("app: cap %d threshold %s order %s scale %d",
		s.pass.Engine.MaxIterations, s.pass.Engine.Threshold, s.pass.Order, scale)

	fb.ClearRGB(0, 0, 0)
	tgt := target.New(fb, v.Width, v.Height, scale)
	tgt.OriginX, tgt.OriginY = ox, oy

	opts := render.RunOptions{
		Mode:        s.cfg.Mode,
		RestoreMode: s.cfg.RestoreMode,
		Restore:     true,
		Clear:       true,
	}
	bootDiagSetStep("render " + s.cfg.Preset)
	start := time.Now()
	st, err := render.Run(s.disp, tgt, s.pass, opts)
	if err != nil {
		return fmt.Errorf("app: render: %w", err)
	}
	elapsed := time.Since(start)
	s.last = st
	bootDiagPass(st, elapsed)
	s.logf("app: %d samples, %d inside, %s", st.Samples, st.Inside, elapsed.Round(time.Millisecond))

	if s.cfg.Caption {
		drawCaption(fb, oy+v.Height*scale, s.captionText(st))
	}
	if err := fb.Present(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (s *system) captionText(st render.Stats) string {
	pct := 0
	if st.Samples > 0 {
		pct = st.Inside * 100 / st.Samples
	}
	return fmt.Sprintf("%s  it%d  in %d%%  %s", s.cfg.Preset, s.pass.Engine.MaxIterations, pct, buildinfo.Short())
}
