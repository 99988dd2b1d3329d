//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Host    HostConfig
	// PNGPath, if set, receives the framebuffer when the runner stops.
	PNGPath string
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(cfg.Host)
	step := newApp(h)

	err := runTicks(ctx, step, cfg)
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	if cfg.PNGPath != "" && (err == nil || errors.Is(err, context.Canceled)) {
		if perr := SavePNG(cfg.PNGPath, h.fb); perr != nil {
			return perr
		}
		h.logger.WriteLineString(fmt.Sprintf("headless: wrote %s", cfg.PNGPath))
	}
	return err
}

func runTicks(ctx context.Context, step func() error, cfg HeadlessConfig) error {
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
