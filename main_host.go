//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"longbrot/app"
	"longbrot/fractal/fixed"
	"longbrot/fractal/viewport"
	"longbrot/hal"
	"longbrot/internal/buildinfo"
)

func main() {
	var hcfg hal.HeadlessConfig
	cfg := app.DefaultConfig()
	host := hal.DefaultHostConfig()

	var threshold, order string
	var showVersion bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever, 1 with -png).")
	flag.StringVar(&hcfg.PNGPath, "png", "", "Write the framebuffer to this PNG file when a headless run stops.")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "View preset: "+strings.Join(viewport.PresetNames(), ", ")+".")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Sample grid width.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Sample grid height.")
	flag.IntVar(&cfg.MaxIterations, "iter", cfg.MaxIterations, "Iteration cap (the palette needs cap+1 entries).")
	flag.StringVar(&threshold, "threshold", cfg.Threshold.String(), "Escape threshold for |z|^2 (decimal, or raw with an r suffix).")
	flag.StringVar(&order, "order", cfg.Order.String(), "Scan order: column or row.")
	flag.IntVar(&cfg.Mode, "mode", cfg.Mode, "Video mode while rendering.")
	flag.IntVar(&cfg.Scale, "scale", 0, "Pixels per cell (0 = fit the framebuffer).")
	flag.BoolVar(&cfg.Caption, "caption", cfg.Caption, "Draw a status line below the grid.")
	flag.IntVar(&host.WindowScale, "zoom", host.WindowScale, "Window size multiplier.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String())
		return
	}

	if err := configure(&cfg, &host, threshold, order); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	hcfg.Host = host

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if hcfg.Enabled {
		if hcfg.PNGPath != "" && hcfg.Ticks == 0 {
			hcfg.Ticks = 1
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configure parses the string flags and sizes the framebuffer to the grid.
func configure(cfg *app.Config, host *hal.HostConfig, threshold, order string) error {
	th, err := fixed.Parse(threshold)
	if err != nil {
		return fmt.Errorf("-threshold: %w", err)
	}
	cfg.Threshold = th

	o, err := viewport.ParseOrder(order)
	if err != nil {
		return fmt.Errorf("-order: %w", err)
	}
	cfg.Order = o

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", cfg.Width, cfg.Height, viewport.ErrInvalid)
	}
	host.Width, host.Height = cfg.FrameSize()
	return nil
}
