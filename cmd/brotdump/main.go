package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"longbrot/fractal/escape"
	"longbrot/fractal/fixed"
	"longbrot/fractal/render"
	"longbrot/fractal/viewport"
)

func main() {
	var (
		preset    = flag.String("preset", "classic", "View preset: "+strings.Join(viewport.PresetNames(), ", ")+".")
		width     = flag.Int("width", 160, "Sample grid width.")
		height    = flag.Int("height", 120, "Sample grid height.")
		iter      = flag.Int("iter", escape.DefaultMaxIterations, "Iteration cap.")
		threshold = flag.String("threshold", escape.DefaultThreshold.String(), "Escape threshold for |z|^2.")
		order     = flag.String("order", "column", "Scan order: column or row.")
		formatStr = flag.String("format", "iter", "iter|color|shade.")
		outPath   = flag.String("out", "", "Output file (default stdout).")
		stats     = flag.Bool("stats", false, "Print the histogram and grid checksum to stderr.")
	)
	flag.Parse()

	f, err := parseFormat(*formatStr)
	if err != nil {
		fatalf("%v", err)
	}
	th, err := fixed.Parse(*threshold)
	if err != nil {
		fatalf("-threshold: %v", err)
	}
	o, err := viewport.ParseOrder(*order)
	if err != nil {
		fatalf("-order: %v", err)
	}
	v, err := viewport.Lookup(*preset, *width, *height)
	if err != nil {
		fatalf("%v", err)
	}
	eng, err := escape.New(*iter, th)
	if err != nil {
		fatalf("%v", err)
	}
	pal, err := paletteFor(f, *iter)
	if err != nil {
		fatalf("%v", err)
	}

	p := render.Pass{Viewport: v, Engine: eng, Palette: pal, Order: o}
	if err := p.Validate(); err != nil {
		fatalf("%v", err)
	}
	g, st := p.Grid()

	var w io.Writer = os.Stdout
	if *outPath != "" {
		out, err := os.Create(*outPath)
		if err != nil {
			fatalf("create %q: %v", *outPath, err)
		}
		defer out.Close()
		w = out
	}
	if err := writeGrid(w, g, f, *iter); err != nil {
		fatalf("write: %v", err)
	}
	if *stats {
		_ = writeStats(os.Stderr, g, st)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
