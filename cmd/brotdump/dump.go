package main

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"longbrot/fractal/palette"
	"longbrot/fractal/render"
)

type format uint8

const (
	// formatIter prints one base-36 digit per cell: the iteration count.
	formatIter format = iota
	// formatColor prints each cell's 6-bit colour code as two hex digits.
	formatColor
	// formatShade maps iteration counts onto an ASCII ramp.
	formatShade
)

const (
	digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	shades = " .:-=+*#%@"
)

func parseFormat(s string) (format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iter", "iterations", "":
		return formatIter, nil
	case "color", "colour":
		return formatColor, nil
	case "shade", "ascii":
		return formatShade, nil
	}
	return 0, fmt.Errorf("unknown format: %s", s)
}

// paletteFor returns the table the pass renders through. Iteration and shade
// output use an identity table so the grid holds raw counts.
func paletteFor(f format, maxIterations int) (palette.Palette, error) {
	if f == formatColor {
		p := palette.Default()
		if !p.Covers(maxIterations) {
			return palette.Palette{}, fmt.Errorf("iter %d: %w", maxIterations, palette.ErrTooShort)
		}
		return p, nil
	}
	limit := len(digits) - 1
	if f == formatShade {
		limit = 255
	}
	if maxIterations > limit {
		return palette.Palette{}, fmt.Errorf("iter %d: format allows at most %d", maxIterations, limit)
	}
	ids := make([]palette.ColorIndex, maxIterations+1)
	for i := range ids {
		ids[i] = palette.ColorIndex(i)
	}
	return palette.New(maxIterations, ids...)
}

// writeGrid prints g row by row, top row first.
func writeGrid(w io.Writer, g *render.Grid, f format, maxIterations int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			switch f {
			case formatIter:
				_ = bw.WriteByte(digits[c])
			case formatColor:
				if x > 0 {
					_ = bw.WriteByte(' ')
				}
				fmt.Fprintf(bw, "%02x", uint8(c))
			case formatShade:
				_ = bw.WriteByte(shade(int(c), maxIterations))
			}
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

func shade(k, maxIterations int) byte {
	if maxIterations <= 0 {
		return shades[len(shades)-1]
	}
	return shades[k*(len(shades)-1)/maxIterations]
}

// checksum is FNV-1a over the cells in row-major order.
func checksum(g *render.Grid) uint32 {
	h := fnv.New32a()
	for _, c := range g.Cells {
		_, _ = h.Write([]byte{byte(c)})
	}
	return h.Sum32()
}

func writeStats(w io.Writer, g *render.Grid, st render.Stats) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "samples %d\ninside %d\n", st.Samples, st.Inside)
	for k, n := range st.Histogram {
		fmt.Fprintf(bw, "k=%d %d\n", k, n)
	}
	fmt.Fprintf(bw, "fnv32a %#08x\n", checksum(g))
	return bw.Flush()
}
