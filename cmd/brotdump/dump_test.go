package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"longbrot/fractal/escape"
	"longbrot/fractal/palette"
	"longbrot/fractal/render"
	"longbrot/fractal/viewport"
)

func dumpClassic(t *testing.T, f format, w, h int) string {
	t.Helper()
	v, err := viewport.Lookup("classic", w, h)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	pal, err := paletteFor(f, escape.DefaultMaxIterations)
	if err != nil {
		t.Fatalf("paletteFor: %v", err)
	}
	p := render.Pass{Viewport: v, Engine: escape.Default(), Palette: pal}
	g, _ := p.Grid()
	var buf bytes.Buffer
	if err := writeGrid(&buf, g, f, escape.DefaultMaxIterations); err != nil {
		t.Fatalf("writeGrid: %v", err)
	}
	return buf.String()
}

func TestIterDump(t *testing.T) {
	want := strings.Join([]string{
		"0001112222222111",
		"00112222334b5321",
		"01222223357fb432",
		"022223446ffffcf3",
		"02235666ffffffc4",
		"03346ffffffffff4",
		"4fffffffffffff74",
		"03346ffffffffff4",
		"02235666ffffffc4",
		"022223446ffffcf3",
		"01222223357fa432",
		"00112222334b5321",
	}, "\n") + "\n"
	if got := dumpClassic(t, formatIter, 16, 12); got != want {
		t.Fatalf("iter dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestShadeDump(t *testing.T) {
	want := strings.Join([]string{
		"   .... ",
		" ....=*.",
		" .--@@@#",
		":@@@@@@=",
		" .--@@@#",
		" ....=*.",
	}, "\n") + "\n"
	if got := dumpClassic(t, formatShade, 8, 6); got != want {
		t.Fatalf("shade dump:\n%q\nwant:\n%q", got, want)
	}
}

func TestColorDump(t *testing.T) {
	out := dumpClassic(t, formatColor, 16, 12)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("lines = %d, want 12", len(lines))
	}
	// Row 6 is "4fffffffffffff74" in iteration counts.
	fields := strings.Fields(lines[6])
	if len(fields) != 16 {
		t.Fatalf("fields = %d, want 16", len(fields))
	}
	if fields[0] != "0b" || fields[1] != "00" || fields[14] != "0d" {
		t.Fatalf("row 6 = %v", fields)
	}
}

func TestStatsChecksum(t *testing.T) {
	v, err := viewport.Lookup("classic", 160, 120)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p := render.Pass{Viewport: v, Engine: escape.Default(), Palette: palette.Default()}
	g, st := p.Grid()
	var buf bytes.Buffer
	if err := writeStats(&buf, g, st); err != nil {
		t.Fatalf("writeStats: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"samples 19200\n", "inside 5421\n", "k=0 962\n", "fnv32a 0x17d74b23\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]format{"iter": formatIter, "Colour": formatColor, "ascii": formatShade} {
		got, err := parseFormat(in)
		if err != nil || got != want {
			t.Fatalf("parseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseFormat("jpeg"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestPaletteLimits(t *testing.T) {
	if _, err := paletteFor(formatColor, 16); !errors.Is(err, palette.ErrTooShort) {
		t.Fatalf("color cap 16: err = %v, want ErrTooShort", err)
	}
	if _, err := paletteFor(formatIter, 36); err == nil {
		t.Fatalf("iter cap 36: expected error")
	}
	p, err := paletteFor(formatIter, 35)
	if err != nil {
		t.Fatalf("iter cap 35: %v", err)
	}
	if p.Lookup(35) != 35 {
		t.Fatalf("identity lookup = %d", p.Lookup(35))
	}
}
