package viewport

import (
	"errors"
	"math"
	"testing"

	"longbrot/fractal/fixed"
)

func classic(t *testing.T) Viewport {
	t.Helper()
	v, err := Lookup("classic", 160, 120)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	return v
}

func TestClassicBounds(t *testing.T) {
	v := classic(t)
	if v.RealMin != -16384 || v.RealMax != 5734 || v.ImagMin != -9830 || v.ImagMax != 9830 {
		t.Fatalf("bounds = %+v", v)
	}
	dRe, dIm := v.Step()
	// 22118/160 = 138.2, 19660/120 = 163.8; both truncate.
	if dRe != 138 || dIm != 163 {
		t.Fatalf("Step = (%d, %d), want (138, 163)", dRe, dIm)
	}
}

func TestClassicFirstSample(t *testing.T) {
	v := classic(t)
	re, im := v.At(0, 0)
	if re != -16384 || im != 9830 {
		t.Fatalf("At(0,0) = (%d, %d), want (-16384, 9830)", re, im)
	}

	s, ok := v.Scan(ColumnMajor).Next()
	if !ok || s.X != 0 || s.Y != 0 || s.Re != -16384 || s.Im != 9830 {
		t.Fatalf("first sample = %+v, %v", s, ok)
	}
}

func TestAtMatchesAccumulation(t *testing.T) {
	// The reference loop accumulates the step; the closed form must agree.
	v := classic(t)
	dRe, dIm := v.Step()
	re := v.RealMin
	for x := 0; x < v.Width; x++ {
		im := v.ImagMax
		for y := 0; y < v.Height; y++ {
			gre, gim := v.At(x, y)
			if gre != re || gim != im {
				t.Fatalf("At(%d,%d) = (%d,%d), want (%d,%d)", x, y, gre, gim, re, im)
			}
			im -= dIm
		}
		re += dRe
	}
}

func TestScanCoversGridOnce(t *testing.T) {
	v := classic(t)
	for _, order := range []Order{ColumnMajor, RowMajor} {
		seen := make(map[[2]int]int)
		sc := v.Scan(order)
		if sc.Len() != 19200 {
			t.Fatalf("%s: Len = %d", order, sc.Len())
		}
		n := 0
		for {
			s, ok := sc.Next()
			if !ok {
				break
			}
			if s.X < 0 || s.X >= 160 || s.Y < 0 || s.Y >= 120 {
				t.Fatalf("%s: sample out of range: %+v", order, s)
			}
			re, im := v.At(s.X, s.Y)
			if s.Re != re || s.Im != im {
				t.Fatalf("%s: sample %+v does not match At", order, s)
			}
			seen[[2]int{s.X, s.Y}]++
			n++
		}
		if n != 19200 || len(seen) != 19200 {
			t.Fatalf("%s: yielded %d samples, %d distinct", order, n, len(seen))
		}
		for k, c := range seen {
			if c != 1 {
				t.Fatalf("%s: cell %v visited %d times", order, k, c)
			}
		}
	}
}

func TestScanOrder(t *testing.T) {
	v := Viewport{RealMax: fixed.One, ImagMax: fixed.One, Width: 3, Height: 2}

	var col, row [][2]int
	v.Each(ColumnMajor, func(s Sample) bool { col = append(col, [2]int{s.X, s.Y}); return true })
	v.Each(RowMajor, func(s Sample) bool { row = append(row, [2]int{s.X, s.Y}); return true })

	wantCol := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	wantRow := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	for i := range wantCol {
		if col[i] != wantCol[i] {
			t.Fatalf("column order[%d] = %v, want %v", i, col[i], wantCol[i])
		}
		if row[i] != wantRow[i] {
			t.Fatalf("row order[%d] = %v, want %v", i, row[i], wantRow[i])
		}
	}
}

func TestScannerRestart(t *testing.T) {
	v := Viewport{RealMin: -fixed.One, RealMax: fixed.One, ImagMin: -fixed.One, ImagMax: fixed.One, Width: 4, Height: 4}
	sc := v.Scan(RowMajor)

	var first []Sample
	for s, ok := sc.Next(); ok; s, ok = sc.Next() {
		first = append(first, s)
	}
	if _, ok := sc.Next(); ok {
		t.Fatal("exhausted scanner yielded a sample")
	}

	sc.Reset()
	for i := range first {
		s, ok := sc.Next()
		if !ok || s != first[i] {
			t.Fatalf("replay[%d] = %+v, want %+v", i, s, first[i])
		}
	}
}

func TestEachStops(t *testing.T) {
	v := Viewport{RealMax: fixed.One, ImagMax: fixed.One, Width: 10, Height: 10}
	n := 0
	v.Each(ColumnMajor, func(Sample) bool { n++; return n < 5 })
	if n != 5 {
		t.Fatalf("Each visited %d samples after stop, want 5", n)
	}
}

func TestDegenerate(t *testing.T) {
	v := Viewport{RealMin: fixed.One, RealMax: fixed.One, ImagMin: -fixed.One, ImagMax: fixed.One, Width: 8, Height: 1}
	if err := v.Validate(); err != nil {
		t.Fatalf("degenerate viewport rejected: %v", err)
	}
	dRe, dIm := v.Step()
	if dRe != 0 {
		t.Fatalf("dRe = %d, want 0", dRe)
	}
	if dIm != 2*fixed.One {
		t.Fatalf("dIm = %d, want full span", dIm)
	}
	v.Each(ColumnMajor, func(s Sample) bool {
		if s.Re != fixed.One || s.Im != fixed.One {
			t.Fatalf("sample %+v, want (One, One)", s)
		}
		return true
	})
}

func TestValidate(t *testing.T) {
	bad := []Viewport{
		{RealMax: fixed.One, ImagMax: fixed.One, Width: 0, Height: 1},
		{RealMax: fixed.One, ImagMax: fixed.One, Width: 1, Height: -1},
		{RealMin: fixed.One, RealMax: 0, ImagMax: fixed.One, Width: 1, Height: 1},
		{RealMax: fixed.One, ImagMin: fixed.One, ImagMax: 0, Width: 1, Height: 1},
		// One cell spanning the whole 32-bit range has a step that does not fit.
		{RealMin: math.MinInt32, RealMax: math.MaxInt32, ImagMax: fixed.One, Width: 1, Height: 1},
	}
	for _, v := range bad {
		if err := v.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Validate(%+v) = %v, want ErrInvalid", v, err)
		}
	}
}

func TestWideBounds(t *testing.T) {
	v := Viewport{
		RealMin: math.MinInt32, RealMax: math.MaxInt32,
		ImagMin: math.MinInt32, ImagMax: math.MaxInt32,
		Width: 2, Height: 2,
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	dRe, dIm := v.Step()
	if dRe != math.MaxInt32 || dIm != math.MaxInt32 {
		t.Fatalf("Step = (%d, %d), want MaxInt32", dRe, dIm)
	}
	want := [][4]fixed.Fixed{
		{0, 0, math.MinInt32, math.MaxInt32},
		{1, 1, -1, 0},
	}
	for _, w := range want {
		re, im := v.At(int(w[0]), int(w[1]))
		if re != w[2] || im != w[3] {
			t.Fatalf("At(%d, %d) = (%d, %d), want (%d, %d)", w[0], w[1], re, im, w[2], w[3])
		}
	}
	v.Each(ColumnMajor, func(s Sample) bool {
		if s.Re > 0 || s.Im < 0 {
			t.Fatalf("sample %+v left the bounds", s)
		}
		return true
	})
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		if _, err := Lookup(name, 160, 120); err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
	}
	if _, err := Lookup("nowhere", 160, 120); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("unknown preset err = %v", err)
	}
}

func TestParseOrder(t *testing.T) {
	if o, err := ParseOrder("row"); err != nil || o != RowMajor {
		t.Fatalf("ParseOrder(row) = %v, %v", o, err)
	}
	if o, err := ParseOrder("column"); err != nil || o != ColumnMajor {
		t.Fatalf("ParseOrder(column) = %v, %v", o, err)
	}
	if _, err := ParseOrder("diagonal"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("ParseOrder(diagonal) err = %v", err)
	}
}
