// Package viewport maps a rectangle of the complex plane onto a sample grid.
package viewport

import (
	"errors"
	"fmt"

	"longbrot/fractal/fixed"
)

var ErrInvalid = errors.New("viewport: invalid")

// Order selects the scan order. It only changes the order of samples, never
// their values.
type Order uint8

const (
	// ColumnMajor scans x in the outer loop and y in the inner loop.
	ColumnMajor Order = iota
	// RowMajor scans y in the outer loop and x in the inner loop.
	RowMajor
)

func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column"
	case RowMajor:
		return "row"
	default:
		return "unknown"
	}
}

// ParseOrder accepts "column" or "row".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "column", "col", "x":
		return ColumnMajor, nil
	case "row", "y":
		return RowMajor, nil
	}
	return 0, fmt.Errorf("%w: scan order %q", ErrInvalid, s)
}

// Viewport is a plane region plus the grid resolution it is sampled at.
type Viewport struct {
	RealMin, RealMax fixed.Fixed
	ImagMin, ImagMax fixed.Fixed
	Width, Height    int
}

// Sample is one grid cell and its seed coordinate.
type Sample struct {
	X, Y   int
	Re, Im fixed.Fixed
}

// Validate checks the bounds and resolution. Equal bounds on an axis are
// allowed and collapse every sample on that axis to one value.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalid, v.Width, v.Height)
	}
	if v.RealMin > v.RealMax {
		return fmt.Errorf("%w: real bounds %s > %s", ErrInvalid, v.RealMin, v.RealMax)
	}
	if v.ImagMin > v.ImagMax {
		return fmt.Errorf("%w: imaginary bounds %s > %s", ErrInvalid, v.ImagMin, v.ImagMax)
	}
	if _, err := fixed.Step(v.RealMin, v.RealMax, v.Width); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := fixed.Step(v.ImagMin, v.ImagMax, v.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Step returns the per-cell step on each axis, using truncating division of
// the 64-bit span. It is zero on an axis that fails Validate.
func (v Viewport) Step() (dRe, dIm fixed.Fixed) {
	return axisStep(v.RealMin, v.RealMax, v.Width), axisStep(v.ImagMin, v.ImagMax, v.Height)
}

func axisStep(lo, hi fixed.Fixed, n int) fixed.Fixed {
	if n <= 0 {
		return 0
	}
	d, err := fixed.Step(lo, hi, n)
	if err != nil {
		return 0
	}
	return d
}

// At returns the seed for cell (x, y). y grows downward while the imaginary
// part decreases from ImagMax.
func (v Viewport) At(x, y int) (re, im fixed.Fixed) {
	dRe, dIm := v.Step()
	return fixed.Offset(v.RealMin, dRe, x), fixed.Offset(v.ImagMax, -dIm, y)
}

// Len returns the number of samples in the grid.
func (v Viewport) Len() int { return v.Width * v.Height }

// Scan returns a scanner over every cell in the given order.
func (v Viewport) Scan(order Order) *Scanner {
	dRe, dIm := v.Step()
	return &Scanner{v: v, order: order, dRe: dRe, dIm: dIm}
}

// Each calls fn for every cell in order until fn returns false.
func (v Viewport) Each(order Order, fn func(Sample) bool) {
	sc := v.Scan(order)
	for {
		s, ok := sc.Next()
		if !ok || !fn(s) {
			return
		}
	}
}

// Scanner enumerates the cells of a viewport lazily. It is restartable with
// Reset and is not safe for concurrent use.
type Scanner struct {
	v        Viewport
	order    Order
	dRe, dIm fixed.Fixed
	n        int
}

// Len returns the total number of samples the scanner yields.
func (s *Scanner) Len() int { return s.v.Len() }

// Reset rewinds the scanner to the first cell.
func (s *Scanner) Reset() { s.n = 0 }

// Next returns the next sample, or false once every cell has been produced.
func (s *Scanner) Next() (Sample, bool) {
	if s.v.Width <= 0 || s.v.Height <= 0 || s.n >= s.v.Len() {
		return Sample{}, false
	}

	var x, y int
	switch s.order {
	case RowMajor:
		y, x = s.n/s.v.Width, s.n%s.v.Width
	default:
		x, y = s.n/s.v.Height, s.n%s.v.Height
	}
	s.n++

	return Sample{
		X:  x,
		Y:  y,
		Re: fixed.Offset(s.v.RealMin, s.dRe, x),
		Im: fixed.Offset(s.v.ImagMax, -s.dIm, y),
	}, true
}
