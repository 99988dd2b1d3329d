// Package fixed implements the signed fixed-point number used by the fractal
// engine.
//
// Values are stored in 32 bits with FracBits fractional bits. Arithmetic that
// can leave that range (squares, sums of squares, spans) runs on Wide, the
// same scale in 64 bits. Only FromFloat touches floating point; it is meant
// for configuration, not for the render hot path.
package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FracBits is the number of fractional bits.
const FracBits = 13

// One is 1.0 at the working scale (8192).
const One Fixed = 1 << FracBits

const fracMask = One - 1

// Fixed is a signed real value scaled by One.
type Fixed int32

var ErrSyntax = errors.New("fixed: invalid number")

// FromInt returns v as a fixed-point value.
func FromInt(v int32) Fixed { return Fixed(v << FracBits) }

// FromFloat converts v, truncating toward zero like a C integer cast.
func FromFloat(v float64) Fixed { return Fixed(v * float64(One)) }

// Wide widens f for arithmetic whose terms can leave the 32-bit range.
func (f Fixed) Wide() Wide { return Wide(f) }

// Wide is a value at the working scale held in 64 bits. Iteration state lives
// here so squares and sums of large seeds are compared without wrapping.
// Squaring stays exact while |w| < 2^31 (262144.0).
type Wide int64

func (w Wide) Add(v Wide) Wide { return w + v }

func (w Wide) Sub(v Wide) Wide { return w - v }

// Mul returns w*v re-normalized to the working scale.
//
// The shift is arithmetic, so negative products round toward negative
// infinity, matching a right shift of a signed C long.
func (w Wide) Mul(v Wide) Wide { return (w * v) >> FracBits }

// MulDouble returns 2*w*v, folding the factor of two into the shift
// (FracBits-1).
func (w Wide) MulDouble(v Wide) Wide { return (w * v) >> (FracBits - 1) }

// Square returns w*w at the working scale.
func (w Wide) Square() Wide { return w.Mul(w) }

// ErrRange reports a result that does not fit in a Fixed.
var ErrRange = errors.New("fixed: out of range")

// Step returns (hi-lo)/n truncated toward zero, with the span formed in 64
// bits. n must be positive.
func Step(lo, hi Fixed, n int) (Fixed, error) {
	d := (int64(hi) - int64(lo)) / int64(n)
	if d > math.MaxInt32 || d < math.MinInt32 {
		return 0, fmt.Errorf("%w: step (%s - %s) / %d", ErrRange, hi, lo, n)
	}
	return Fixed(d), nil
}

// Offset returns base + k*step without re-normalization. The product is
// formed in 64 bits; callers keep the result inside their own bounds.
func Offset(base, step Fixed, k int) Fixed {
	return Fixed(int64(base) + int64(step)*int64(k))
}

// Parse reads a decimal real ("-1.25", "0.7") or a raw scaled integer with an
// "r" suffix ("-16384r").
func Parse(s string) (Fixed, error) {
	s = strings.TrimSpace(s)
	if raw, ok := strings.CutSuffix(s, "r"); ok {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return Fixed(v), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	lim := float64(1<<(31-FracBits)) - 1
	if v > lim || v < -lim {
		return 0, fmt.Errorf("%w: %q out of range", ErrSyntax, s)
	}
	return FromFloat(v), nil
}

// String formats f with four decimal places, truncated.
func (f Fixed) String() string {
	neg := f < 0
	a := int64(f)
	if neg {
		a = -a
	}
	ip := a >> FracBits
	fp := ((a & int64(fracMask)) * 10000) >> FracBits
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%04d", sign, ip, fp)
}
