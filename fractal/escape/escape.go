// Package escape runs the bounded escape-time iteration for a single
// fixed-point sample.
package escape

import (
	"errors"
	"fmt"

	"longbrot/fractal/fixed"
)

const (
	// DefaultMaxIterations is the iteration cap of the Gigatron longbrot demo.
	DefaultMaxIterations = 15

	// DefaultThreshold is |z|^2 = 4.0 at the working scale.
	DefaultThreshold fixed.Fixed = 32768
)

var ErrInvalid = errors.New("escape: invalid engine parameters")

// Complex is a point in the complex plane.
type Complex struct {
	Re, Im fixed.Fixed
}

// Engine holds the iteration cap and escape threshold. The zero value is not
// usable; build one with New or Default.
type Engine struct {
	MaxIterations int
	Threshold     fixed.Fixed
}

// Default returns the Gigatron demo engine: cap 15, threshold 32768.
func Default() Engine {
	return Engine{MaxIterations: DefaultMaxIterations, Threshold: DefaultThreshold}
}

// New validates and returns an engine.
func New(maxIterations int, threshold fixed.Fixed) (Engine, error) {
	e := Engine{MaxIterations: maxIterations, Threshold: threshold}
	if err := e.Validate(); err != nil {
		return Engine{}, err
	}
	return e, nil
}

// Validate reports whether the engine parameters are usable.
func (e Engine) Validate() error {
	if e.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalid, e.MaxIterations)
	}
	if e.Threshold <= 0 {
		return fmt.Errorf("%w: threshold %d", ErrInvalid, e.Threshold)
	}
	return nil
}

// Iterate returns how many steps of z = z^2 + seed run before |z|^2 exceeds
// the threshold, capped at MaxIterations.
//
// z starts at the seed rather than at zero, matching the Gigatron demo.
func (e Engine) Iterate(seed Complex) int {
	sr, si := seed.Re.Wide(), seed.Im.Wide()
	th := e.Threshold.Wide()
	re, im := sr, si

	i := 0
	for ; i < e.MaxIterations; i++ {
		rq := re.Square()
		iq := im.Square()
		if rq.Add(iq) > th {
			break
		}
		im = re.MulDouble(im).Add(si)
		re = rq.Sub(iq).Add(sr)
	}
	return i
}
