package viewport

import (
	"errors"
	"fmt"
	"sort"

	"longbrot/fractal/fixed"
)

var ErrUnknownPreset = errors.New("viewport: unknown preset")

// Region is a plane rectangle without a resolution.
type Region struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64
}

// At returns the region sampled at w x h.
func (r Region) At(w, h int) Viewport {
	return Viewport{
		RealMin: fixed.FromFloat(r.RealMin),
		RealMax: fixed.FromFloat(r.RealMax),
		ImagMin: fixed.FromFloat(r.ImagMin),
		ImagMax: fixed.FromFloat(r.ImagMax),
		Width:   w,
		Height:  h,
	}
}

// Classic is the whole-set view of the Gigatron demo.
var Classic = Region{RealMin: -2.0, RealMax: 0.7, ImagMin: -1.2, ImagMax: 1.2}

// Presets are named regions. Deep landmarks are coarse at 13 fractional bits;
// the steps truncate to a handful of units per cell.
var Presets = map[string]Region{
	"classic": Classic,

	// dense filaments and repeating curls
	"seahorse": {RealMin: -0.8, RealMax: -0.7, ImagMin: 0.05, ImagMax: 0.15},

	// large bulb with trunk-like tendrils
	"elephant": {RealMin: 0.25, RealMax: 0.45, ImagMin: -0.10, ImagMax: 0.10},

	"spiral":   {RealMin: -0.7475, RealMax: -0.7375, ImagMin: 0.1, ImagMax: 0.11},
	"dragon":   {RealMin: -0.7450, RealMax: -0.7300, ImagMin: 0.175, ImagMax: 0.19},
	"minibrot": {RealMin: -1.80, RealMax: -1.72, ImagMin: -0.03, ImagMax: 0.03},
}

// Lookup returns the named preset sampled at w x h.
func Lookup(name string, w, h int) (Viewport, error) {
	r, ok := Presets[name]
	if !ok {
		return Viewport{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	v := r.At(w, h)
	if err := v.Validate(); err != nil {
		return Viewport{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return v, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
