// Package palette translates iteration counts into colour codes.
package palette

import (
	"errors"
	"fmt"
)

var ErrTooShort = errors.New("palette: fewer entries than iteration results")

// ColorIndex is a colour code understood by the active display mode.
//
// For the Gigatron-style modes used here it is a 6-bit BBGGRR value.
type ColorIndex uint8

// Palette is an immutable lookup table indexed by iteration count.
type Palette struct {
	entries []ColorIndex
	limit   int
}

// gigatron is the gradient of the Gigatron longbrot demo: dark reds through yellow and
// cyan into blue, with black for the interior.
var gigatron = [...]ColorIndex{
	0x01, 0x02, 0x03, 0x07,
	0x0b, 0x0f, 0x0e, 0x0d,
	0x0c, 0x3c, 0x38, 0x34,
	0x30, 0x20, 0x10, 0x00,
}

// Default returns the 16-entry gradient for a cap of 15 iterations.
func Default() Palette {
	return MustNew(len(gigatron)-1, gigatron[:]...)
}

// New returns a palette for results in [0, maxIterations]. It fails when there
// are fewer than maxIterations+1 entries. Extra entries are kept but are never
// reached by a lookup.
func New(maxIterations int, entries ...ColorIndex) (Palette, error) {
	if maxIterations < 0 {
		return Palette{}, fmt.Errorf("palette: negative iteration cap %d", maxIterations)
	}
	if len(entries) < maxIterations+1 {
		return Palette{}, fmt.Errorf("%w: have %d, need %d", ErrTooShort, len(entries), maxIterations+1)
	}
	cp := make([]ColorIndex, len(entries))
	copy(cp, entries)
	return Palette{entries: cp, limit: maxIterations}, nil
}

// MustNew is like New but panics on error. For package-level tables.
func MustNew(maxIterations int, entries ...ColorIndex) Palette {
	p, err := New(maxIterations, entries...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of entries.
func (p Palette) Len() int { return len(p.entries) }

// Covers reports whether every result in [0, maxIterations] has an entry.
func (p Palette) Covers(maxIterations int) bool {
	return maxIterations >= 0 && len(p.entries) >= maxIterations+1
}

// Cap returns the iteration cap the palette was built for.
func (p Palette) Cap() int { return p.limit }

// Interior returns the colour of samples that reach the cap. The zero
// Palette has no interior.
func (p Palette) Interior() ColorIndex { return p.entries[p.limit] }

// For returns the same table rebound to a different iteration cap, so its
// interior is the entry at maxIterations.
func (p Palette) For(maxIterations int) (Palette, error) {
	return New(maxIterations, p.entries...)
}

// Lookup returns the entry for iteration count k. k must be in range; the
// engine guarantees that for a palette that Covers its cap.
func (p Palette) Lookup(k int) ColorIndex { return p.entries[k] }

// Entries returns a copy of the table.
func (p Palette) Entries() []ColorIndex {
	cp := make([]ColorIndex, len(p.entries))
	copy(cp, p.entries)
	return cp
}

// RGB expands a 6-bit BBGGRR colour code into 8-bit channels.
func RGB(c ColorIndex) (r, g, b uint8) {
	r = uint8(c&0x03) * 85
	g = uint8((c>>2)&0x03) * 85
	b = uint8((c>>4)&0x03) * 85
	return r, g, b
}
