package render

import "longbrot/fractal/palette"

// Grid is an in-memory W x H table of colour codes.
type Grid struct {
	W, H  int
	Cells []palette.ColorIndex
}

// NewGrid allocates a zeroed grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, Cells: make([]palette.ColorIndex, w*h)}
}

func (g *Grid) Write(x, y int, c palette.ColorIndex) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.Cells[y*g.W+x] = c
}

func (g *Grid) Clear(c palette.ColorIndex) {
	for i := range g.Cells {
		g.Cells[i] = c
	}
}

// At returns the code at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) palette.ColorIndex {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.Cells[y*g.W+x]
}
