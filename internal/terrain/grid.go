package terrain

import (
	"image"

	"terrainmap/internal/biome"
)

// Grid is the painted map, one color per cell, stored row-major.
type Grid struct {
	Width, Height int
	cells         []biome.Color
}

// NewGrid creates a Grid with every cell black.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]biome.Color, width*height)}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the color at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) biome.Color {
	return g.cells[y*g.Width+x]
}

// Set writes c at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, c biome.Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = c
}

// Fill paints the half-open rectangle [x0, x1) × [y0, y1), clipped to the grid.
// It returns how many cells were written.
func (g *Grid) Fill(x0, y0, x1, y1 int, c biome.Color) int {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.Width), min(y1, g.Height)
	n := 0
	for y := y0; y < y1; y++ {
		row := g.cells[y*g.Width : (y+1)*g.Width]
		for x := x0; x < x1; x++ {
			row[x] = c
			n++
		}
	}
	return n
}

// Image converts the grid to 8-bit RGBA, saturating out-of-range channels.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, g.At(x, y).RGBA())
		}
	}
	return img
}
