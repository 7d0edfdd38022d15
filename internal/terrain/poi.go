package terrain

import (
	"terrainmap/internal/biome"
	"terrainmap/internal/profiling"
)

// POI is a point of interest tagged with the biome it landed in.
type POI struct {
	X, Y  int
	Biome biome.Kind
}

// PlacePOIs draws cfg.POICount random cells, tags each with its biome and
// stamps a marker square on grid. Points may repeat or overlap.
func (g *Generator) PlacePOIs(grid *Grid) []POI {
	defer profiling.Track("terrain.PlacePOIs")()

	w, h := g.cfg.Width-1, g.cfg.Height-1
	if w <= 0 || h <= 0 {
		return nil
	}

	pois := make([]POI, g.cfg.POICount)
	for i := range pois {
		pois[i].X = g.rng.Intn(w)
		pois[i].Y = g.rng.Intn(h)
	}
	for i := range pois {
		pois[i].Biome = g.BiomeAt(pois[i].X, pois[i].Y)
		g.mark(grid, pois[i])
	}
	return pois
}

// mark stamps p onto grid. Every biome gets the same marker; unknown tags are
// skipped.
func (g *Generator) mark(grid *Grid, p POI) {
	if !p.Biome.Valid() {
		return
	}
	x0, y0 := markerOrigin(p.X, p.Y, g.cfg.MarkerSize)
	grid.Fill(x0, y0, x0+g.cfg.MarkerSize, y0+g.cfg.MarkerSize, g.cfg.MarkerColor)
}

// markerOrigin returns the top-left cell of a size×size marker around
// (x, y). Even sizes sit one cell toward the negative axes.
func markerOrigin(x, y, size int) (int, int) {
	half := size / 2
	return x - half, y - half
}
