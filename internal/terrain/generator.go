// Package terrain paints a biome-colored map from a noise field and stamps
// points of interest over it.
package terrain

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"terrainmap/internal/biome"
	"terrainmap/internal/config"
	"terrainmap/internal/noise"
	"terrainmap/internal/profiling"
)

// Generator produces maps for one fixed configuration.
type Generator struct {
	cfg     config.Terrain
	src     noise.Source
	table   *biome.Table
	rng     *rand.Rand
	workers int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the POI random source. By default each Generator seeds its
// own from the wall clock.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithWorkers overrides cfg.Workers.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// NewGenerator validates cfg and returns a Generator sampling src and
// classifying with table.
func NewGenerator(cfg config.Terrain, src noise.Source, table *biome.Table, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil noise source", config.ErrInvalidConfig)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: nil biome table", config.ErrInvalidConfig)
	}
	g := &Generator{
		cfg:     cfg,
		src:     src,
		table:   table,
		workers: cfg.Workers,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.workers <= 0 {
		g.workers = runtime.NumCPU()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() config.Terrain { return g.cfg }

// Table returns the biome table used for classification.
func (g *Generator) Table() *biome.Table { return g.table }

// Coords maps a pixel to noise space, centered on the middle of the map.
func (g *Generator) Coords(x, y int) (float64, float64) {
	xVal := (float64(x)-float64(g.cfg.Width)/2)/g.cfg.Zoom + g.cfg.XOffset
	yVal := (float64(y)-float64(g.cfg.Height)/2)/g.cfg.Zoom + g.cfg.YOffset
	return xVal, yVal
}

// Sample returns the noise value at pixel (x, y).
func (g *Generator) Sample(x, y int) float64 {
	return g.src.Noise2D(g.Coords(x, y))
}

// BiomeAt classifies pixel (x, y). It uses the same transform as the grid
// pass, so a POI's tag always agrees with the color painted under it.
func (g *Generator) BiomeAt(x, y int) biome.Kind {
	return g.table.Classify(g.Sample(x, y))
}

// PaintGrid runs the grid pass. Rows are painted in parallel and the call
// returns only after every row is done.
func (g *Generator) PaintGrid(ctx context.Context) (*Grid, error) {
	defer profiling.Track("terrain.PaintGrid")()

	grid := NewGrid(g.cfg.Width, g.cfg.Height)
	workers := min(g.workers, g.cfg.Height)
	pool := newRowPool(ctx, workers, g.cfg.Height, func(y int) {
		g.paintRow(grid, y)
	})
	for y := 0; y < g.cfg.Height; y++ {
		if !pool.submit(y) {
			break
		}
	}
	pool.wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

func (g *Generator) paintRow(grid *Grid, y int) {
	row := grid.cells[y*grid.Width : (y+1)*grid.Width]
	for x := range row {
		_, row[x] = g.table.Resolve(g.Sample(x, y))
	}
}

// Map is the output of one generation.
type Map struct {
	Grid *Grid
	POIs []POI
}

// Generate paints the grid and then stamps points of interest over it.
func (g *Generator) Generate(ctx context.Context) (*Map, error) {
	grid, err := g.PaintGrid(ctx)
	if err != nil {
		return nil, fmt.Errorf("paint grid: %w", err)
	}
	return &Map{Grid: grid, POIs: g.PlacePOIs(grid)}, nil
}
