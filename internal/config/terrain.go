package config

import (
	"errors"
	"fmt"

	"terrainmap/internal/biome"
	"terrainmap/internal/noise"
)

var ErrInvalidConfig = errors.New("config: invalid terrain config")

// Terrain holds the fixed parameters of one map generation. It is built once
// and passed by value; nothing mutates it after construction.
type Terrain struct {
	Width  int
	Height int

	// Zoom divides pixel distance from the map center; larger values give
	// larger features. The offsets pan across the noise field.
	Zoom    float64
	XOffset float64
	YOffset float64

	Noise noise.Params

	POICount    int
	MarkerSize  int
	MarkerColor biome.Color

	// Workers is the grid pass parallelism. Zero means one per CPU.
	Workers int
}

// DefaultTerrain returns the stock configuration. Width and Height are
// placeholders until a display size is known.
func DefaultTerrain() Terrain {
	return Terrain{
		Width:       800,
		Height:      600,
		Zoom:        100,
		XOffset:     1000,
		YOffset:     1000,
		Noise:       noise.DefaultParams(),
		POICount:    25,
		MarkerSize:  6,
		MarkerColor: biome.RGB(0, 0, 0),
		Workers:     0,
	}
}

// Validate reports the first setting that would make generation ill-defined.
func (t Terrain) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, t.Width, t.Height)
	}
	if t.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g <= 0", ErrInvalidConfig, t.Zoom)
	}
	if t.POICount < 0 {
		return fmt.Errorf("%w: poi count %d < 0", ErrInvalidConfig, t.POICount)
	}
	if t.MarkerSize < 1 {
		return fmt.Errorf("%w: marker size %d < 1", ErrInvalidConfig, t.MarkerSize)
	}
	if t.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, t.Workers)
	}
	if err := t.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
