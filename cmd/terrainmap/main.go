package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"terrainmap/internal/biome"
	"terrainmap/internal/config"
	"terrainmap/internal/noise"
	"terrainmap/internal/profiling"
	"terrainmap/internal/render"
	"terrainmap/internal/terrain"
	"terrainmap/internal/viewer"
)

func init() {
	runtime.LockOSThread()
}

const (
	viewGL       = "gl"
	viewTerminal = "term"
	viewNone     = "none"
)

type options struct {
	width, height int
	zoom          float64
	xOffset       float64
	yOffset       float64
	algorithm     string
	seed          int64
	octaves       int
	persistence   float64
	pois          int
	workers       int
	scale         int
	out           string
	legend        bool
	view          string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	def := config.DefaultTerrain()
	var o options
	fs.IntVar(&o.width, "width", 0, "map width in cells (0 = display width)")
	fs.IntVar(&o.height, "height", 0, "map height in cells (0 = display height)")
	fs.Float64Var(&o.zoom, "zoom", def.Zoom, "feature scale divisor")
	fs.Float64Var(&o.xOffset, "xoff", def.XOffset, "noise-space pan on x")
	fs.Float64Var(&o.yOffset, "yoff", def.YOffset, "noise-space pan on y")
	fs.StringVar(&o.algorithm, "noise", def.Noise.Algorithm, "noise algorithm: value, perlin or simplex")
	fs.Int64Var(&o.seed, "seed", def.Noise.Seed, "noise seed")
	fs.IntVar(&o.octaves, "octaves", def.Noise.Octaves, "noise octaves")
	fs.Float64Var(&o.persistence, "persistence", def.Noise.Persistence, "amplitude falloff per octave")
	fs.IntVar(&o.pois, "pois", def.POICount, "points of interest to stamp")
	fs.IntVar(&o.workers, "workers", def.Workers, "grid pass workers (0 = one per CPU)")
	fs.IntVar(&o.scale, "scale", 1, "screen pixels per cell in the gl viewer")
	fs.StringVar(&o.out, "out", "", "write the map to this .png or .bmp file")
	fs.BoolVar(&o.legend, "legend", false, "draw the band legend")
	fs.StringVar(&o.view, "view", viewGL, "viewer: gl, term or none")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.view {
	case viewGL, viewTerminal, viewNone:
	default:
		return o, fmt.Errorf("unknown view %q", o.view)
	}
	return o, nil
}

// terrainConfig applies o over the defaults. displayW/displayH fill in a
// zero width or height.
func (o options) terrainConfig(displayW, displayH int) (config.Terrain, error) {
	cfg := config.DefaultTerrain()
	if o.width > 0 {
		cfg.Width = o.width
	} else if displayW > 0 {
		cfg.Width = displayW
	}
	if o.height > 0 {
		cfg.Height = o.height
	} else if displayH > 0 {
		cfg.Height = displayH
	}
	cfg.Zoom = o.zoom
	cfg.XOffset = o.xOffset
	cfg.YOffset = o.yOffset
	cfg.Noise.Algorithm = o.algorithm
	cfg.Noise.Seed = o.seed
	cfg.Noise.Octaves = o.octaves
	cfg.Noise.Persistence = o.persistence
	cfg.POICount = o.pois
	cfg.Workers = o.workers
	return cfg, cfg.Validate()
}

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("terrainmap: %v", err)
	}
	if err := run(o); err != nil {
		log.Fatalf("terrainmap: %v", err)
	}
}

func run(o options) error {
	needGL := o.view == viewGL || o.width <= 0 || o.height <= 0
	glReady := false
	if needGL {
		if err := glfw.Init(); err != nil {
			if o.view == viewGL {
				return fmt.Errorf("init glfw: %w", err)
			}
			log.Printf("no display (%v), using default size", err)
		} else {
			glReady = true
			defer glfw.Terminate()
		}
	}

	displayW, displayH := 0, 0
	if glReady {
		if w, h, ok := viewer.DisplaySize(); ok {
			displayW, displayH = w, h
		}
	}
	cfg, err := o.terrainConfig(displayW, displayH)
	if err != nil {
		return err
	}
	config.SetPixelScale(o.scale)
	config.SetLegend(o.legend)

	src, err := noise.New(cfg.Noise)
	if err != nil {
		return err
	}
	table := biome.DefaultTable()
	gen, err := terrain.NewGenerator(cfg, src, table)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	profiling.Reset()
	m, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	logSummary(cfg, m)

	img := m.Grid.Image()
	if config.GetLegend() {
		render.DrawLegend(img, table)
	}
	if o.out != "" {
		if err := render.WriteFile(o.out, img); err != nil {
			return err
		}
		log.Printf("wrote %s", o.out)
	}

	switch o.view {
	case viewGL:
		return viewer.Show(img, "terrainmap")
	case viewTerminal:
		return showTerminal(m.Grid)
	}
	return nil
}

func showTerminal(grid *terrain.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	render.NewTerminal(screen).Run(grid)
	return nil
}

func logSummary(cfg config.Terrain, m *terrain.Map) {
	var perBiome [biome.Mountain + 1]int
	for _, p := range m.POIs {
		if p.Biome.Valid() {
			perBiome[p.Biome]++
		}
	}
	log.Printf("generated %dx%d map (%s noise, seed %d), %d POIs", cfg.Width, cfg.Height, cfg.Noise.Algorithm, cfg.Noise.Seed, len(m.POIs))
	for k, n := range perBiome {
		if n > 0 {
			log.Printf("  %-8s %d", biome.Kind(k), n)
		}
	}
	log.Printf("timings: %s", profiling.TopN(2))
}
