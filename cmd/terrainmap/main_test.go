package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"terrainmap/internal/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("terrainmap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := o.terrainConfig(1920, 1080)
	if err != nil {
		t.Fatalf("terrainConfig: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("size=%dx%d, want display size", cfg.Width, cfg.Height)
	}
	def := config.DefaultTerrain()
	if cfg.Zoom != def.Zoom || cfg.XOffset != def.XOffset || cfg.POICount != def.POICount {
		t.Errorf("defaults not carried over: %+v", cfg)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	args := []string{"-width", "64", "-height", "32", "-noise", "perlin", "-seed", "7", "-pois", "3", "-view", "none"}
	o, err := parseFlags(newFlagSet(), args)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := o.terrainConfig(1920, 1080)
	if err != nil {
		t.Fatalf("terrainConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("size=%dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.Noise.Algorithm != "perlin" || cfg.Noise.Seed != 7 || cfg.POICount != 3 {
		t.Errorf("overrides lost: %+v", cfg)
	}
}

func TestNoDisplayFallsBackToDefaultSize(t *testing.T) {
	o, _ := parseFlags(newFlagSet(), []string{"-view", "none"})
	cfg, err := o.terrainConfig(0, 0)
	if err != nil {
		t.Fatalf("terrainConfig: %v", err)
	}
	def := config.DefaultTerrain()
	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("size=%dx%d, want %dx%d", cfg.Width, cfg.Height, def.Width, def.Height)
	}
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	if _, err := parseFlags(newFlagSet(), []string{"-view", "vr"}); err == nil {
		t.Error("expected error for unknown view")
	}
	o, _ := parseFlags(newFlagSet(), []string{"-zoom", "0"})
	if _, err := o.terrainConfig(10, 10); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("zero zoom: err=%v", err)
	}
}

func TestRunHeadless(t *testing.T) {
	o, _ := parseFlags(newFlagSet(), []string{"-width", "32", "-height", "24", "-view", "none", "-legend"})
	o.out = t.TempDir() + "/map.png"
	if err := run(o); err != nil {
		t.Fatalf("run: %v", err)
	}
}
