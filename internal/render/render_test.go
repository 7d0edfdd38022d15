package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"

	"terrainmap/internal/biome"
	"terrainmap/internal/terrain"
)

func checkerGrid(w, h int) *terrain.Grid {
	g := terrain.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, biome.RGB(255, 0, 0))
			} else {
				g.Set(x, y, biome.RGB(0, 0, 255))
			}
		}
	}
	return g
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
		err  bool
	}{
		{"map.png", FormatPNG, false},
		{"out/MAP.BMP", FormatBMP, false},
		{"map.jpg", "", true},
		{"map", "", true},
	}
	for _, c := range cases {
		got, err := FormatFromPath(c.path)
		if c.err {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("FormatFromPath(%q) err=%v, want ErrUnknownFormat", c.path, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("FormatFromPath(%q)=%q, %v; want %q", c.path, got, err, c.want)
		}
	}
}

func TestEncodeDecodes(t *testing.T) {
	img := checkerGrid(4, 3).Image()
	decoders := map[string]func(*bytes.Buffer) (image.Image, error){
		FormatPNG: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}
	for format, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Fatalf("Encode(%s): %v", format, err)
		}
		out, err := decode(&buf)
		if err != nil {
			t.Fatalf("decode %s: %v", format, err)
		}
		if out.Bounds() != img.Bounds() {
			t.Errorf("%s bounds=%v, want %v", format, out.Bounds(), img.Bounds())
		}
		r, g, b, _ := out.At(1, 0).RGBA()
		if r != 0 || g != 0 || b != 0xffff {
			t.Errorf("%s pixel (1,0)=%d,%d,%d, want blue", format, r, g, b)
		}
	}
	if err := Encode(&bytes.Buffer{}, img, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(gif) err=%v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	if err := WriteFile(path, checkerGrid(5, 5).Image()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty file, stat err=%v", err)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "map.tiff"), checkerGrid(1, 1).Image()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteFile(tiff) err=%v", err)
	}
}

func TestDrawLegendPaintsSwatches(t *testing.T) {
	tbl := biome.DefaultTable()
	img := image.NewRGBA(image.Rect(0, 0, 200, 120))

	DrawLegend(img, tbl)

	for i, b := range tbl.Bands() {
		y := legendPad + i*legendRow + legendSwatch/2
		want := b.ColorAt((b.MinHeight + b.MaxHeight) / 2).RGBA()
		if got := img.RGBAAt(legendPad+legendSwatch/2, y); got != want {
			t.Errorf("%s swatch=%v, want %v", b.Kind, got, want)
		}
	}
	if got := img.RGBAAt(199, 119); got != (color.RGBA{}) {
		t.Errorf("legend leaked to the far corner: %v", got)
	}
}

func TestDrawLegendSmallImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	DrawLegend(img, biome.DefaultTable()) // clipped, must not panic
}

func TestTerminalDrawDownsamples(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	defer ss.Fini()
	ss.SetSize(4, 2)

	grid := terrain.NewGrid(8, 4)
	grid.Fill(0, 0, 8, 4, biome.RGB(0, 0, 255))
	grid.Fill(0, 0, 4, 4, biome.RGB(255, 0, 0))

	NewTerminal(ss).Draw(grid)

	cases := []struct {
		x, y    int
		r, g, b int32
	}{
		{0, 0, 255, 0, 0},
		{1, 1, 255, 0, 0},
		{2, 0, 0, 0, 255},
		{3, 1, 0, 0, 255},
	}
	for _, c := range cases {
		_, _, style, _ := ss.GetContent(c.x, c.y)
		_, bg, _ := style.Decompose()
		r, g, b := bg.RGB()
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("cell (%d,%d) bg=%d,%d,%d, want %d,%d,%d", c.x, c.y, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestTerminalRunQuits(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	defer ss.Fini()
	ss.SetSize(10, 5)

	if err := ss.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	NewTerminal(ss).Run(checkerGrid(3, 3))
}
