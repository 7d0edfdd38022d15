package render

import (
	"github.com/gdamore/tcell/v2"

	"terrainmap/internal/terrain"
)

// Terminal previews a grid on a tcell screen, one cell per character with the
// terrain color as background.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw downsamples grid to the screen with nearest-neighbour sampling. Grids
// smaller than the screen are drawn 1:1 in the top-left corner.
func (t *Terminal) Draw(grid *terrain.Grid) {
	t.screen.Clear()
	w, h := t.screen.Size()
	cols, rows := min(w, grid.Width), min(h, grid.Height)
	for sy := 0; sy < rows; sy++ {
		gy := sy * grid.Height / rows
		for sx := 0; sx < cols; sx++ {
			gx := sx * grid.Width / cols
			c := grid.At(gx, gy).RGBA()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(sx, sy, ' ', nil, style)
		}
	}
	t.screen.Show()
}

// Run draws grid and blocks until the user quits with Esc, q or Ctrl-C.
func (t *Terminal) Run(grid *terrain.Grid) {
	t.Draw(grid)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.Draw(grid)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			}
			switch ev.Rune() {
			case 'q', 'Q':
				return
			}
		}
	}
}
