package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"terrainmap/internal/biome"
)

const (
	legendPad    = 4
	legendSwatch = 10
	legendRow    = 15 // basicfont.Face7x13 height plus spacing
)

// DrawLegend paints a swatch and name for every band in the top-left corner
// of img. Each swatch shows the band's midpoint color.
func DrawLegend(img draw.Image, table *biome.Table) {
	bands := table.Bands()
	face := basicfont.Face7x13

	textW := 0
	for _, b := range bands {
		textW = max(textW, font.MeasureString(face, b.Kind.String()).Ceil())
	}
	box := image.Rect(0, 0,
		legendPad*3+legendSwatch+textW,
		legendPad*2+legendRow*len(bands),
	).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, b := range bands {
		top := legendPad + i*legendRow
		swatch := image.Rect(legendPad, top, legendPad+legendSwatch, top+legendSwatch)
		mid := (b.MinHeight + b.MaxHeight) / 2
		draw.Draw(img, swatch, image.NewUniform(b.ColorAt(mid).RGBA()), image.Point{}, draw.Src)

		d.Dot = fixed.P(legendPad*2+legendSwatch, top+legendSwatch)
		d.DrawString(b.Kind.String())
	}
}
